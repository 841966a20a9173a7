package services

import (
	"errors"
	"testing"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

func TestChatRoomVisibility(t *testing.T) {
	f := newFixture(t)

	// Committee members see both rooms, plain members only the open one
	if got := f.chat.GetRooms(f.user(t, lopTruongID)); len(got) != 2 {
		t.Errorf("committee rooms = %d, want 2", len(got))
	}
	rooms := f.chat.GetRooms(f.user(t, memberID))
	if len(rooms) != 1 || rooms[0].ID != "general" {
		t.Errorf("member rooms = %+v, want only general", rooms)
	}

	if _, err := f.chat.GetRoom(f.user(t, memberID), "committee"); !errors.Is(err, apperrors.ErrRoomRestricted) {
		t.Fatalf("GetRoom(restricted) error = %v, want %v", err, apperrors.ErrRoomRestricted)
	}
	if _, err := f.chat.GetRoom(f.user(t, memberID), "không có"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("GetRoom(unknown) error = %v, want not found", err)
	}
}

func TestSendMessageAppendsAndBroadcasts(t *testing.T) {
	f := newFixture(t)

	msg, err := f.chat.SendMessage(f.user(t, memberID), "general", &dto.SendMessageRequest{Text: "chào cả lớp"})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if msg.ID == 0 || msg.SenderID != memberID {
		t.Errorf("message = %+v", msg)
	}

	room, err := f.chat.GetRoom(f.user(t, memberID), "general")
	if err != nil {
		t.Fatalf("GetRoom() error = %v", err)
	}
	if len(room.Messages) != 1 || room.Messages[0].Text != "chào cả lớp" {
		t.Errorf("room messages = %+v", room.Messages)
	}

	events := f.broadcaster.recorded()
	if len(events) != 1 {
		t.Fatalf("broadcast events = %d, want 1", len(events))
	}
	if events[0].Type != dto.ChatEventMessage || events[0].RoomID != "general" {
		t.Errorf("event = %+v", events[0])
	}
}

func TestSendMessageToRestrictedRoom(t *testing.T) {
	f := newFixture(t)
	if _, err := f.chat.SendMessage(f.user(t, memberID), "committee", &dto.SendMessageRequest{Text: "xin vào"}); !errors.Is(err, apperrors.ErrRoomRestricted) {
		t.Fatalf("SendMessage() error = %v, want %v", err, apperrors.ErrRoomRestricted)
	}
	if _, err := f.chat.SendMessage(f.user(t, memberID), "general", &dto.SendMessageRequest{Text: ""}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("SendMessage(empty) error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestSimulatedRepliesComeFromOtherMembers(t *testing.T) {
	f := newFixture(t)

	// Leave the sender as the only possible member of the room so the
	// reply scheduler has nobody to pick and stays quiet.
	solo := &models.ChatRoom{ID: "solo", Name: "Một mình", Members: []int64{memberID}, Messages: []models.ChatMessage{}}
	f.repos.ChatRepository.Create(solo)

	if _, err := f.chat.SendMessage(f.user(t, memberID), "solo", &dto.SendMessageRequest{Text: "có ai không?"}); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	// Only the sender's own message event, no typing announcement
	for _, ev := range f.broadcaster.recorded() {
		if ev.Type == dto.ChatEventTyping {
			t.Errorf("typing event scheduled with no other members: %+v", ev)
		}
	}
}
