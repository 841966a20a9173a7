package services

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/scheduler"
)

// randomReplies is the pool the simulated conversation partner picks
// from when answering a message.
var randomReplies = []string{
	"Mình hiểu rồi, cảm ơn bạn nhé!",
	"Tuyệt vời!",
	"Ok, đã nhận thông tin.",
	"Có ai có ý kiến khác không?",
	"Để mình xem lại rồi báo sau nhé.",
	"Haha, hay đấy! 😂",
}

// Simulated reply timing: the partner starts typing shortly after the
// message arrives and answers a few seconds later.
const (
	typingDelay   = 1 * time.Second
	replyDelayMin = 3 * time.Second
	replyJitter   = 1 * time.Second
)

// Broadcaster pushes events to the subscribers of a chat room
type Broadcaster interface {
	Broadcast(roomID string, event any)
}

// ChatService defines the interface for chat operations
type ChatService interface {
	GetRooms(actor *models.User) []dto.ChatRoomResponse
	GetRoom(actor *models.User, roomID string) (*models.ChatRoom, error)
	SendMessage(actor *models.User, roomID string, req *dto.SendMessageRequest) (*models.ChatMessage, error)
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	chatRepo     *repositories.ChatRepository
	userRepo     *repositories.UserRepository
	broadcaster  Broadcaster
	scheduler    *scheduler.Scheduler
	logger       zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(
	chatRepo *repositories.ChatRepository,
	userRepo *repositories.UserRepository,
	broadcaster Broadcaster,
	sched *scheduler.Scheduler,
	logger zerolog.Logger,
) ChatService {
	return &chatServiceImpl{
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		scheduler:   sched,
		logger:      logger,
	}
}

// GetRooms returns the rooms the actor may see and join
func (s *chatServiceImpl) GetRooms(actor *models.User) []dto.ChatRoomResponse {
	rooms := s.chatRepo.GetAll()
	out := make([]dto.ChatRoomResponse, 0, len(rooms))
	for _, room := range rooms {
		if !room.VisibleTo(actor) {
			continue
		}
		out = append(out, dto.ChatRoomResponse{
			ID:           room.ID,
			Name:         room.Name,
			Icon:         room.Icon,
			Description:  room.Description,
			AllowedRoles: room.AllowedRoles,
			Members:      room.Members,
			MessageCount: len(room.Messages),
		})
	}
	return out
}

// GetRoom returns a single room with its message history
func (s *chatServiceImpl) GetRoom(actor *models.User, roomID string) (*models.ChatRoom, error) {
	room, err := s.chatRepo.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if !room.VisibleTo(actor) {
		return nil, apperrors.ErrRoomRestricted
	}
	return room, nil
}

// SendMessage appends the actor's message to the room, pushes it to
// subscribers and schedules a simulated reply from another room member.
func (s *chatServiceImpl) SendMessage(actor *models.User, roomID string, req *dto.SendMessageRequest) (*models.ChatMessage, error) {
	if req.Text == "" {
		return nil, apperrors.ErrValidationFailed
	}
	room, err := s.chatRepo.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if !room.VisibleTo(actor) {
		return nil, apperrors.ErrRoomRestricted
	}

	msg, err := s.chatRepo.AppendMessage(roomID, models.ChatMessage{
		SenderID:  actor.ID,
		Text:      req.Text,
		Timestamp: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(roomID, dto.ChatEvent{
		Type:    dto.ChatEventMessage,
		RoomID:  roomID,
		Message: msg,
	})

	s.scheduleReply(room, actor.ID)
	return msg, nil
}

// scheduleReply picks another member of the room and has them answer
// after a short typing pause. Rooms where the actor is the only
// member stay quiet.
func (s *chatServiceImpl) scheduleReply(room *models.ChatRoom, actorID int64) {
	members := s.roomMembers(room)
	others := make([]*models.User, 0, len(members))
	for _, u := range members {
		if u.ID != actorID {
			others = append(others, u)
		}
	}
	if len(others) == 0 {
		return
	}

	replier := others[rand.Intn(len(others))]
	text := randomReplies[rand.Intn(len(randomReplies))]
	roomID := room.ID

	s.scheduler.After(typingDelay, func() {
		s.broadcaster.Broadcast(roomID, dto.ChatEvent{
			Type:   dto.ChatEventTyping,
			RoomID: roomID,
			UserID: replier.ID,
		})
	})
	replyDelay := replyDelayMin + time.Duration(rand.Int63n(int64(replyJitter)))
	s.scheduler.After(replyDelay, func() {
		reply, err := s.chatRepo.AppendMessage(roomID, models.ChatMessage{
			SenderID:  replier.ID,
			Text:      text,
			Timestamp: time.Now(),
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("roomId", roomID).Msg("Simulated reply dropped")
			return
		}
		s.broadcaster.Broadcast(roomID, dto.ChatEvent{
			Type:   dto.ChatEventStopTyping,
			RoomID: roomID,
			UserID: replier.ID,
		})
		s.broadcaster.Broadcast(roomID, dto.ChatEvent{
			Type:    dto.ChatEventMessage,
			RoomID:  roomID,
			Message: reply,
		})
	})
}

// roomMembers resolves the users who belong to the room
func (s *chatServiceImpl) roomMembers(room *models.ChatRoom) []*models.User {
	users := s.userRepo.GetAll()
	out := make([]*models.User, 0, len(users))
	for _, u := range users {
		if room.VisibleTo(u) {
			out = append(out, u)
		}
	}
	return out
}
