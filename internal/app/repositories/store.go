package repositories

import (
	"sync"
	"time"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
)

// Store is the in-memory entity store. All collections are guarded by a
// single mutex; every read hands out deep copies and every mutation
// builds fresh slices, so a snapshot taken by a reader is never
// corrupted by a later write.
type Store struct {
	mu     sync.RWMutex
	lastID int64

	users         []*models.User
	posts         []*models.Post
	documents     []*models.Document
	memories      []*models.Memory
	chatRooms     []*models.ChatRoom
	notifications []*models.Notification
	reports       []*models.Report
	badges        []models.Badge
	config        models.WebsiteConfig
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// NextID issues a fresh id, unique within the process. Ids are
// millisecond timestamps bumped past the previous issue so that rapid
// successive creates never collide.
func (s *Store) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextIDLocked()
}

func (s *Store) nextIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Snapshot is the serializable full application state used by backup
// export and restore. WebsiteConfig and Users are the minimum required
// for a restore document to be accepted.
type Snapshot struct {
	WebsiteConfig *models.WebsiteConfig  `json:"websiteConfig"`
	Users         []*models.User         `json:"users"`
	Posts         []*models.Post         `json:"posts"`
	Documents     []*models.Document     `json:"documents"`
	Memories      []*models.Memory       `json:"memories"`
	ChatRooms     []*models.ChatRoom     `json:"chatRooms"`
	Notifications []*models.Notification `json:"notifications"`
	Badges        []models.Badge         `json:"badges"`
	Reports       []*models.Report       `json:"reports"`
}

// Snapshot returns a deep copy of the entire store
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		WebsiteConfig: s.config.Clone(),
		Users:         make([]*models.User, len(s.users)),
		Posts:         make([]*models.Post, len(s.posts)),
		Documents:     make([]*models.Document, len(s.documents)),
		Memories:      make([]*models.Memory, len(s.memories)),
		ChatRooms:     make([]*models.ChatRoom, len(s.chatRooms)),
		Notifications: make([]*models.Notification, len(s.notifications)),
		Badges:        append([]models.Badge(nil), s.badges...),
		Reports:       make([]*models.Report, len(s.reports)),
	}
	for i, u := range s.users {
		snap.Users[i] = u.Clone()
	}
	for i, p := range s.posts {
		snap.Posts[i] = p.Clone()
	}
	for i, d := range s.documents {
		snap.Documents[i] = d.Clone()
	}
	for i, m := range s.memories {
		snap.Memories[i] = m.Clone()
	}
	for i, r := range s.chatRooms {
		snap.ChatRooms[i] = r.Clone()
	}
	for i, n := range s.notifications {
		snap.Notifications[i] = n.Clone()
	}
	for i, r := range s.reports {
		snap.Reports[i] = r.Clone()
	}
	return snap
}

// Replace swaps the entire store content for the snapshot in one
// atomic step. The caller validates the snapshot first; Replace itself
// never partially applies.
func (s *Store) Replace(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = *snap.WebsiteConfig.Clone()
	s.users = cloneUsers(snap.Users)
	s.posts = clonePosts(snap.Posts)
	s.documents = cloneDocuments(snap.Documents)
	s.memories = cloneMemories(snap.Memories)
	s.chatRooms = cloneRooms(snap.ChatRooms)
	s.notifications = cloneNotifications(snap.Notifications)
	s.badges = append([]models.Badge(nil), snap.Badges...)
	s.reports = cloneReports(snap.Reports)

	// keep the id counter ahead of every restored id
	for _, u := range s.users {
		if u.ID > s.lastID {
			s.lastID = u.ID
		}
	}
	for _, p := range s.posts {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
}

func cloneUsers(in []*models.User) []*models.User {
	out := make([]*models.User, len(in))
	for i, u := range in {
		out[i] = u.Clone()
	}
	return out
}

func clonePosts(in []*models.Post) []*models.Post {
	out := make([]*models.Post, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func cloneDocuments(in []*models.Document) []*models.Document {
	out := make([]*models.Document, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}

func cloneMemories(in []*models.Memory) []*models.Memory {
	out := make([]*models.Memory, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}

func cloneRooms(in []*models.ChatRoom) []*models.ChatRoom {
	out := make([]*models.ChatRoom, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

func cloneNotifications(in []*models.Notification) []*models.Notification {
	out := make([]*models.Notification, len(in))
	for i, n := range in {
		out[i] = n.Clone()
	}
	return out
}

func cloneReports(in []*models.Report) []*models.Report {
	out := make([]*models.Report, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
