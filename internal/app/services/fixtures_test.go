package services

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/scheduler"
)

// recordingBroadcaster captures broadcast events for assertions
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []dto.ChatEvent
}

func (b *recordingBroadcaster) Broadcast(roomID string, event any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ev, ok := event.(dto.ChatEvent); ok {
		b.events = append(b.events, ev)
	}
}

func (b *recordingBroadcaster) recorded() []dto.ChatEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]dto.ChatEvent(nil), b.events...)
}

// fixture wires every service over a freshly seeded store
type fixture struct {
	store       *repositories.Store
	repos       *repositories.Repositories
	sched       *scheduler.Scheduler
	broadcaster *recordingBroadcaster

	notifications NotificationService
	users         UserService
	posts         PostService
	documents     DocumentService
	memories      MemoryService
	chat          ChatService
	reports       ReportService
	badges        BadgeService
	config        ConfigService
	stats         StatsService
	backup        BackupService
}

const (
	adminID     int64 = 1
	lopTruongID int64 = 2
	hocTapID    int64 = 3
	biThuID     int64 = 4
	memberID    int64 = 5
	doiSongID   int64 = 6
)

func seedUsers() []*models.User {
	return []*models.User{
		{ID: adminID, Name: "An", Role: models.RoleAdmin, Contact: models.Contact{Email: "an@example.com"}, Points: 100, Badges: []models.Badge{}},
		{ID: lopTruongID, Name: "Bình", Role: models.RoleLopTruong, Contact: models.Contact{Email: "binh@example.com"}, Points: 80, Badges: []models.Badge{}, Birthday: "15/05"},
		{ID: hocTapID, Name: "Cường", Role: models.RoleLopPhoHocTap, Contact: models.Contact{Email: "cuong@example.com"}, Points: 80, Badges: []models.Badge{}},
		{ID: biThuID, Name: "Dung", Role: models.RoleBiThu, Contact: models.Contact{Email: "dung@example.com"}, Points: 60, Badges: []models.Badge{}},
		{ID: memberID, Name: "Em", Role: models.RoleThanhVien, Contact: models.Contact{Email: "em@example.com"}, Points: 40, Badges: []models.Badge{}},
		{ID: doiSongID, Name: "Yến", Role: models.RoleLopPhoDoiSong, Contact: models.Contact{Email: "yen@example.com"}, Points: 20, Badges: []models.Badge{}},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := repositories.NewStore()
	store.Replace(&repositories.Snapshot{
		WebsiteConfig: &models.WebsiteConfig{
			ClassName:        "Lớp test",
			WebsiteName:      "ClassZone",
			WebsiteTitle:     "ClassZone",
			AllowedPostRoles: []models.Role{models.RoleAdmin, models.RoleLopTruong, models.RoleBiThu},
			Banner:           models.BannerConfig{Type: models.BannerInfo},
		},
		Users: seedUsers(),
		ChatRooms: []*models.ChatRoom{
			{ID: "general", Name: "Cả lớp", Messages: []models.ChatMessage{}},
			{ID: "committee", Name: "Ban Cán Sự", AllowedRoles: models.CommitteeRoles, Messages: []models.ChatMessage{}},
		},
	})

	repos := repositories.NewRepositories(store)
	sched := scheduler.New()
	t.Cleanup(sched.Close)

	lgr := zerolog.Nop()
	authz := auth.NewAuthorizationService()
	broadcaster := &recordingBroadcaster{}

	f := &fixture{
		store:       store,
		repos:       repos,
		sched:       sched,
		broadcaster: broadcaster,
	}
	f.notifications = NewNotificationService(repos.NotificationRepository, sched, lgr)
	f.users = NewUserService(repos.UserRepository, repos.PostRepository, repos.DocumentRepository, authz, lgr)
	f.posts = NewPostService(repos.PostRepository, repos.UserRepository, repos.ConfigRepository, authz, f.notifications, lgr)
	f.documents = NewDocumentService(repos.DocumentRepository, authz, lgr)
	f.memories = NewMemoryService(repos.MemoryRepository, authz, lgr)
	f.chat = NewChatService(repos.ChatRepository, repos.UserRepository, broadcaster, sched, lgr)
	f.reports = NewReportService(repos.ReportRepository, repos.PostRepository, repos.DocumentRepository, authz, lgr)
	f.badges = NewBadgeService(repos.BadgeRepository, authz, lgr)
	f.config = NewConfigService(repos.ConfigRepository, authz, lgr)
	f.stats = NewStatsService(repos.UserRepository, repos.PostRepository, repos.DocumentRepository, repos.MemoryRepository, repos.ReportRepository, authz, lgr)
	f.backup = NewBackupService(store, authz, lgr)
	return f
}

// user fetches a seeded member directly from the store
func (f *fixture) user(t *testing.T, id int64) *models.User {
	t.Helper()
	u, err := f.repos.UserRepository.GetByID(id)
	if err != nil {
		t.Fatalf("seeded user %d missing: %v", id, err)
	}
	return u
}
