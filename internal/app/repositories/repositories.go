package repositories

// Repositories is the container for every entity repository, all
// backed by the same in-memory store.
type Repositories struct {
	Store *Store

	UserRepository         *UserRepository
	PostRepository         *PostRepository
	DocumentRepository     *DocumentRepository
	MemoryRepository       *MemoryRepository
	ChatRepository         *ChatRepository
	NotificationRepository *NotificationRepository
	ReportRepository       *ReportRepository
	BadgeRepository        *BadgeRepository
	ConfigRepository       *ConfigRepository
}

// NewRepositories creates all repositories over a shared store
func NewRepositories(store *Store) *Repositories {
	return &Repositories{
		Store:                  store,
		UserRepository:         NewUserRepository(store),
		PostRepository:         NewPostRepository(store),
		DocumentRepository:     NewDocumentRepository(store),
		MemoryRepository:       NewMemoryRepository(store),
		ChatRepository:         NewChatRepository(store),
		NotificationRepository: NewNotificationRepository(store),
		ReportRepository:       NewReportRepository(store),
		BadgeRepository:        NewBadgeRepository(store),
		ConfigRepository:       NewConfigRepository(store),
	}
}
