package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/scheduler"
)

// systemNoticeInterval is how often the automatic system notification
// is published.
const systemNoticeInterval = 30 * time.Second

// NotificationService defines the interface for notification operations
type NotificationService interface {
	GetAll() []*models.Notification
	UnreadCount() int
	MarkAllRead()
	Notify(kind models.NotificationType, text, link string) *models.Notification
	StartSystemNotices() (stop func())
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	scheduler        *scheduler.Scheduler
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	sched *scheduler.Scheduler,
	logger zerolog.Logger,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		scheduler:        sched,
		logger:           logger,
	}
}

// GetAll returns every notification, newest first
func (s *notificationServiceImpl) GetAll() []*models.Notification {
	return s.notificationRepo.GetAll()
}

// UnreadCount returns the number of unread notifications
func (s *notificationServiceImpl) UnreadCount() int {
	return s.notificationRepo.UnreadCount()
}

// MarkAllRead flags every notification as read
func (s *notificationServiceImpl) MarkAllRead() {
	s.notificationRepo.MarkAllRead()
}

// Notify records a new unread notification and returns it
func (s *notificationServiceImpl) Notify(kind models.NotificationType, text, link string) *models.Notification {
	n := &models.Notification{
		Type:      kind,
		Text:      text,
		Timestamp: time.Now(),
		Link:      link,
	}
	s.notificationRepo.Create(n)
	s.logger.Debug().
		Str("type", string(kind)).
		Int64("notificationId", n.ID).
		Msg("Notification created")
	return n
}

// StartSystemNotices begins publishing the periodic automatic system
// notification. The returned function stops the cycle.
func (s *notificationServiceImpl) StartSystemNotices() func() {
	return s.scheduler.Every(systemNoticeInterval, func() {
		text := fmt.Sprintf("Đây là một thông báo hệ thống tự động. Thời gian: %s",
			time.Now().Format("15:04:05"))
		s.Notify(models.NotificationSystem, text, "")
	})
}
