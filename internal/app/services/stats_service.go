package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
)

// birthdayWindowDays is how far ahead the upcoming birthday list looks
const birthdayWindowDays = 30

// StatsService defines the interface for leaderboard and dashboard
// aggregations.
type StatsService interface {
	Leaderboard() []dto.LeaderboardEntry
	UpcomingBirthdays(now time.Time) []dto.UpcomingBirthday
	Dashboard(actorRole models.Role) (*dto.DashboardStats, error)
}

// statsServiceImpl implements StatsService
type statsServiceImpl struct {
	userRepo     *repositories.UserRepository
	postRepo     *repositories.PostRepository
	documentRepo *repositories.DocumentRepository
	memoryRepo   *repositories.MemoryRepository
	reportRepo   *repositories.ReportRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(
	userRepo *repositories.UserRepository,
	postRepo *repositories.PostRepository,
	documentRepo *repositories.DocumentRepository,
	memoryRepo *repositories.MemoryRepository,
	reportRepo *repositories.ReportRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) StatsService {
	return &statsServiceImpl{
		userRepo:     userRepo,
		postRepo:     postRepo,
		documentRepo: documentRepo,
		memoryRepo:   memoryRepo,
		reportRepo:   reportRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// Leaderboard ranks every member by points, highest first. The sort
// is stable, so members with equal points keep their roster order.
func (s *statsServiceImpl) Leaderboard() []dto.LeaderboardEntry {
	users := s.userRepo.GetAll()
	posts := s.postRepo.GetAll()
	docs := s.documentRepo.GetAll()

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Points > users[j].Points
	})

	out := make([]dto.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		out = append(out, dto.LeaderboardEntry{
			Rank:   i + 1,
			User:   buildUserResponse(u, posts, docs),
			Points: u.Points,
		})
	}
	return out
}

// daysUntilBirthday returns how many days separate now from the next
// occurrence of a dd/mm birthday, or -1 when the value is unparsable.
// A birthday today yields zero.
func daysUntilBirthday(birthday string, now time.Time) int {
	parts := strings.Split(birthday, "/")
	if len(parts) != 2 {
		return -1
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return -1
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = time.Date(now.Year()+1, time.Month(month), day, 0, 0, 0, 0, now.Location())
	}
	return int(next.Sub(today).Hours() / 24)
}

// UpcomingBirthdays returns members whose birthday falls within the
// next thirty days, soonest first.
func (s *statsServiceImpl) UpcomingBirthdays(now time.Time) []dto.UpcomingBirthday {
	users := s.userRepo.GetAll()
	posts := s.postRepo.GetAll()
	docs := s.documentRepo.GetAll()

	out := make([]dto.UpcomingBirthday, 0)
	for _, u := range users {
		if u.Birthday == "" {
			continue
		}
		days := daysUntilBirthday(u.Birthday, now)
		if days < 0 || days > birthdayWindowDays {
			continue
		}
		out = append(out, dto.UpcomingBirthday{
			User:      buildUserResponse(u, posts, docs),
			DaysUntil: days,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysUntil < out[j].DaysUntil
	})
	return out
}

// Dashboard returns the administrative overview counters
func (s *statsServiceImpl) Dashboard(actorRole models.Role) (*dto.DashboardStats, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}

	users := s.userRepo.GetAll()
	posts := s.postRepo.GetAll()
	docs := s.documentRepo.GetAll()

	stats := &dto.DashboardStats{
		TotalUsers:       len(users),
		TotalPosts:       len(posts),
		TotalDocuments:   len(docs),
		PendingDocuments: len(s.documentRepo.GetByStatus(models.StatusPending)),
		PendingMemories:  len(s.memoryRepo.GetByStatus(models.StatusPending)),
		PendingReports:   len(s.reportRepo.GetByStatus(models.ReportPending)),
	}
	for _, p := range posts {
		stats.TotalComments += len(p.Comments)
	}

	var top *models.User
	for _, u := range users {
		if top == nil || u.Points > top.Points {
			top = u
		}
	}
	if top != nil {
		resp := buildUserResponse(top, posts, docs)
		stats.TopUser = &resp
	}
	return stats, nil
}
