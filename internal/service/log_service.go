package service

import (
	"context"
	"fmt"
	"time"

	"socialecho/internal/models"
	"socialecho/internal/repository"
)

const defaultLogLimit = 100

// LogView is a log entry decorated with display timestamps for the console.
type LogView struct {
	*models.LogEntry
	FormattedTime string `json:"formatted_time"`
	RelativeTime  string `json:"relative_time"`
}

// LogService exposes the activity log to the admin console.
type LogService struct {
	logRepo repository.LogRepository
}

// NewLogService returns a new LogService.
func NewLogService(logRepo repository.LogRepository) *LogService {
	return &LogService{logRepo: logRepo}
}

// List returns the most recent entries, newest first.
func (s *LogService) List(ctx context.Context, limit int) ([]*LogView, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	entries, err := s.logRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]*LogView, 0, len(entries))
	for _, e := range entries {
		views = append(views, &LogView{
			LogEntry:      e,
			FormattedTime: e.CreatedAt.Format("2 January 2006, 15:04:05"),
			RelativeTime:  relativeTime(now.Sub(e.CreatedAt)),
		})
	}
	return views, nil
}

// Clear removes every entry from the activity log.
func (s *LogService) Clear(ctx context.Context) error {
	return s.logRepo.DeleteAll(ctx)
}

func relativeTime(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}
