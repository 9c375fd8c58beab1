package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

// LogService reads the audit trail. Log rows are written by the database
// trigger, never by the application.
type LogService struct {
	logRepo repository.LogRepository
}

func NewLogService(logRepo repository.LogRepository) *LogService {
	return &LogService{logRepo: logRepo}
}

// GetLog retrieves a log entry by ID
func (s *LogService) GetLog(ctx context.Context, id int64) (*domain.Log, error) {
	log, err := s.logRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewServiceError(http.StatusNotFound, "Log non trouvé")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}
	return log, nil
}

// ListLogs lists log entries with filtering
func (s *LogService) ListLogs(ctx context.Context, filter repository.LogFilter) ([]*domain.Log, error) {
	logs, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

// CountLogs counts log entries with filtering
func (s *LogService) CountLogs(ctx context.Context, filter repository.LogFilter) (int, error) {
	count, err := s.logRepo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count logs: %w", err)
	}
	return count, nil
}
