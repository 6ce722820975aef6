package service

import (
	"context"
	"fmt"

	"ebook-backend/internal/domains/tracking/model"
	"ebook-backend/internal/domains/tracking/repository"
	"ebook-backend/pkg/logger"
)

// Service là Usage Tracker.
// Record propagate store failures (audit trail bắt buộc),
// GetStatistics thì degrade về default thay vì fail.
type Service interface {
	Record(ctx context.Context, userAgent, ipAddress, filename string) error
	GetStatistics(ctx context.Context) *model.Statistics
}

type trackingService struct {
	repo repository.Repository
}

func NewTrackingService(repo repository.Repository) Service {
	return &trackingService{repo: repo}
}

// Record ghi một download record.
// Lỗi được propagate: một usage record ghi fail không được
// âm thầm trông như đã thành công với caller.
func (s *trackingService) Record(ctx context.Context, userAgent, ipAddress, filename string) error {
	record := model.NewDownloadRecord(userAgent, ipAddress, filename)

	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid download record: %w", err)
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", model.ErrTrackingFailed, err)
	}

	return nil
}

// GetStatistics trả về platform statistics.
// Store failure → zero-count default thay vì error
// ("statistics unavailable" không đáng làm fail cả endpoint)
func (s *trackingService) GetStatistics(ctx context.Context) *model.Statistics {
	stats := model.DefaultStatistics()

	count, err := s.repo.CountAll(ctx)
	if err != nil {
		logger.Error("Failed to count downloads, returning default statistics", err)
		return stats
	}

	stats.TotalDownloads = count
	return stats
}
