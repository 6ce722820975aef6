package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"ebook-backend/internal/domains/pdf/service"
	"ebook-backend/internal/shared"
	"ebook-backend/internal/shared/utils"
	"ebook-backend/pkg/logger"
)

// ================================================
// CLEANUP EXPIRED PDFS JOB HANDLER
// ================================================

type CleanupExpiredPDFsHandler struct {
	pdfService     service.Service
	retentionHours int
}

func NewCleanupExpiredPDFsHandler(pdfService service.Service, retentionHours int) *CleanupExpiredPDFsHandler {
	return &CleanupExpiredPDFsHandler{
		pdfService:     pdfService,
		retentionHours: retentionHours,
	}
}

func (h *CleanupExpiredPDFsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.CleanupExpiredPDFsPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		// Payload lỗi thì dùng retention từ config
		logger.Error("Failed to unmarshal cleanup payload, using configured retention", err)
	}

	hours := payload.RetentionHours
	if hours <= 0 {
		hours = h.retentionHours
	}

	maxAge := time.Duration(hours) * time.Hour

	logger.Info("Starting CleanupExpiredPDFs job", map[string]interface{}{
		"retention_hours": hours,
	})

	removed, err := h.pdfService.Purge(maxAge)
	if err != nil {
		return fmt.Errorf("cleanup expired pdfs: %w", err)
	}

	logger.Info("Completed CleanupExpiredPDFs job", map[string]interface{}{
		"removed_count": removed,
	})

	return nil
}
