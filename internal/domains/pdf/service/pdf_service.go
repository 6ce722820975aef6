package service

import (
	"context"
	"fmt"
	"time"

	contentService "ebook-backend/internal/domains/content/service"
	"ebook-backend/internal/domains/pdf/generator"
	"ebook-backend/internal/domains/pdf/model"
	trackingService "ebook-backend/internal/domains/tracking/service"
	"ebook-backend/pkg/logger"
)

// Service orchestrate render flow: content -> generator -> tracking.
type Service interface {
	// GeneratePDF render ebook hiện tại và trả về token + download info
	GeneratePDF(ctx context.Context, userAgent, ipAddress string) (*model.GenerateResponse, error)

	// ResolveDownload map token về file path của artifact
	// Returns model.ErrArtifactNotFound nếu token không có artifact
	// (chưa từng được issue, malformed, hoặc đã expired)
	ResolveDownload(token string) (string, error)

	// Purge xóa artifacts cũ hơn maxAge, trả về số lượng đã xóa
	Purge(maxAge time.Duration) (int, error)
}

type pdfService struct {
	content  contentService.Service
	tracking trackingService.Service
	gen      *generator.Generator
}

func NewPDFService(
	content contentService.Service,
	tracking trackingService.Service,
	gen *generator.Generator,
) Service {
	return &pdfService{
		content:  content,
		tracking: tracking,
		gen:      gen,
	}
}

// GeneratePDF render ebook và ghi download record.
// Tracking write fail làm fail cả request: mỗi download phải có
// audit trail, không được trả token khi record chưa ghi được.
// (Artifact đã render sẽ bị purge sweep dọn sau.)
func (s *pdfService) GeneratePDF(ctx context.Context, userAgent, ipAddress string) (*model.GenerateResponse, error) {
	// Step 1: Get content (không bao giờ fail - fallback về default)
	book := s.content.GetContent(ctx)

	// Step 2: Render artifact
	token, err := s.gen.Generate(book)
	if err != nil {
		logger.Error("PDF generation failed", err)
		return nil, fmt.Errorf("%w: %v", model.ErrRenderFailed, err)
	}

	// Step 3: Track download (bắt buộc)
	if err := s.tracking.Record(ctx, userAgent, ipAddress, s.gen.Filename(token)); err != nil {
		logger.Error("Failed to record download, aborting generate", err)
		return nil, err
	}

	return &model.GenerateResponse{
		Token:       token,
		DownloadURL: fmt.Sprintf("/api/v1/download-pdf/%s", token),
		Filename:    model.DownloadFilename,
	}, nil
}

func (s *pdfService) ResolveDownload(token string) (string, error) {
	if !s.gen.Exists(token) {
		return "", model.ErrArtifactNotFound
	}
	return s.gen.Path(token), nil
}

func (s *pdfService) Purge(maxAge time.Duration) (int, error) {
	return s.gen.PurgeOlderThan(maxAge)
}
