package main

import (
	"github.com/hibiken/asynq"

	pdfJob "ebook-backend/internal/domains/pdf/job"
	"ebook-backend/internal/shared"
	"ebook-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Maintenance handlers
	cleanupExpiredPDFs *pdfJob.CleanupExpiredPDFsHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	return &HandlerRegistry{
		cleanupExpiredPDFs: pdfJob.NewCleanupExpiredPDFsHandler(c.PDFService, cfg.RetentionHours),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Maintenance tasks
	mux.HandleFunc(shared.TypeCleanupExpiredPDFs, h.cleanupExpiredPDFs.ProcessTask)
}
