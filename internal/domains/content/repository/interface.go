package repository

import (
	"context"

	"ebook-backend/internal/domains/content/model"
)

// Repository là data access layer cho ebook content
type Repository interface {
	// FindContent tìm content override document trong backing store
	// Returns model.ErrContentNotFound nếu store không có document nào
	FindContent(ctx context.Context) (*model.Book, error)
}
