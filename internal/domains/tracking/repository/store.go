package repository

import (
	"context"
	"fmt"

	"ebook-backend/internal/domains/tracking/model"
	"ebook-backend/internal/infrastructure/store"
)

// CollectionDownloadTracking là collection chứa download records
const CollectionDownloadTracking = "download_tracking"

// Repository là data access layer cho download tracking
type Repository interface {
	// Insert ghi một download record mới (append-only)
	Insert(ctx context.Context, record *model.DownloadRecord) error

	// CountAll đếm tổng số download records
	CountAll(ctx context.Context) (int64, error)
}

type storeRepository struct {
	store store.DocumentStore
}

func NewStoreRepository(documentStore store.DocumentStore) Repository {
	return &storeRepository{store: documentStore}
}

func (r *storeRepository) Insert(ctx context.Context, record *model.DownloadRecord) error {
	if err := r.store.InsertOne(ctx, CollectionDownloadTracking, record.ID, record); err != nil {
		return fmt.Errorf("failed to insert download record: %w", err)
	}
	return nil
}

func (r *storeRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.store.Count(ctx, CollectionDownloadTracking)
	if err != nil {
		return 0, fmt.Errorf("failed to count download records: %w", err)
	}
	return count, nil
}
