package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"ebook-backend/internal/domains/testimonial/model"
	"ebook-backend/internal/infrastructure/store"
)

// CollectionTestimonials là collection chứa testimonial documents
const CollectionTestimonials = "testimonials"

// Repository là data access layer cho testimonials
type Repository interface {
	// FindAll trả về tất cả testimonials trong store
	// Store rỗng trả về slice rỗng, không phải error
	FindAll(ctx context.Context) ([]model.Testimonial, error)
}

type storeRepository struct {
	store store.DocumentStore
}

func NewStoreRepository(documentStore store.DocumentStore) Repository {
	return &storeRepository{store: documentStore}
}

func (r *storeRepository) FindAll(ctx context.Context) ([]model.Testimonial, error) {
	docs, err := r.store.FindMany(ctx, CollectionTestimonials)
	if err != nil {
		return nil, fmt.Errorf("failed to find testimonials: %w", err)
	}

	testimonials := make([]model.Testimonial, 0, len(docs))
	for _, raw := range docs {
		var t model.Testimonial
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}

	return testimonials, nil
}
