package service

import (
	"context"

	"ebook-backend/internal/domains/testimonial/model"
	"ebook-backend/internal/domains/testimonial/repository"
	"ebook-backend/pkg/logger"
)

// Service cung cấp testimonials với fallback về default set
type Service interface {
	List(ctx context.Context) []model.Testimonial
}

type testimonialService struct {
	repo repository.Repository
}

func NewTestimonialService(repo repository.Repository) Service {
	return &testimonialService{repo: repo}
}

// List trả về testimonials từ store.
// Store rỗng hoặc lookup fail → default 3-entry set.
// Testimonials không hợp lệ (rating ngoài 1-5) bị bỏ qua, có log.
func (s *testimonialService) List(ctx context.Context) []model.Testimonial {
	testimonials, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get testimonials from store, using defaults", err)
		return model.DefaultTestimonials()
	}

	if len(testimonials) == 0 {
		return model.DefaultTestimonials()
	}

	valid := make([]model.Testimonial, 0, len(testimonials))
	for _, t := range testimonials {
		if err := t.Validate(); err != nil {
			logger.Warn("Skipping invalid testimonial", map[string]interface{}{
				"id":    t.ID,
				"error": err.Error(),
			})
			continue
		}
		valid = append(valid, t)
	}

	if len(valid) == 0 {
		return model.DefaultTestimonials()
	}

	return valid
}
