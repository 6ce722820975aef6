package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebook-backend/internal/domains/testimonial/model"
)

type fakeRepository struct {
	testimonials []model.Testimonial
	err          error
}

func (f *fakeRepository) FindAll(ctx context.Context) ([]model.Testimonial, error) {
	return f.testimonials, f.err
}

func validTestimonial(name string, rating int) model.Testimonial {
	return model.Testimonial{
		ID:        "t-" + name,
		Name:      name,
		Role:      "Étudiant",
		Content:   "Très utile.",
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
}

func TestList_ReturnsStoredTestimonials(t *testing.T) {
	repo := &fakeRepository{testimonials: []model.Testimonial{
		validTestimonial("Alice", 5),
		validTestimonial("Bob", 4),
	}}
	svc := NewTestimonialService(repo)

	result := svc.List(context.Background())

	require.Len(t, result, 2)
	assert.Equal(t, "Alice", result[0].Name)
	assert.Equal(t, "Bob", result[1].Name)
}

func TestList_DefaultsWhenStoreEmpty(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewTestimonialService(repo)

	result := svc.List(context.Background())

	require.Len(t, result, 3)
	for _, testimonial := range result {
		assert.NoError(t, testimonial.Validate())
	}
}

func TestList_DefaultsOnStoreFailure(t *testing.T) {
	repo := &fakeRepository{err: errors.New("store down")}
	svc := NewTestimonialService(repo)

	result := svc.List(context.Background())

	require.Len(t, result, 3)
}

func TestList_FiltersInvalidRatings(t *testing.T) {
	repo := &fakeRepository{testimonials: []model.Testimonial{
		validTestimonial("Alice", 5),
		validTestimonial("Bob", 0), // rating ngoài khoảng
		validTestimonial("Carol", 6),
	}}
	svc := NewTestimonialService(repo)

	result := svc.List(context.Background())

	require.Len(t, result, 1)
	assert.Equal(t, "Alice", result[0].Name)
}

func TestList_AllInvalidFallsBackToDefaults(t *testing.T) {
	repo := &fakeRepository{testimonials: []model.Testimonial{
		validTestimonial("Bob", 0),
	}}
	svc := NewTestimonialService(repo)

	result := svc.List(context.Background())

	require.Len(t, result, 3)
}
