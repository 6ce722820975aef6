package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Testimonial là feedback của một độc giả
// Read-only từ góc nhìn của core - chỉ được đọc từ store
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate kiểm tra testimonial hợp lệ (rating 1-5, các fields bắt buộc)
func (t Testimonial) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Content, validation.Required),
		validation.Field(&t.Rating, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

// DefaultTestimonials trả về bộ testimonials built-in.
// Fallback khi store rỗng hoặc lookup thất bại.
func DefaultTestimonials() []Testimonial {
	now := time.Now().UTC()
	return []Testimonial{
		{
			ID:        uuid.NewString(),
			Name:      "Marie L.",
			Role:      "Étudiante en Commerce",
			Content:   "J'ai réussi à gagner 1200€ en suivant les conseils sur le freelancing. Parfait pour financer mes études !",
			Rating:    5,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Thomas R.",
			Role:      "Étudiant en Informatique",
			Content:   "Les stratégies de vente en ligne m'ont permis de créer un complément de revenus stable. Très pratique !",
			Rating:    5,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Sarah M.",
			Role:      "Étudiante en Droit",
			Content:   "Guide très complet avec des méthodes réalistes. J'ai pu économiser pour mon voyage d'études.",
			Rating:    5,
			CreatedAt: now,
		},
	}
}
