package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ebook-backend/internal/domains/testimonial/service"
	"ebook-backend/internal/shared/response"
)

type TestimonialHandler struct {
	testimonialService service.Service
}

func NewTestimonialHandler(testimonialService service.Service) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
	}
}

// List trả về testimonials
// GET /api/v1/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials := h.testimonialService.List(c.Request.Context())
	response.Success(c, http.StatusOK, testimonials)
}
