package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ebook-backend/internal/domains/content/service"
	"ebook-backend/internal/shared/response"
)

// =====================================================
// CONTENT HANDLER
// =====================================================

type ContentHandler struct {
	contentService service.Service
}

func NewContentHandler(contentService service.Service) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// GetContent trả về ebook content
// GET /api/v1/ebook/content
func (h *ContentHandler) GetContent(c *gin.Context) {
	book := h.contentService.GetContent(c.Request.Context())
	response.Success(c, http.StatusOK, book)
}
