package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ebook-backend/internal/domains/pdf/model"
	"ebook-backend/internal/domains/pdf/service"
	"ebook-backend/internal/shared/response"
)

// =====================================================
// PDF HANDLER
// =====================================================

type PDFHandler struct {
	pdfService service.Service
}

func NewPDFHandler(pdfService service.Service) *PDFHandler {
	return &PDFHandler{
		pdfService: pdfService,
	}
}

// GeneratePDF render ebook và trả về download token
// POST /api/v1/generate-pdf
func (h *PDFHandler) GeneratePDF(c *gin.Context) {
	// Step 1: Get client info
	userAgent := c.Request.UserAgent()
	if userAgent == "" {
		userAgent = "Unknown"
	}
	ipAddress := c.GetString("client_ip")
	if ipAddress == "" {
		ipAddress = c.ClientIP()
	}

	// Step 2: Call service
	result, err := h.pdfService.GeneratePDF(c.Request.Context(), userAgent, ipAddress)
	if err != nil {
		// Render và tracking failures đều là generic 500 với user -
		// chi tiết đã được log ở service layer
		response.ErrorResponse(c, http.StatusInternalServerError,
			model.ErrCodeRenderFailed, "Error generating PDF")
		return
	}

	// Step 3: Return token
	response.Success(c, http.StatusOK, result)
}

// DownloadPDF trả về PDF artifact cho token
// GET /api/v1/download-pdf/:token
//
// Token unknown, malformed hoặc expired đều là 404 -
// một artifact không tồn tại không bao giờ được report là có.
func (h *PDFHandler) DownloadPDF(c *gin.Context) {
	token := c.Param("token")

	path, err := h.pdfService.ResolveDownload(token)
	if err != nil {
		if errors.Is(err, model.ErrArtifactNotFound) {
			response.ErrorResponse(c, http.StatusNotFound,
				model.ErrCodeArtifactNotFound, "PDF not found or expired")
			return
		}
		response.InternalServerError(c, "Error downloading PDF")
		return
	}

	c.FileAttachment(path, model.DownloadFilename)
}
