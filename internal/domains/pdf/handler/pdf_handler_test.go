package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebook-backend/internal/domains/pdf/model"
)

type fakePDFService struct {
	generateResult *model.GenerateResponse
	generateErr    error
	resolvePath    string
	resolveErr     error
}

func (f *fakePDFService) GeneratePDF(ctx context.Context, userAgent, ipAddress string) (*model.GenerateResponse, error) {
	return f.generateResult, f.generateErr
}

func (f *fakePDFService) ResolveDownload(token string) (string, error) {
	return f.resolvePath, f.resolveErr
}

func (f *fakePDFService) Purge(maxAge time.Duration) (int, error) {
	return 0, nil
}

func setupRouter(svc *fakePDFService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewPDFHandler(svc)
	router := gin.New()
	router.POST("/api/v1/generate-pdf", h.GeneratePDF)
	router.GET("/api/v1/download-pdf/:token", h.DownloadPDF)
	return router
}

func TestGeneratePDF_Success(t *testing.T) {
	svc := &fakePDFService{
		generateResult: &model.GenerateResponse{
			Token:       "3f2b8c1e-9a4d-4e6f-8b2a-1c3d5e7f9a0b",
			DownloadURL: "/api/v1/download-pdf/3f2b8c1e-9a4d-4e6f-8b2a-1c3d5e7f9a0b",
			Filename:    model.DownloadFilename,
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-pdf", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                   `json:"success"`
		Data    model.GenerateResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, svc.generateResult.Token, body.Data.Token)
	assert.Equal(t, svc.generateResult.DownloadURL, body.Data.DownloadURL)
	assert.Equal(t, model.DownloadFilename, body.Data.Filename)
}

func TestGeneratePDF_RenderFailure(t *testing.T) {
	svc := &fakePDFService{generateErr: model.ErrRenderFailed}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-pdf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, model.ErrCodeRenderFailed, body.Error.Code)
}

func TestDownloadPDF_UnknownToken(t *testing.T) {
	svc := &fakePDFService{resolveErr: model.ErrArtifactNotFound}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/download-pdf/3f2b8c1e-9a4d-4e6f-8b2a-1c3d5e7f9a0b", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, model.ErrCodeArtifactNotFound, body.Error.Code)
}

func TestDownloadPDF_ServesAttachment(t *testing.T) {
	// File thật trên disk - FileAttachment đọc từ path
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact_test.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644))

	svc := &fakePDFService{resolvePath: path}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/download-pdf/3f2b8c1e-9a4d-4e6f-8b2a-1c3d5e7f9a0b", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), model.DownloadFilename)
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
}
