package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentModel "ebook-backend/internal/domains/content/model"
	"ebook-backend/internal/domains/pdf/generator"
	"ebook-backend/internal/domains/pdf/model"
	trackingModel "ebook-backend/internal/domains/tracking/model"
)

type fakeContentService struct{}

func (f *fakeContentService) GetContent(ctx context.Context) *contentModel.Book {
	return contentModel.DefaultBook()
}

type fakeTrackingService struct {
	recorded  []string // filenames
	recordErr error
}

func (f *fakeTrackingService) Record(ctx context.Context, userAgent, ipAddress, filename string) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, filename)
	return nil
}

func (f *fakeTrackingService) GetStatistics(ctx context.Context) *trackingModel.Statistics {
	return trackingModel.DefaultStatistics()
}

func newTestService(t *testing.T, tracking *fakeTrackingService) (Service, *generator.Generator) {
	t.Helper()

	gen, err := generator.New(t.TempDir())
	require.NoError(t, err)

	return NewPDFService(&fakeContentService{}, tracking, gen), gen
}

func TestGeneratePDF_ReturnsTokenAndRecordsDownload(t *testing.T) {
	tracking := &fakeTrackingService{}
	svc, gen := newTestService(t, tracking)

	result, err := svc.GeneratePDF(context.Background(), "Mozilla/5.0", "203.0.113.7")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "/api/v1/download-pdf/"+result.Token, result.DownloadURL)
	assert.Equal(t, model.DownloadFilename, result.Filename)

	// Artifact phải reachable ngay khi token được trả về
	assert.True(t, gen.Exists(result.Token))

	// Download record dùng artifact filename, không phải display filename
	require.Len(t, tracking.recorded, 1)
	assert.Equal(t, gen.Filename(result.Token), tracking.recorded[0])
}

func TestGeneratePDF_TrackingFailureAbortsRequest(t *testing.T) {
	tracking := &fakeTrackingService{
		recordErr: trackingModel.ErrTrackingFailed,
	}
	svc, _ := newTestService(t, tracking)

	result, err := svc.GeneratePDF(context.Background(), "UA", "203.0.113.7")

	require.Error(t, err)
	assert.ErrorIs(t, err, trackingModel.ErrTrackingFailed)
	assert.Nil(t, result)
}

func TestResolveDownload_IssuedToken(t *testing.T) {
	svc, gen := newTestService(t, &fakeTrackingService{})

	result, err := svc.GeneratePDF(context.Background(), "UA", "203.0.113.7")
	require.NoError(t, err)

	path, err := svc.ResolveDownload(result.Token)
	require.NoError(t, err)
	assert.Equal(t, gen.Path(result.Token), path)
}

func TestResolveDownload_UnknownToken(t *testing.T) {
	svc, _ := newTestService(t, &fakeTrackingService{})

	tests := []struct {
		name  string
		token string
	}{
		{"valid uuid never issued", "3f2b8c1e-9a4d-4e6f-8b2a-1c3d5e7f9a0b"},
		{"malformed token", "not-a-token"},
		{"empty token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := svc.ResolveDownload(tt.token)
			assert.ErrorIs(t, err, model.ErrArtifactNotFound)
			assert.Empty(t, path)
		})
	}
}

func TestPurge_RemovesNothingWhenFresh(t *testing.T) {
	svc, _ := newTestService(t, &fakeTrackingService{})

	_, err := svc.GeneratePDF(context.Background(), "UA", "203.0.113.7")
	require.NoError(t, err)

	removed, err := svc.Purge(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
