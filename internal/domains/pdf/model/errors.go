package model

import "errors"

// Error codes
const (
	ErrCodeArtifactNotFound = "PDF001"
	ErrCodeRenderFailed     = "PDF002"
)

// Errors
var (
	// ErrArtifactNotFound: token không có artifact tương ứng
	// (chưa từng tồn tại, hoặc đã expired/purged)
	ErrArtifactNotFound = errors.New("pdf not found or expired")

	// ErrRenderFailed: assembly hoặc serialization thất bại
	// Không có token nào được trả về cho caller
	ErrRenderFailed = errors.New("failed to generate pdf")
)
