package model

import "errors"

// Error codes
const (
	ErrCodeTrackingFailed = "TRK001"
)

var (
	// ErrTrackingFailed: không ghi được download record
	// Caller không được coi download là đã track thành công
	ErrTrackingFailed = errors.New("failed to record download")
)
