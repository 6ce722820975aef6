package model

import "errors"

// Error codes
const (
	ErrCodeContentNotFound = "EBK001"
	ErrCodeStoreFailure    = "EBK002"
)

// Errors
var (
	// ErrContentNotFound: store không có content override document
	ErrContentNotFound = errors.New("ebook content not found in store")
)
