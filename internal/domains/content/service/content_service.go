package service

import (
	"context"
	"errors"
	"time"

	"ebook-backend/internal/domains/content/model"
	"ebook-backend/internal/domains/content/repository"
	"ebook-backend/pkg/cache"
	"ebook-backend/pkg/logger"
)

// cacheKeyContent và TTL cho content cache
// Content gần như static nên TTL ngắn là đủ để giảm store load
const (
	cacheKeyContent = "ebook:content"
	contentCacheTTL = 5 * time.Minute
)

// Service là Content Model Provider.
// GetContent không bao giờ fail outward: mọi store failure đều
// collapse về default Book tại đúng một seam (method này).
type Service interface {
	GetContent(ctx context.Context) *model.Book
}

type contentService struct {
	repo  repository.Repository
	cache cache.Cache
}

func NewContentService(repo repository.Repository, cache cache.Cache) Service {
	return &contentService{
		repo:  repo,
		cache: cache,
	}
}

// GetContent trả về ebook content.
// Thứ tự lookup: cache -> backing store -> built-in default.
// Cache và store failures đều non-fatal.
func (s *contentService) GetContent(ctx context.Context) *model.Book {
	// Step 1: Try cache (best-effort)
	var cached model.Book
	if found, err := s.cache.Get(ctx, cacheKeyContent, &cached); err == nil && found {
		return &cached
	}

	// Step 2: Try backing store
	book, err := s.repo.FindContent(ctx)
	if err == nil {
		// Cache failure không ảnh hưởng response
		if cacheErr := s.cache.Set(ctx, cacheKeyContent, book, contentCacheTTL); cacheErr != nil {
			logger.Error("Failed to cache ebook content", cacheErr)
		}
		return book
	}

	// Step 3: Fall back to built-in default
	if errors.Is(err, model.ErrContentNotFound) {
		logger.Debug("No content override in store, using default content")
	} else {
		logger.Error("Failed to get ebook content from store, using default content", err)
	}

	return model.DefaultBook()
}
