package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ebook-backend/internal/domains/content/model"
	"ebook-backend/internal/infrastructure/store"
)

// CollectionEbookContent là collection chứa content override documents
const CollectionEbookContent = "ebook_content"

type storeRepository struct {
	store store.DocumentStore
}

func NewStoreRepository(documentStore store.DocumentStore) Repository {
	return &storeRepository{store: documentStore}
}

// FindContent lookup content override trong backing store.
// Document được trả về verbatim - không validate lại Book invariants
// ngoài những gì JSON schema của store enforce.
func (r *storeRepository) FindContent(ctx context.Context) (*model.Book, error) {
	raw, err := r.store.FindOne(ctx, CollectionEbookContent)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, model.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to find ebook content: %w", err)
	}

	var book model.Book
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ebook content: %w", err)
	}

	return &book, nil
}
