package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =====================================================
// POSTGRES DOCUMENT STORE IMPLEMENTATION
// =====================================================
// Documents được lưu trong một bảng duy nhất với JSONB payload:
//
//	CREATE TABLE IF NOT EXISTS documents (
//	    id         UUID PRIMARY KEY,
//	    collection TEXT NOT NULL,
//	    data       JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//	CREATE INDEX IF NOT EXISTS idx_documents_collection
//	    ON documents (collection, created_at);

type postgresDocumentStore struct {
	pool *pgxpool.Pool
}

func NewPostgresDocumentStore(pool *pgxpool.Pool) DocumentStore {
	return &postgresDocumentStore{pool: pool}
}

// EnsureSchema tạo bảng documents nếu chưa tồn tại
// Gọi một lần lúc startup, trước khi repositories được sử dụng
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS documents (
			id         UUID PRIMARY KEY,
			collection TEXT NOT NULL,
			data       JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_documents_collection
			ON documents (collection, created_at);
	`

	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure documents schema: %w", err)
	}

	return nil
}

func (s *postgresDocumentStore) FindOne(ctx context.Context, collection string) (json.RawMessage, error) {
	query := `
		SELECT data FROM documents
		WHERE collection = $1
		ORDER BY created_at ASC
		LIMIT 1
	`

	var data []byte
	err := s.pool.QueryRow(ctx, query, collection).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("failed to find document in %s: %w", collection, err)
	}

	return json.RawMessage(data), nil
}

func (s *postgresDocumentStore) FindMany(ctx context.Context, collection string) ([]json.RawMessage, error) {
	query := `
		SELECT data FROM documents
		WHERE collection = $1
		ORDER BY created_at ASC
	`

	rows, err := s.pool.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents in %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, json.RawMessage(data))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}

func (s *postgresDocumentStore) InsertOne(ctx context.Context, collection string, id uuid.UUID, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	query := `
		INSERT INTO documents (id, collection, data, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.pool.Exec(ctx, query, id, collection, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert document into %s: %w", collection, err)
	}

	return nil
}

func (s *postgresDocumentStore) Count(ctx context.Context, collection string) (int64, error) {
	query := `SELECT COUNT(*) FROM documents WHERE collection = $1`

	var count int64
	if err := s.pool.QueryRow(ctx, query, collection).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents in %s: %w", collection, err)
	}

	return count, nil
}
