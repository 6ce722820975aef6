package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// ErrNoDocument được trả về khi collection không có document nào
var ErrNoDocument = errors.New("no document found")

// DocumentStore là backing store kiểu document-oriented.
// Mỗi collection chứa các JSON documents, schema-less từ góc nhìn caller.
// Repositories tự unmarshal raw documents vào model của mình.
type DocumentStore interface {
	// FindOne trả về document đầu tiên (theo created_at) của collection
	// Returns ErrNoDocument nếu collection rỗng
	FindOne(ctx context.Context, collection string) (json.RawMessage, error)

	// FindMany trả về tất cả documents của collection theo created_at
	FindMany(ctx context.Context, collection string) ([]json.RawMessage, error)

	// InsertOne lưu một document mới vào collection
	InsertOne(ctx context.Context, collection string, id uuid.UUID, doc interface{}) error

	// Count đếm số documents trong collection
	Count(ctx context.Context, collection string) (int64, error)
}
