package generator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebook-backend/internal/domains/content/model"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()

	gen, err := New(t.TempDir())
	require.NoError(t, err)
	return gen
}

func TestGenerate_ArtifactExistsAfterRender(t *testing.T) {
	gen := newTestGenerator(t)

	token, err := gen.Generate(model.DefaultBook())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Token phải là UUID hợp lệ
	_, err = uuid.Parse(token)
	assert.NoError(t, err)

	assert.True(t, gen.Exists(token))

	// File thật sự tồn tại và không rỗng
	info, err := os.Stat(gen.Path(token))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerate_DistinctTokensPerRender(t *testing.T) {
	gen := newTestGenerator(t)
	book := model.DefaultBook()

	token1, err := gen.Generate(book)
	require.NoError(t, err)

	token2, err := gen.Generate(book)
	require.NoError(t, err)

	// Cùng content vẫn phải ra hai artifacts độc lập
	assert.NotEqual(t, token1, token2)
	assert.True(t, gen.Exists(token1))
	assert.True(t, gen.Exists(token2))
}

func TestGenerate_RejectsEmptyBook(t *testing.T) {
	gen := newTestGenerator(t)

	tests := []struct {
		name string
		book *model.Book
	}{
		{"nil book", nil},
		{"no chapters", model.NewBook("T", "S", "A", 0, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := gen.Generate(tt.book)
			assert.Error(t, err)
			assert.Empty(t, token)
		})
	}
}

func TestFilename_ArtifactNaming(t *testing.T) {
	gen := newTestGenerator(t)

	token := uuid.NewString()
	assert.Equal(t, "artifact_"+token+".pdf", gen.Filename(token))
}

func TestExists_UnknownToken(t *testing.T) {
	gen := newTestGenerator(t)

	// UUID hợp lệ nhưng chưa từng được issue
	assert.False(t, gen.Exists(uuid.NewString()))
}

func TestExists_MalformedToken(t *testing.T) {
	gen := newTestGenerator(t)

	tests := []string{
		"",
		"not-a-uuid",
		"../../../etc/passwd",
		"artifact_trick",
	}

	for _, token := range tests {
		assert.False(t, gen.Exists(token), "token %q", token)
	}
}

func TestPurgeOlderThan_RemovesExpiredKeepsFresh(t *testing.T) {
	gen := newTestGenerator(t)
	book := model.DefaultBook()

	expired, err := gen.Generate(book)
	require.NoError(t, err)

	fresh, err := gen.Generate(book)
	require.NoError(t, err)

	// Lùi mtime của artifact "expired" về 25h trước
	old := time.Now().Add(-25 * time.Hour)
	require.NoError(t, os.Chtimes(gen.Path(expired), old, old))

	removed, err := gen.PurgeOlderThan(24 * time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.False(t, gen.Exists(expired))
	assert.True(t, gen.Exists(fresh))
}

func TestPurgeOlderThan_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	gen, err := New(dir)
	require.NoError(t, err)

	// File không theo naming convention thì purge không được đụng vào
	foreign := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(foreign, []byte("keep me"), 0o644))

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(foreign, old, old))

	removed, err := gen.PurgeOlderThan(24 * time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 0, removed)
	_, err = os.Stat(foreign)
	assert.NoError(t, err)
}

func TestPurgeOlderThan_EmptyDir(t *testing.T) {
	gen := newTestGenerator(t)

	removed, err := gen.PurgeOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
