package model

import (
	"time"

	"github.com/google/uuid"
)

// Section là đơn vị nội dung nhỏ nhất của ebook
// Immutable sau khi construct
type Section struct {
	Subtitle   string   `json:"subtitle"`
	Paragraphs []string `json:"text"`
	Tip        *string  `json:"tips,omitempty"`
}

// Chapter thuộc sở hữu của Book; thứ tự chapters quyết định
// thứ tự đọc và thứ tự trong table of contents
type Chapter struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"content"`
}

// Book là root entity của content model.
// Pages là advisory metadata - không được đối chiếu với
// số trang thực tế của PDF render ra.
type Book struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Author   string    `json:"author"`
	Pages    int       `json:"pages"`
	Chapters []Chapter `json:"chapters"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBook tạo Book với ID và timestamps tự sinh
func NewBook(title, subtitle, author string, pages int, chapters []Chapter) *Book {
	now := time.Now().UTC()
	return &Book{
		ID:        uuid.NewString(),
		Title:     title,
		Subtitle:  subtitle,
		Author:    author,
		Pages:     pages,
		Chapters:  chapters,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
