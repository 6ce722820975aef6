package generator

import (
	"fmt"
	"time"

	"ebook-backend/internal/domains/content/model"
)

// =====================================================
// STORY ASSEMBLY
// =====================================================
// Story là sequence tuyến tính các layout blocks, được build
// xong trước rồi mới serialize ra PDF. Tách assembly khỏi
// serialization để block order test được mà không cần parse PDF.

type blockKind int

const (
	kindTitle blockKind = iota
	kindSubtitle
	kindChapterTitle
	kindSectionTitle
	kindBody
	kindTip
	kindPageBreak
)

type block struct {
	kind blockKind
	text string
}

// buildStory chuyển Book thành story theo thứ tự cố định:
// title page -> page break -> table of contents -> page break ->
// chapters (page break giữa các chapters, không có sau chapter cuối)
func buildStory(book *model.Book) []block {
	var story []block

	// Title page
	story = append(story,
		block{kind: kindTitle, text: book.Title},
		block{kind: kindSubtitle, text: book.Subtitle},
		block{kind: kindSubtitle, text: fmt.Sprintf("Par %s", book.Author)},
		block{kind: kindSubtitle, text: fmt.Sprintf("© %d", time.Now().Year())},
		block{kind: kindPageBreak},
	)

	// Table of contents - một entry cho mỗi chapter, theo thứ tự
	story = append(story, block{kind: kindChapterTitle, text: "Table des Matières"})
	for i, chapter := range book.Chapters {
		story = append(story, block{
			kind: kindBody,
			text: fmt.Sprintf("Chapitre %d: %s", i+1, chapter.Title),
		})
	}
	story = append(story, block{kind: kindPageBreak})

	// Chapters
	for i, chapter := range book.Chapters {
		story = appendChapter(story, chapter, i+1)
		if i < len(book.Chapters)-1 {
			story = append(story, block{kind: kindPageBreak})
		}
	}

	return story
}

func appendChapter(story []block, chapter model.Chapter, number int) []block {
	story = append(story, block{
		kind: kindChapterTitle,
		text: fmt.Sprintf("Chapitre %d: %s", number, chapter.Title),
	})

	if chapter.Description != "" {
		story = append(story, block{kind: kindSubtitle, text: chapter.Description})
	}

	for _, section := range chapter.Sections {
		story = append(story, block{kind: kindSectionTitle, text: section.Subtitle})

		for _, paragraph := range section.Paragraphs {
			story = append(story, block{kind: kindBody, text: paragraph})
		}

		if section.Tip != nil && *section.Tip != "" {
			story = append(story, block{
				kind: kindTip,
				text: fmt.Sprintf("Conseil Pro : %s", *section.Tip),
			})
		}
	}

	return story
}
