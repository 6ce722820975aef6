package generator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebook-backend/internal/domains/content/model"
)

func strPtr(s string) *string { return &s }

func testBook() *model.Book {
	return model.NewBook(
		"Titre de Test",
		"Sous-titre de test",
		"Auteur Test",
		42,
		[]model.Chapter{
			{
				Title:       "Premier Chapitre",
				Description: "Description du premier chapitre",
				Sections: []model.Section{
					{
						Subtitle:   "Première Section",
						Paragraphs: []string{"Paragraphe un.", "Paragraphe deux."},
						Tip:        strPtr("Un conseil utile"),
					},
					{
						Subtitle:   "Deuxième Section",
						Paragraphs: []string{"Paragraphe trois."},
					},
				},
			},
			{
				Title: "Deuxième Chapitre",
				Sections: []model.Section{
					{
						Subtitle:   "Section Unique",
						Paragraphs: []string{"Paragraphe quatre."},
					},
				},
			},
		},
	)
}

func TestBuildStory_TitlePageFirst(t *testing.T) {
	story := buildStory(testBook())
	require.NotEmpty(t, story)

	// Title page: title, subtitle, author line, copyright, rồi page break
	assert.Equal(t, kindTitle, story[0].kind)
	assert.Equal(t, "Titre de Test", story[0].text)
	assert.Equal(t, kindSubtitle, story[1].kind)
	assert.Equal(t, "Sous-titre de test", story[1].text)
	assert.Equal(t, kindSubtitle, story[2].kind)
	assert.Equal(t, "Par Auteur Test", story[2].text)
	assert.Equal(t, kindSubtitle, story[3].kind)
	assert.Contains(t, story[3].text, "©")
	assert.Equal(t, kindPageBreak, story[4].kind)
}

func TestBuildStory_TableOfContents(t *testing.T) {
	story := buildStory(testBook())

	// TOC ngay sau title page break
	assert.Equal(t, kindChapterTitle, story[5].kind)
	assert.Equal(t, "Table des Matières", story[5].text)

	assert.Equal(t, kindBody, story[6].kind)
	assert.Equal(t, "Chapitre 1: Premier Chapitre", story[6].text)
	assert.Equal(t, kindBody, story[7].kind)
	assert.Equal(t, "Chapitre 2: Deuxième Chapitre", story[7].text)

	// Page break tách TOC khỏi chapter đầu
	assert.Equal(t, kindPageBreak, story[8].kind)
}

func TestBuildStory_TOCMatchesChapterCount(t *testing.T) {
	book := model.DefaultBook()
	story := buildStory(book)

	var tocEntries []string
	inTOC := false
	for _, blk := range story {
		if blk.kind == kindChapterTitle && blk.text == "Table des Matières" {
			inTOC = true
			continue
		}
		if inTOC {
			if blk.kind != kindBody {
				break
			}
			tocEntries = append(tocEntries, blk.text)
		}
	}

	require.Len(t, tocEntries, len(book.Chapters))
	for i, chapter := range book.Chapters {
		assert.Equal(t, fmt.Sprintf("Chapitre %d: %s", i+1, chapter.Title), tocEntries[i])
	}
}

func TestBuildStory_ChapterLayout(t *testing.T) {
	story := buildStory(testBook())

	// Chapter 1 bắt đầu sau TOC page break (index 9)
	want := []block{
		{kind: kindChapterTitle, text: "Chapitre 1: Premier Chapitre"},
		{kind: kindSubtitle, text: "Description du premier chapitre"},
		{kind: kindSectionTitle, text: "Première Section"},
		{kind: kindBody, text: "Paragraphe un."},
		{kind: kindBody, text: "Paragraphe deux."},
		{kind: kindTip, text: "Conseil Pro : Un conseil utile"},
		{kind: kindSectionTitle, text: "Deuxième Section"},
		{kind: kindBody, text: "Paragraphe trois."},
		{kind: kindPageBreak},
		{kind: kindChapterTitle, text: "Chapitre 2: Deuxième Chapitre"},
		{kind: kindSectionTitle, text: "Section Unique"},
		{kind: kindBody, text: "Paragraphe quatre."},
	}

	got := story[9:]
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].kind, got[i].kind, "block %d kind", i)
		assert.Equal(t, want[i].text, got[i].text, "block %d text", i)
	}
}

func TestBuildStory_NoPageBreakAfterLastChapter(t *testing.T) {
	story := buildStory(testBook())
	require.NotEmpty(t, story)
	assert.NotEqual(t, kindPageBreak, story[len(story)-1].kind)
}

func TestBuildStory_NoDescriptionNoSubtitleBlock(t *testing.T) {
	book := testBook()
	story := buildStory(book)

	// Chapter 2 không có description → chapter title đi thẳng vào section
	for i, blk := range story {
		if blk.kind == kindChapterTitle && blk.text == "Chapitre 2: Deuxième Chapitre" {
			require.Less(t, i+1, len(story))
			assert.Equal(t, kindSectionTitle, story[i+1].kind)
			return
		}
	}
	t.Fatal("chapter 2 title block not found")
}

func TestBuildStory_EmptyTipSkipped(t *testing.T) {
	book := testBook()
	book.Chapters[0].Sections[0].Tip = strPtr("")
	story := buildStory(book)

	for _, blk := range story {
		assert.NotEqual(t, kindTip, blk.kind)
	}
}
