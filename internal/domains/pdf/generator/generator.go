package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"ebook-backend/internal/domains/content/model"
	"ebook-backend/pkg/logger"
)

// Artifact naming: artifact_<token>.pdf
// Token là thông tin duy nhất cần để locate artifact
const (
	artifactPrefix = "artifact_"
	artifactExt    = ".pdf"
)

// Visual theme - presentation constants, không configurable per request
const (
	pageMarginMM = 25.4 // 1 inch
)

var (
	colorTitle    = rgb{79, 70, 229}   // #4F46E5
	colorSubtitle = rgb{107, 114, 128} // #6B7280
	colorChapter  = rgb{79, 70, 229}   // #4F46E5
	colorSection  = rgb{31, 41, 55}    // #1F2937
	colorBody     = rgb{55, 65, 81}    // #374151
	colorTip      = rgb{30, 64, 175}   // #1E40AF
	colorTipFill  = rgb{235, 244, 255} // #EBF4FF
)

type rgb struct {
	r, g, b int
}

// Generator render Book thành PDF artifacts trong storage directory
// và quản lý lifecycle của chúng (exists/locate/purge).
type Generator struct {
	storageDir string
}

func New(storageDir string) (*Generator, error) {
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create pdf storage dir: %w", err)
	}

	return &Generator{storageDir: storageDir}, nil
}

// Generate render book thành PDF artifact và trả về token.
// Artifact được ghi xong hoàn toàn trước khi return: nếu Generate
// trả về token thì Exists(token) = true cho đến khi bị purge.
// Mọi lỗi trong quá trình render đều abort - không có partial
// artifact nào reachable, token không bao giờ đến tay caller.
func (g *Generator) Generate(book *model.Book) (string, error) {
	if book == nil || len(book.Chapters) == 0 {
		return "", fmt.Errorf("cannot render book without chapters")
	}

	token := uuid.NewString()
	path := g.Path(token)

	story := buildStory(book)

	if err := writeStory(story, path); err != nil {
		// Dọn partial file nếu có - token này không bao giờ được trả về
		// nên cleanup failure ở đây không cần propagate
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Error("Failed to remove partial pdf artifact", rmErr)
		}
		return "", fmt.Errorf("failed to render pdf: %w", err)
	}

	logger.Info("PDF generated successfully", map[string]interface{}{
		"filename": g.Filename(token),
	})

	return token, nil
}

// Filename derive tên artifact từ token
func (g *Generator) Filename(token string) string {
	return artifactPrefix + token + artifactExt
}

// Path trả về đường dẫn đầy đủ của artifact cho token
func (g *Generator) Path(token string) string {
	return filepath.Join(g.storageDir, g.Filename(token))
}

// Exists kiểm tra artifact còn tồn tại cho token không.
// Token malformed (không phải UUID) coi như not found luôn -
// cũng chặn path traversal qua token.
func (g *Generator) Exists(token string) bool {
	if _, err := uuid.Parse(token); err != nil {
		return false
	}

	info, err := os.Stat(g.Path(token))
	return err == nil && !info.IsDir()
}

// PurgeOlderThan xóa các artifacts có mtime cũ hơn maxAge.
// Creation time lấy từ filesystem metadata, không từ index.
// Best-effort: một artifact xóa fail chỉ được log, scan tiếp tục.
func (g *Generator) PurgeOlderThan(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)

	entries, err := os.ReadDir(g.storageDir)
	if err != nil {
		return 0, fmt.Errorf("failed to scan pdf storage dir: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, artifactPrefix) || !strings.HasSuffix(name, artifactExt) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logger.Error("Failed to stat pdf artifact "+name, err)
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(g.storageDir, name)); err != nil {
				logger.Error("Failed to remove expired pdf artifact "+name, err)
				continue
			}
			removed++
		}
	}

	return removed, nil
}

// =====================================================
// SERIALIZATION
// =====================================================

// writeStory serialize story ra file PDF.
// A4, 1-inch margins, auto page break - chỉ các page breaks trong
// story là explicit, phần còn lại để flow layout của PDF tự lo.
func writeStory(story []block, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(true, pageMarginMM)

	// Core fonts là cp1252 - cần translator cho tiếng Pháp có dấu
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	// Title page bắt đầu thấp xuống một chút, giống bản in
	pdf.Ln(50)

	for _, blk := range story {
		switch blk.kind {
		case kindTitle:
			pdf.SetFont("Helvetica", "B", 24)
			pdf.SetTextColor(colorTitle.r, colorTitle.g, colorTitle.b)
			pdf.MultiCell(0, 12, tr(blk.text), "", "C", false)
			pdf.Ln(10)

		case kindSubtitle:
			pdf.SetFont("Helvetica", "", 16)
			pdf.SetTextColor(colorSubtitle.r, colorSubtitle.g, colorSubtitle.b)
			pdf.MultiCell(0, 8, tr(blk.text), "", "C", false)
			pdf.Ln(6)

		case kindChapterTitle:
			pdf.SetFont("Helvetica", "B", 20)
			pdf.SetTextColor(colorChapter.r, colorChapter.g, colorChapter.b)
			pdf.MultiCell(0, 10, tr(blk.text), "", "L", false)
			pdf.Ln(4)

		case kindSectionTitle:
			pdf.SetFont("Helvetica", "B", 16)
			pdf.SetTextColor(colorSection.r, colorSection.g, colorSection.b)
			pdf.MultiCell(0, 8, tr(blk.text), "", "L", false)
			pdf.Ln(2)

		case kindBody:
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(colorBody.r, colorBody.g, colorBody.b)
			pdf.MultiCell(0, 6, tr(blk.text), "", "J", false)
			pdf.Ln(2)

		case kindTip:
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(colorTip.r, colorTip.g, colorTip.b)
			pdf.SetFillColor(colorTipFill.r, colorTipFill.g, colorTipFill.b)
			pdf.MultiCell(0, 6, tr(blk.text), "", "L", true)
			pdf.Ln(4)

		case kindPageBreak:
			pdf.AddPage()
		}
	}

	if pdf.Err() {
		return fmt.Errorf("pdf assembly failed: %w", pdf.Error())
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write pdf file: %w", err)
	}

	return nil
}
