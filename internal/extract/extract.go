package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
)

// ErrUnsupportedFormat is returned for file types the extractor cannot read.
var ErrUnsupportedFormat = errors.New("extract: unsupported file format")

// ErrEmptyDocument is returned when a file yields no usable text.
var ErrEmptyDocument = errors.New("extract: document contains no text")

// File extracts plain text from the document at path. The document's
// source identifier is the base file name, which downstream components use
// as the citation key for evidence extracted from it.
func File(path string) (models.Document, error) {
	sourceID := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))

	var (
		segments []models.Segment
		err      error
	)
	switch ext {
	case ".pdf":
		segments, err = parsePDF(path)
	case ".docx":
		segments, err = parseDOCX(path)
	case ".pptx":
		segments, err = parsePPTX(path)
	case ".xlsx":
		segments, err = parseXLSX(path)
	case ".ods":
		segments, err = parseODS(path)
	case ".txt", ".text", ".log":
		segments, err = parseText(path)
	case ".md", ".markdown":
		segments, err = parseMarkdown(path)
	default:
		return models.Document{SourceID: sourceID}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return models.Document{SourceID: sourceID}, err
	}
	if len(segments) == 0 {
		return models.Document{SourceID: sourceID}, ErrEmptyDocument
	}
	return models.Document{SourceID: sourceID, Segments: segments}, nil
}

func parsePDF(path string) ([]models.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return nil, err
	}

	var segments []models.Segment
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		segments = append(segments, models.Segment{Text: pageText, Number: i})
	}
	return segments, nil
}

func parseDOCX(path string) ([]models.Segment, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc := r.Editable()
	var text strings.Builder
	for _, p := range strings.Split(doc.GetContent(), "\n") {
		p = stripXMLTags(p)
		if strings.TrimSpace(p) == "" {
			continue
		}
		text.WriteString(p)
		text.WriteString("\n")
	}
	if text.Len() == 0 {
		return nil, nil
	}
	return []models.Segment{{Text: text.String(), Number: 1}}, nil
}

func parsePPTX(path string) ([]models.Segment, error) {
	f, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var segments []models.Segment
	slide := 0
	for _, file := range f.File {
		if !strings.HasPrefix(file.Name, "ppt/slides/slide") {
			continue
		}
		slide++
		rc, err := file.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		slideText := extractDrawingText(string(data))
		if strings.TrimSpace(slideText) == "" {
			continue
		}
		segments = append(segments, models.Segment{Text: slideText, Number: slide})
	}
	return segments, nil
}

func parseXLSX(path string) ([]models.Segment, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, err
	}

	var segments []models.Segment
	for sheetNum, sheet := range f.Sheets {
		var text strings.Builder
		text.WriteString(fmt.Sprintf("Sheet: %s\n", sheet.Name))
		for _, row := range sheet.Rows {
			for _, cell := range row.Cells {
				text.WriteString(cell.String() + "\t")
			}
			text.WriteString("\n")
		}
		if strings.TrimSpace(text.String()) == "Sheet: "+sheet.Name {
			continue
		}
		segments = append(segments, models.Segment{Text: text.String(), Number: sheetNum + 1})
	}
	return segments, nil
}

func parseODS(path string) ([]models.Segment, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var segments []models.Segment
	for sheetNum, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			continue
		}
		var text strings.Builder
		text.WriteString(fmt.Sprintf("Sheet: %s\n", sheetName))
		empty := true
		for _, row := range rows {
			for _, cell := range row {
				if cell != "" {
					empty = false
				}
				text.WriteString(cell + "\t")
			}
			text.WriteString("\n")
		}
		if empty {
			continue
		}
		segments = append(segments, models.Segment{Text: text.String(), Number: sheetNum + 1})
	}
	return segments, nil
}

func parseText(path string) ([]models.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	return []models.Segment{{Text: string(data), Number: 1}}, nil
}

// parseMarkdown renders the markdown to HTML first so tables, links and
// formatting collapse into readable text, then strips the tags.
func parseMarkdown(path string) ([]models.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(data, &buf); err != nil {
		return nil, err
	}
	text := stripXMLTags(buf.String())
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return []models.Segment{{Text: text, Number: 1}}, nil
}

// extractDrawingText pulls the text runs (<a:t>…</a:t>) out of a slide's
// drawing XML without a full XML parse.
func extractDrawingText(xmlContent string) string {
	var text strings.Builder
	parts := strings.Split(xmlContent, "<a:t>")
	for i, part := range parts {
		if i == 0 {
			continue
		}
		if endIdx := strings.Index(part, "</a:t>"); endIdx >= 0 {
			text.WriteString(part[:endIdx] + " ")
		}
	}
	return text.String()
}

func stripXMLTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
