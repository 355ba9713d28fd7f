// Package extract turns an uploaded document into a single normalized text
// string. Format is detected by content sniffing, never by the supplied
// filename extension.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type SourceType string

const (
	SourcePDF     SourceType = "pdf"
	SourceDOCX    SourceType = "docx"
	SourceTXT     SourceType = "txt"
	SourceUnknown SourceType = "unknown"
)

// ErrTooShort signals a likely scanned document: extraction yielded almost no
// text and no OCR fallback could recover it.
var ErrTooShort = errors.New("extracted text is too short; the document may be a scanned image, OCR required")

// scannedThreshold is the minimum non-whitespace character count below which a
// document is treated as scanned/empty.
const scannedThreshold = 250

// OCRFunc is an optional fallback for scanned documents. It may return empty
// text; the result is held to the same threshold as the primary extraction.
type OCRFunc func(data []byte) (string, error)

type Extraction struct {
	SourceType SourceType
	Text       string
}

type Extractor struct {
	// MaxPDFPages caps extraction to the first N pages as a latency control.
	// 0 extracts every page.
	MaxPDFPages int
	OCR         OCRFunc
}

// ExtractFile reads the file at path and returns its text. PDF text carries
// "--- PAGE N ---" markers between pages so downstream consumers can tell
// page origin apart.
func (e *Extractor) ExtractFile(path string) (Extraction, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Extraction{}, fmt.Errorf("reading upload: %w", err)
	}
	return e.ExtractBytes(buf)
}

func (e *Extractor) ExtractBytes(buf []byte) (Extraction, error) {
	mtype := mimetype.Detect(buf)

	switch {
	case mtype.Is("application/pdf"):
		text, err := e.extractPDF(buf)
		if err != nil {
			return Extraction{}, err
		}
		if looksScannedOrEmpty(text) {
			ocrText, ok := e.tryOCR(buf)
			if !ok {
				return Extraction{}, ErrTooShort
			}
			text = ocrText
		}
		return Extraction{SourceType: SourcePDF, Text: text}, nil

	case mtype.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
		text, err := extractDOCX(buf)
		if err != nil {
			return Extraction{}, err
		}
		return Extraction{SourceType: SourceDOCX, Text: text}, nil

	default:
		// Treat everything else as UTF-8 text rather than failing outright.
		text := string(buf)
		st := SourceTXT
		if !mtype.Is("text/plain") {
			st = SourceUnknown
		}
		return Extraction{SourceType: st, Text: text}, nil
	}
}

func (e *Extractor) extractPDF(buf []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	numPages := reader.NumPage()
	if e.MaxPDFPages > 0 && numPages > e.MaxPDFPages {
		numPages = e.MaxPDFPages
	}

	var b strings.Builder
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n\n--- PAGE %d ---\n\n%s", i, text)
	}
	return strings.TrimSpace(b.String()), nil
}

func extractDOCX(buf []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

func (e *Extractor) tryOCR(buf []byte) (string, bool) {
	if e.OCR == nil {
		return "", false
	}
	text, err := e.OCR(buf)
	if err != nil || looksScannedOrEmpty(text) {
		return "", false
	}
	return text, true
}

func looksScannedOrEmpty(text string) bool {
	compact := 0
	for _, r := range text {
		if !isSpace(r) {
			compact++
			if compact >= scannedThreshold {
				return false
			}
		}
	}
	return true
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
