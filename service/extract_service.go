package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/qanooni/hr-assistant-be/types"
)

// OCR language packs passed to tesseract.
const ocrLanguages = "ara+eng"

// Scanned PDFs produce little or no text through the text layer; below this
// many characters we fall back to OCR.
const minPDFTextLength = 20

type extractorFunc func(ctx context.Context, filePath string) (string, error)

// ExtractService recovers plain text from uploaded documents. Extraction is
// keyed by file extension; PDF falls back to OCR when the text layer is
// empty, images always go through OCR.
type ExtractService struct {
	extractors map[string]extractorFunc
}

func NewExtractService() *ExtractService {
	s := &ExtractService{}
	s.extractors = map[string]extractorFunc{
		".pdf":  s.extractPDF,
		".docx": s.extractDOCX,
		".txt":  s.extractPlainText,
		".jpg":  s.extractImage,
		".jpeg": s.extractImage,
		".png":  s.extractImage,
	}
	return s
}

// SupportedExt reports whether an extractor is registered for the extension.
func (s *ExtractService) SupportedExt(ext string) bool {
	_, ok := s.extractors[strings.ToLower(ext)]
	return ok
}

// Extract pulls text from the file at filePath, choosing the extractor by
// extension. Fails with ErrUnsupportedFormat for unknown extensions and
// ErrEmptyExtraction when no text is recoverable.
func (s *ExtractService) Extract(ctx context.Context, filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	extractor, ok := s.extractors[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, ext)
	}

	text, err := extractor(ctx, filePath)
	if err != nil {
		return "", err
	}
	text = cleanText(text)
	if text == "" {
		return "", types.ErrEmptyExtraction
	}
	return text, nil
}

func (s *ExtractService) extractPDF(ctx context.Context, filePath string) (string, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return s.extractPDFWithOCR(ctx, filePath)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return s.extractPDFWithOCR(ctx, filePath)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	text := buf.String()
	if len(strings.TrimSpace(text)) < minPDFTextLength {
		if ocrText, ocrErr := s.extractPDFWithOCR(ctx, filePath); ocrErr == nil {
			return ocrText, nil
		}
	}
	return text, nil
}

// extractPDFWithOCR renders each page to an image with pdftoppm and runs
// tesseract over it.
func (s *ExtractService) extractPDFWithOCR(ctx context.Context, filePath string) (string, error) {
	tempDir, err := os.MkdirTemp("", "ocr-pages-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	convertCmd := exec.CommandContext(ctx, "pdftoppm", "-r", "200", "-png", filePath, filepath.Join(tempDir, "page"))
	if err := convertCmd.Run(); err != nil {
		return "", fmt.Errorf("failed to convert pdf pages to images: %w", err)
	}

	pages, err := filepath.Glob(filepath.Join(tempDir, "page-*.png"))
	if err != nil || len(pages) == 0 {
		return "", fmt.Errorf("failed to read page images: %w", err)
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(pages)

	var b strings.Builder
	for _, page := range pages {
		text, ocrErr := runTesseract(ctx, page)
		if ocrErr != nil {
			log.Printf("Warning: OCR failed for %s: %v", filepath.Base(page), ocrErr)
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (s *ExtractService) extractImage(ctx context.Context, filePath string) (string, error) {
	return runTesseract(ctx, filePath)
}

func runTesseract(ctx context.Context, imagePath string) (string, error) {
	ocrCmd := exec.CommandContext(ctx, "tesseract",
		imagePath,
		"stdout",
		"-l", ocrLanguages,
		"--oem", "3", // LSTM OCR Engine Mode
		"--psm", "3", // Auto-detect page segmentation mode
	)
	var ocrOut bytes.Buffer
	ocrCmd.Stdout = &ocrOut
	if err := ocrCmd.Run(); err != nil {
		return "", fmt.Errorf("failed to run tesseract: %w", err)
	}
	return ocrOut.String(), nil
}

func (s *ExtractService) extractDOCX(_ context.Context, filePath string) (string, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("read docx body: %w", err)
		}
		defer rc.Close()
		return docxText(rc)
	}
	return "", fmt.Errorf("docx has no word/document.xml")
}

// docxText collects the character data of the document body, inserting a line
// break at each paragraph end.
func docxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var b strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" {
				b.WriteString("\n")
			}
		}
	}
	return b.String(), nil
}

func (s *ExtractService) extractPlainText(_ context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}

func cleanText(text string) string {
	replacements := map[string]string{
		"\x00":   "",   // null character
		"\uFFFD": "",   // unicode replacement character
		"\x1b":   "",   // escape character
		"\r":     "",   // carriage return
		"\f":     "\n", // form feed to newline
	}
	cleaned := text
	for old, new := range replacements {
		cleaned = strings.ReplaceAll(cleaned, old, new)
	}
	return strings.TrimSpace(cleaned)
}
