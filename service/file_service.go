package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/qanooni/hr-assistant-be/store"
	"github.com/qanooni/hr-assistant-be/types"
)

// FileService is the ingestion pipeline: it saves an upload, extracts its
// text, chunks it, embeds every chunk and appends the tagged chunks to the
// corpus of the requested type. Temporary upload files are removed on both
// success and failure.
type FileService struct {
	uploadDir string
	corpus    *store.CorpusStore
	extract   *ExtractService
	chunker   *ChunkerService
	embedder  Embedder
}

func NewFileService(
	uploadDir string,
	corpus *store.CorpusStore,
	extract *ExtractService,
	chunker *ChunkerService,
	embedder Embedder,
) *FileService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		panic(err)
	}
	return &FileService{
		uploadDir: uploadDir,
		corpus:    corpus,
		extract:   extract,
		chunker:   chunker,
		embedder:  embedder,
	}
}

// IngestUpload runs the pipeline over a multipart upload.
func (s *FileService) IngestUpload(ctx context.Context, file *multipart.FileHeader, docType, source string) (*types.IngestResult, error) {
	tempPath, err := s.saveUpload(file)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempPath)

	return s.ingest(ctx, tempPath, file.Filename, docType, source)
}

// IngestFile runs the pipeline over a file already on disk. The file is not
// removed.
func (s *FileService) IngestFile(ctx context.Context, path, docType, source string) (*types.IngestResult, error) {
	return s.ingest(ctx, path, filepath.Base(path), docType, source)
}

// ExtractUpload saves an upload, extracts its text and cleans up. Used by the
// OCR endpoint, which returns text without touching any corpus.
func (s *FileService) ExtractUpload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	tempPath, err := s.saveUpload(file)
	if err != nil {
		return "", err
	}
	defer os.Remove(tempPath)

	return s.extract.Extract(ctx, tempPath)
}

// PreloadDirectory ingests every supported file in dir into the law corpus.
// Failures are logged per file and do not abort the batch.
func (s *FileService) PreloadDirectory(ctx context.Context, dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Cannot read laws directory %s: %v", dir, err)
		}
		return 0
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !s.extract.SupportedExt(filepath.Ext(entry.Name())) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		result, err := s.IngestFile(ctx, path, types.DocumentTypeLaw, types.SourceBackendLaws)
		if err != nil {
			log.Printf("Failed to load %s: %v", entry.Name(), err)
			continue
		}
		log.Printf("Loaded %d chunks from %s", result.Chunks, entry.Name())
		loaded++
	}
	if loaded > 0 {
		log.Printf("Law corpus ready: %d chunks from %d files", s.corpus.Count(types.DocumentTypeLaw), loaded)
	}
	return loaded
}

func (s *FileService) saveUpload(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.extract.SupportedExt(ext) {
		return "", fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	tempPath := filepath.Join(s.uploadDir, uuid.NewString()+ext)
	dst, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("save upload: %w", err)
	}
	return tempPath, nil
}

func (s *FileService) ingest(ctx context.Context, path, fileName, docType, source string) (*types.IngestResult, error) {
	text, err := s.extract.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	pieces, err := s.chunker.Split(text)
	if err != nil {
		return nil, err
	}

	metadata := types.DocumentMetadata{
		Type:     docType,
		FileName: fileName,
		Source:   source,
	}
	chunks := make([]types.DocumentChunk, 0, len(pieces))
	for _, piece := range pieces {
		embedding, err := s.embedder.EmbedText(ctx, piece)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, types.DocumentChunk{
			Content:   piece,
			Metadata:  metadata,
			Embedding: embedding,
		})
	}

	if err := s.corpus.Append(docType, chunks); err != nil {
		return nil, err
	}
	return &types.IngestResult{
		Chunks:      len(chunks),
		TotalChunks: s.corpus.Count(docType),
	}, nil
}
