package types

const (
	DocumentTypeLaw      = "law"
	DocumentTypeContract = "contract"
)

// Source origins recorded on every chunk.
const (
	SourceBackendLaws = "backend_laws"
	SourceAdminUpload = "upload/admin"
	SourceUserUpload  = "upload/user"
)

// DocumentMetadata identifies where a chunk came from.
type DocumentMetadata struct {
	Type     string `json:"type"`
	FileName string `json:"fileName"`
	Source   string `json:"source"`
}

// DocumentChunk is the unit of retrieval. The embedding is computed once at
// ingestion time and reused for every query against the chunk.
type DocumentChunk struct {
	Content   string
	Metadata  DocumentMetadata
	Embedding []float32
}

// ScoredChunk pairs a chunk with its similarity to a query. Produced per
// query, never stored.
type ScoredChunk struct {
	Chunk DocumentChunk
	Score float64
}

// DocumentServiceConfig contains configuration options for text chunking
type DocumentServiceConfig struct {
	MaxChunkSize int // Maximum size for text chunks
	OverlapSize  int // Size of overlap between chunks
}

// IngestResult summarizes a single document ingestion.
type IngestResult struct {
	Chunks      int // chunks produced from this document
	TotalChunks int // corpus size after the append
}
