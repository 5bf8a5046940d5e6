// Package store defines the vector store used by the ingestion and answer
// paths, with a Postgres/pgvector backend for production and an in-memory
// backend for tests and storage-less runs.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Hit is one nearest-neighbor match.
type Hit struct {
	ChunkText      string  `json:"chunk_text"`
	DocumentTitle  string  `json:"document_title"`
	DocumentSource string  `json:"document_source"`
	Similarity     float64 `json:"similarity"`
}

// DocumentInfo describes a stored document without its chunks.
type DocumentInfo struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Source     string    `json:"source"`
	SourceType string    `json:"source_type"`
	ChunkCount int64     `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store persists documents and their embedded chunks and answers
// nearest-neighbor queries by cosine similarity.
//
// All chunk vectors in a store share one dimensionality. The first inserted
// chunk establishes it; later inserts and queries with a different vector
// length fail with ErrDimensionMismatch instead of truncating or padding.
//
// NearestNeighbors orders results by similarity descending; ties are broken
// by insertion order (stable). k=0 returns an empty result, k larger than
// the number of stored chunks returns everything.
type Store interface {
	CreateDocument(ctx context.Context, title, source, sourceType string) (uuid.UUID, error)
	InsertChunk(ctx context.Context, documentID uuid.UUID, index int, text string, vector []float32, metadata map[string]interface{}) (uuid.UUID, error)
	NearestNeighbors(ctx context.Context, vector []float32, k int) ([]Hit, error)
	ListDocuments(ctx context.Context) ([]DocumentInfo, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	CountChunks(ctx context.Context, documentID uuid.UUID) (int64, error)
}
