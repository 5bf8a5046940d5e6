package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/markusluicellas/luibot/internal/embedding"
	"github.com/markusluicellas/luibot/internal/segment"
	"github.com/markusluicellas/luibot/internal/store"
)

// IngestResult reports how much of a document was stored. Partial is set
// when embedding or storage failed partway: earlier chunks are already
// durable, so the caller sees how far ingestion got instead of a hard error.
type IngestResult struct {
	DocumentID uuid.UUID
	ChunkCount int
	Partial    bool
}

// IngestService turns one document into stored, searchable chunks:
// segment, embed, insert, strictly in index order.
type IngestService struct {
	store         store.Store
	embedder      embedding.Embedder
	windowSize    int
	windowOverlap int
	logger        *slog.Logger
}

func NewIngestService(st store.Store, embedder embedding.Embedder, windowSize, windowOverlap int) *IngestService {
	if windowSize <= 0 {
		windowSize = segment.DefaultWindowSize
	}
	if windowOverlap < 0 {
		windowOverlap = segment.DefaultOverlap
	}
	return &IngestService{
		store:         st,
		embedder:      embedder,
		windowSize:    windowSize,
		windowOverlap: windowOverlap,
		logger:        slog.Default().With("component", "ingest"),
	}
}

// IngestText validates, segments, embeds and stores one plain-text document.
// Validation happens before any remote call or row is written.
func (s *IngestService) IngestText(ctx context.Context, title, content string) (*IngestResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	windows, err := segment.Windows(content, s.windowSize, s.windowOverlap)
	if err != nil {
		return nil, fmt.Errorf("segment content: %w", err)
	}

	docID, err := s.store.CreateDocument(ctx, title, "manual", "text")
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	result := &IngestResult{DocumentID: docID}
	for i, window := range windows {
		vector, err := s.embedder.Embed(ctx, window)
		if err != nil {
			s.logger.Warn("embedding failed, aborting remaining chunks",
				"document_id", docID, "chunk_index", i, "stored", result.ChunkCount, "err", err)
			result.Partial = true
			return result, nil
		}
		if _, err := s.store.InsertChunk(ctx, docID, i, window, vector, map[string]interface{}{"source": "manual"}); err != nil {
			s.logger.Warn("chunk insert failed, aborting remaining chunks",
				"document_id", docID, "chunk_index", i, "stored", result.ChunkCount, "err", err)
			result.Partial = true
			return result, nil
		}
		result.ChunkCount++
	}

	s.logger.Info("document ingested", "document_id", docID, "chunks", result.ChunkCount)
	return result, nil
}
