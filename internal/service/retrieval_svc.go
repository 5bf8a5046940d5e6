package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/markusluicellas/luibot/internal/store"
)

// DefaultTopK is the number of chunks pulled into the grounding context.
const DefaultTopK = 6

// RetrievalService ranks stored chunks against a query vector and renders
// them into a context block for the generation prompt.
type RetrievalService struct {
	store store.Store
	topK  int
}

func NewRetrievalService(st store.Store, topK int) *RetrievalService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &RetrievalService{store: st, topK: topK}
}

// ContextBlock returns the top matches and their rendered form: one labeled
// source block per hit, rank order, 1-based labels.
func (s *RetrievalService) ContextBlock(ctx context.Context, queryVector []float32) ([]store.Hit, string, error) {
	hits, err := s.store.NearestNeighbors(ctx, queryVector, s.topK)
	if err != nil {
		return nil, "", fmt.Errorf("nearest neighbors: %w", err)
	}

	blocks := make([]string, 0, len(hits))
	for i, h := range hits {
		blocks = append(blocks, fmt.Sprintf("### Source %d — %s\n%s", i+1, h.DocumentTitle, h.ChunkText))
	}
	return hits, strings.Join(blocks, "\n\n"), nil
}
