// Package memory implements store.Store with a brute-force cosine scan.
// It backs tests and runs without a configured database.
package memory

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/markusluicellas/luibot/internal/store"
)

type document struct {
	id         uuid.UUID
	title      string
	source     string
	sourceType string
	createdAt  time.Time
}

type chunk struct {
	id     uuid.UUID
	docID  uuid.UUID
	index  int
	text   string
	vector []float32
	meta   map[string]interface{}
}

// Storage is an in-memory vector store. The first inserted chunk establishes
// the vector dimensionality for the whole store.
type Storage struct {
	mu        sync.RWMutex
	dimension int
	docs      map[uuid.UUID]*document
	docOrder  []uuid.UUID
	chunks    []chunk
}

func NewStorage() *Storage {
	return &Storage{docs: make(map[uuid.UUID]*document)}
}

func (s *Storage) CreateDocument(ctx context.Context, title, source, sourceType string) (uuid.UUID, error) {
	if strings.TrimSpace(title) == "" {
		return uuid.Nil, store.ErrEmptyTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.docs[id] = &document{
		id:         id,
		title:      title,
		source:     source,
		sourceType: sourceType,
		createdAt:  time.Now(),
	}
	s.docOrder = append(s.docOrder, id)
	return id, nil
}

func (s *Storage) InsertChunk(ctx context.Context, documentID uuid.UUID, index int, text string, vector []float32, metadata map[string]interface{}) (uuid.UUID, error) {
	if strings.TrimSpace(text) == "" {
		return uuid.Nil, store.ErrEmptyChunk
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[documentID]; !ok {
		return uuid.Nil, store.ErrDocumentNotFound
	}
	if s.dimension == 0 {
		if len(vector) == 0 {
			return uuid.Nil, store.ErrDimensionMismatch
		}
		s.dimension = len(vector)
	} else if len(vector) != s.dimension {
		return uuid.Nil, store.ErrDimensionMismatch
	}

	id := uuid.New()
	s.chunks = append(s.chunks, chunk{
		id:     id,
		docID:  documentID,
		index:  index,
		text:   text,
		vector: append([]float32(nil), vector...),
		meta:   metadata,
	})
	return id, nil
}

func (s *Storage) NearestNeighbors(ctx context.Context, vector []float32, k int) ([]store.Hit, error) {
	if k < 0 {
		return nil, store.ErrInvalidLimit
	}
	if k == 0 {
		return []store.Hit{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.chunks) == 0 {
		return []store.Hit{}, nil
	}
	if len(vector) != s.dimension {
		return nil, store.ErrDimensionMismatch
	}

	type scored struct {
		c     *chunk
		score float64
	}
	scoredChunks := make([]scored, len(s.chunks))
	for i := range s.chunks {
		scoredChunks[i] = scored{c: &s.chunks[i], score: cosineSimilarity(s.chunks[i].vector, vector)}
	}
	// descending similarity, insertion order on ties
	sort.SliceStable(scoredChunks, func(i, j int) bool {
		return scoredChunks[i].score > scoredChunks[j].score
	})

	if k > len(scoredChunks) {
		k = len(scoredChunks)
	}
	hits := make([]store.Hit, 0, k)
	for _, sc := range scoredChunks[:k] {
		doc := s.docs[sc.c.docID]
		hits = append(hits, store.Hit{
			ChunkText:      sc.c.text,
			DocumentTitle:  doc.title,
			DocumentSource: doc.source,
			Similarity:     sc.score,
		})
	}
	return hits, nil
}

func (s *Storage) ListDocuments(ctx context.Context) ([]store.DocumentInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]store.DocumentInfo, 0, len(s.docOrder))
	for _, id := range s.docOrder {
		doc := s.docs[id]
		infos = append(infos, store.DocumentInfo{
			ID:         doc.id,
			Title:      doc.title,
			Source:     doc.source,
			SourceType: doc.sourceType,
			ChunkCount: s.countChunksLocked(id),
			CreatedAt:  doc.createdAt,
		})
	}
	return infos, nil
}

func (s *Storage) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return store.ErrDocumentNotFound
	}
	delete(s.docs, id)
	for i, docID := range s.docOrder {
		if docID == id {
			s.docOrder = append(s.docOrder[:i], s.docOrder[i+1:]...)
			break
		}
	}
	// cascade
	kept := s.chunks[:0]
	for _, c := range s.chunks {
		if c.docID != id {
			kept = append(kept, c)
		}
	}
	s.chunks = kept
	return nil
}

func (s *Storage) CountChunks(ctx context.Context, documentID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countChunksLocked(documentID), nil
}

func (s *Storage) countChunksLocked(documentID uuid.UUID) int64 {
	var n int64
	for _, c := range s.chunks {
		if c.docID == documentID {
			n++
		}
	}
	return n
}

// cosineSimilarity computes similarity over the raw vectors, matching the
// 1 - cosine-distance score of the pgvector backend. Zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
