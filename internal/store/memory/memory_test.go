package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markusluicellas/luibot/internal/store"
)

func seedDocument(t *testing.T, s *Storage, title string, vectors ...[]float32) {
	t.Helper()
	ctx := context.Background()
	id, err := s.CreateDocument(ctx, title, "manual", "text")
	require.NoError(t, err)
	for i, v := range vectors {
		_, err := s.InsertChunk(ctx, id, i, "chunk", v, nil)
		require.NoError(t, err)
	}
}

func TestCreateDocumentEmptyTitle(t *testing.T) {
	s := NewStorage()
	_, err := s.CreateDocument(context.Background(), "  ", "manual", "text")
	assert.ErrorIs(t, err, store.ErrEmptyTitle)
}

func TestNearestNeighborsRanking(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	id, err := s.CreateDocument(ctx, "fixtures", "manual", "text")
	require.NoError(t, err)

	texts := []string{"east", "north", "mostly east"}
	vectors := [][]float32{{1, 0}, {0, 1}, {0.9, 0.1}}
	for i := range texts {
		_, err := s.InsertChunk(ctx, id, i, texts[i], vectors[i], nil)
		require.NoError(t, err)
	}

	hits, err := s.NearestNeighbors(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	// hand-computed cosine similarities against [1,0]
	assert.Equal(t, "east", hits[0].ChunkText)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-9)
	assert.Equal(t, "mostly east", hits[1].ChunkText)
	assert.InDelta(t, 0.99388373, hits[1].Similarity, 1e-6)
	assert.Equal(t, "north", hits[2].ChunkText)
	assert.InDelta(t, 0.0, hits[2].Similarity, 1e-9)

	// ordered by non-increasing similarity
	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Similarity, hits[i].Similarity)
	}
}

func TestNearestNeighborsTieBreakInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	id, err := s.CreateDocument(ctx, "ties", "manual", "text")
	require.NoError(t, err)

	// equal vectors score identically; insertion order must be preserved
	for i, text := range []string{"first", "second", "third"} {
		_, err := s.InsertChunk(ctx, id, i, text, []float32{1, 1}, nil)
		require.NoError(t, err)
	}

	hits, err := s.NearestNeighbors(ctx, []float32{1, 1}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, "first", hits[0].ChunkText)
	assert.Equal(t, "second", hits[1].ChunkText)
	assert.Equal(t, "third", hits[2].ChunkText)
}

func TestNearestNeighborsLimits(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	seedDocument(t, s, "doc", []float32{1, 0}, []float32{0, 1})

	hits, err := s.NearestNeighbors(ctx, []float32{1, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = s.NearestNeighbors(ctx, []float32{1, 0}, 100)
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	_, err = s.NearestNeighbors(ctx, []float32{1, 0}, -1)
	assert.ErrorIs(t, err, store.ErrInvalidLimit)
}

func TestNearestNeighborsEmptyStore(t *testing.T) {
	s := NewStorage()
	hits, err := s.NearestNeighbors(context.Background(), []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestDimensionMismatch(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	id, err := s.CreateDocument(ctx, "doc", "manual", "text")
	require.NoError(t, err)

	_, err = s.InsertChunk(ctx, id, 0, "first", []float32{1, 2, 3}, nil)
	require.NoError(t, err)

	// first insert established dimensionality 3
	_, err = s.InsertChunk(ctx, id, 1, "second", []float32{1, 2}, nil)
	assert.ErrorIs(t, err, store.ErrDimensionMismatch)

	_, err = s.NearestNeighbors(ctx, []float32{1, 2}, 1)
	assert.ErrorIs(t, err, store.ErrDimensionMismatch)

	_, err = s.InsertChunk(ctx, id, 1, "second", nil, nil)
	assert.ErrorIs(t, err, store.ErrDimensionMismatch)
}

func TestDeleteDocumentCascades(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	keepID, err := s.CreateDocument(ctx, "keep", "manual", "text")
	require.NoError(t, err)
	dropID, err := s.CreateDocument(ctx, "drop", "manual", "text")
	require.NoError(t, err)

	_, err = s.InsertChunk(ctx, keepID, 0, "kept chunk", []float32{1, 0}, nil)
	require.NoError(t, err)
	_, err = s.InsertChunk(ctx, dropID, 0, "dropped chunk", []float32{0, 1}, nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteDocument(ctx, dropID))

	n, err := s.CountChunks(ctx, dropID)
	require.NoError(t, err)
	assert.Zero(t, n)

	docs, err := s.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "keep", docs[0].Title)
	assert.EqualValues(t, 1, docs[0].ChunkCount)

	hits, err := s.NearestNeighbors(ctx, []float32{0, 1}, 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "kept chunk", hits[0].ChunkText)

	assert.ErrorIs(t, s.DeleteDocument(ctx, dropID), store.ErrDocumentNotFound)
}

func TestInsertChunkValidation(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	id, err := s.CreateDocument(ctx, "doc", "manual", "text")
	require.NoError(t, err)

	_, err = s.InsertChunk(ctx, id, 0, "   ", []float32{1}, nil)
	assert.ErrorIs(t, err, store.ErrEmptyChunk)

	_, err = s.InsertChunk(ctx, uuid.New(), 0, "text", []float32{1}, nil)
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
}
