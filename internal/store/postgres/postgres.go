// Package postgres implements store.Store on Postgres with the pgvector
// extension. Similarity search uses the cosine distance operator and reports
// similarity as 1 - distance.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/markusluicellas/luibot/internal/model"
	"github.com/markusluicellas/luibot/internal/store"
)

// Storage persists documents and chunks through gorm. The embedding column
// dimensionality is fixed by the schema; dimensions holds it so mismatched
// vectors are rejected before they reach the database.
type Storage struct {
	db         *gorm.DB
	dimensions int
}

func NewStorage(db *gorm.DB, dimensions int) *Storage {
	return &Storage{db: db, dimensions: dimensions}
}

func (s *Storage) CreateDocument(ctx context.Context, title, source, sourceType string) (uuid.UUID, error) {
	if strings.TrimSpace(title) == "" {
		return uuid.Nil, store.ErrEmptyTitle
	}
	doc := model.Document{
		Title:      title,
		Source:     source,
		SourceType: model.SourceType(sourceType),
	}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return uuid.Nil, fmt.Errorf("create document: %w", err)
	}
	return doc.ID, nil
}

func (s *Storage) InsertChunk(ctx context.Context, documentID uuid.UUID, index int, text string, vector []float32, metadata map[string]interface{}) (uuid.UUID, error) {
	if strings.TrimSpace(text) == "" {
		return uuid.Nil, store.ErrEmptyChunk
	}
	if len(vector) != s.dimensions {
		return uuid.Nil, fmt.Errorf("%w: got %d, store uses %d", store.ErrDimensionMismatch, len(vector), s.dimensions)
	}
	chunk := model.Chunk{
		DocumentID: documentID,
		ChunkIndex: index,
		Content:    text,
		Embedding:  pgvector.NewVector(vector),
		Metadata:   metadata,
	}
	if err := s.db.WithContext(ctx).Create(&chunk).Error; err != nil {
		return uuid.Nil, fmt.Errorf("insert chunk: %w", err)
	}
	return chunk.ID, nil
}

func (s *Storage) NearestNeighbors(ctx context.Context, vector []float32, k int) ([]store.Hit, error) {
	if k < 0 {
		return nil, store.ErrInvalidLimit
	}
	if k == 0 {
		return []store.Hit{}, nil
	}
	if len(vector) != s.dimensions {
		return nil, fmt.Errorf("%w: got %d, store uses %d", store.ErrDimensionMismatch, len(vector), s.dimensions)
	}

	var rows []struct {
		Content  string
		Title    string
		Source   string
		Distance float64
	}
	// insertion order (created_at, id) breaks similarity ties
	err := s.db.WithContext(ctx).
		Table("chunks").
		Select("chunks.content, documents.title, documents.source, chunks.embedding <=> ? AS distance", pgvector.NewVector(vector)).
		Joins("JOIN documents ON documents.id = chunks.document_id AND documents.deleted_at IS NULL").
		Where("chunks.deleted_at IS NULL").
		Order("distance ASC, chunks.created_at ASC, chunks.id ASC").
		Limit(k).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	hits := make([]store.Hit, 0, len(rows))
	for _, r := range rows {
		hits = append(hits, store.Hit{
			ChunkText:      r.Content,
			DocumentTitle:  r.Title,
			DocumentSource: r.Source,
			Similarity:     1 - r.Distance,
		})
	}
	return hits, nil
}

func (s *Storage) ListDocuments(ctx context.Context) ([]store.DocumentInfo, error) {
	var docs []model.Document
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	// one grouped count instead of a query per document
	var counts []struct {
		DocumentID uuid.UUID
		Count      int64
	}
	err := s.db.WithContext(ctx).Model(&model.Chunk{}).
		Select("document_id, COUNT(*) AS count").
		Group("document_id").
		Find(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count chunks: %w", err)
	}
	countByDoc := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		countByDoc[c.DocumentID] = c.Count
	}

	infos := make([]store.DocumentInfo, 0, len(docs))
	for _, doc := range docs {
		infos = append(infos, store.DocumentInfo{
			ID:         doc.ID,
			Title:      doc.Title,
			Source:     doc.Source,
			SourceType: string(doc.SourceType),
			ChunkCount: countByDoc[doc.ID],
			CreatedAt:  doc.CreatedAt,
		})
	}
	return infos, nil
}

func (s *Storage) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doc model.Document
		if err := tx.First(&doc, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrDocumentNotFound
			}
			return fmt.Errorf("load document: %w", err)
		}
		if err := tx.Where("document_id = ?", id).Delete(&model.Chunk{}).Error; err != nil {
			return fmt.Errorf("delete chunks: %w", err)
		}
		if err := tx.Delete(&doc).Error; err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		return nil
	})
}

func (s *Storage) CountChunks(ctx context.Context, documentID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Chunk{}).
		Where("document_id = ?", documentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return count, nil
}
