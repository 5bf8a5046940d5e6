package model

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type SourceType string

const (
	SourceTypeText SourceType = "text"
)

type Document struct {
	BaseModel
	Title      string     `gorm:"size:255;not null" json:"title"`
	Source     string     `gorm:"size:255" json:"source"`
	SourceType SourceType `gorm:"size:50;not null;default:text" json:"source_type"`

	Chunks []Chunk `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}

type Chunk struct {
	BaseModel
	DocumentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"document_id"`
	ChunkIndex int             `gorm:"not null" json:"chunk_index"`
	Content    string          `gorm:"type:text;not null" json:"content"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	Metadata   JSONMap         `gorm:"type:jsonb" json:"metadata"`
}

func (Chunk) TableName() string {
	return "chunks"
}
