package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type KnowledgeDocument struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Content   string          `gorm:"type:text;not null"`
	Metadata  datatypes.JSON  `gorm:"type:jsonb"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time
}

func (KnowledgeDocument) TableName() string {
	return "knowledge_documents"
}
