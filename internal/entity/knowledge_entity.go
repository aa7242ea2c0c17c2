package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeDocument is one passage of the product knowledge base together
// with its embedding vector.
type KnowledgeDocument struct {
	Id        uuid.UUID
	Content   string
	Metadata  map[string]interface{}
	Embedding []float32
	CreatedAt time.Time
}
