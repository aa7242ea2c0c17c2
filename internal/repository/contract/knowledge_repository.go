package contract

import (
	"context"

	"zaman-assistant-be/internal/entity"
)

// KnowledgeRepository is the vector-index collaborator. Ranking is the
// index's own; callers must not reorder results.
type KnowledgeRepository interface {
	CreateBulk(ctx context.Context, docs []*entity.KnowledgeDocument) error
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.KnowledgeDocument, error)
	Count(ctx context.Context) (int64, error)
	Reset(ctx context.Context) error
}
