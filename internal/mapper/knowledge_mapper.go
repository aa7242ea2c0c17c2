package mapper

import (
	"encoding/json"

	"zaman-assistant-be/internal/entity"
	"zaman-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToModel(e *entity.KnowledgeDocument) *model.KnowledgeDocument {
	var meta datatypes.JSON
	if e.Metadata != nil {
		if raw, err := json.Marshal(e.Metadata); err == nil {
			meta = datatypes.JSON(raw)
		}
	}

	return &model.KnowledgeDocument{
		Id:        e.Id,
		Content:   e.Content,
		Metadata:  meta,
		Embedding: pgvector.NewVector(e.Embedding),
		CreatedAt: e.CreatedAt,
	}
}

func (m *KnowledgeMapper) ToEntity(md *model.KnowledgeDocument) *entity.KnowledgeDocument {
	var meta map[string]interface{}
	if len(md.Metadata) > 0 {
		_ = json.Unmarshal(md.Metadata, &meta)
	}

	return &entity.KnowledgeDocument{
		Id:        md.Id,
		Content:   md.Content,
		Metadata:  meta,
		Embedding: md.Embedding.Slice(),
		CreatedAt: md.CreatedAt,
	}
}
