package dto

type IngestKnowledgeRequest struct {
	Content  string                 `json:"content" validate:"required"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// PublishKnowledgeMessage is the payload carried on the knowledge
// embedding topic between publisher and consumer.
type PublishKnowledgeMessage struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
