package service

import (
	"context"
	"encoding/json"
	"time"

	"zaman-assistant-be/internal/dto"
	"zaman-assistant-be/internal/entity"
	"zaman-assistant-be/internal/pkg/logger"
	"zaman-assistant-be/internal/repository/contract"
	"zaman-assistant-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConsumerService embeds published knowledge documents in the
// background and stores them in the vector index.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	knowledgeRepo     contract.KnowledgeRepository
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	knowledgeRepo contract.KnowledgeRepository,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		knowledgeRepo:     knowledgeRepo,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishKnowledgeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.knowledgeRepo == nil {
		cs.logger.Warn("consumer", "knowledge repository unavailable, dropping document", nil)
		msg.Ack()
		return
	}

	vector, err := cs.embeddingProvider.Generate(ctx, payload.Content)
	if err != nil {
		cs.logger.Error("consumer", "failed to embed document", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	doc := &entity.KnowledgeDocument{
		Id:        uuid.New(),
		Content:   payload.Content,
		Metadata:  payload.Metadata,
		Embedding: vector,
		CreatedAt: time.Now(),
	}

	if err := cs.knowledgeRepo.CreateBulk(ctx, []*entity.KnowledgeDocument{doc}); err != nil {
		cs.logger.Error("consumer", "failed to store document", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "knowledge document embedded", map[string]interface{}{
		"document_id": doc.Id.String(),
	})
	msg.Ack()
}
