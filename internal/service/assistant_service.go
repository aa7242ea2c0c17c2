package service

import (
	"context"
	"fmt"

	"zaman-assistant-be/internal/constant"
	"zaman-assistant-be/internal/content"
	"zaman-assistant-be/internal/pkg/logger"
	"zaman-assistant-be/internal/repository/contract"
	"zaman-assistant-be/pkg/classifier"
	"zaman-assistant-be/pkg/embedding"
	"zaman-assistant-be/pkg/events"
	"zaman-assistant-be/pkg/llm"
	"zaman-assistant-be/pkg/rag/prompt"
	"zaman-assistant-be/pkg/rag/retriever"
	"zaman-assistant-be/pkg/store"
	"zaman-assistant-be/pkg/wellness"
)

// IAssistantService is the orchestrator of one chat turn.
type IAssistantService interface {
	// IngestAnalysis seeds or replaces the session's financial context.
	// This is the only operation that mutates session state.
	IngestAnalysis(sessionID, summary string)

	// Respond runs the full pipeline and always returns a reply string;
	// business failures degrade, they never propagate.
	Respond(ctx context.Context, sessionID, message string) string
}

type assistantService struct {
	sessions    contract.SessionStore
	embedder    embedding.EmbeddingProvider
	retriever   *retriever.Retriever
	llmProvider llm.LLMProvider
	publisher   events.Publisher // may be nil when the bus is down
	static      *content.StaticContent
	temperature float64
	maxTokens   int
	logger      logger.ILogger
}

func NewAssistantService(
	sessions contract.SessionStore,
	embedder embedding.EmbeddingProvider,
	docRetriever *retriever.Retriever,
	llmProvider llm.LLMProvider,
	publisher events.Publisher,
	static *content.StaticContent,
	temperature float64,
	maxTokens int,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		sessions:    sessions,
		embedder:    embedder,
		retriever:   docRetriever,
		llmProvider: llmProvider,
		publisher:   publisher,
		static:      static,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      log,
	}
}

func (s *assistantService) IngestAnalysis(sessionID, summary string) {
	s.sessions.Put(sessionID, summary)
	s.logger.Info("assistant", "analysis ingested", map[string]interface{}{
		"session_id": sessionID,
	})
	s.publish(context.Background(), events.NewAnalysisIngested(sessionID))
}

func (s *assistantService) Respond(ctx context.Context, sessionID, message string) string {
	summary, found := s.sessions.Get(sessionID)
	if !found {
		summary = store.NoAnalysisSummary
	}

	// 1. Classify
	state := classifier.Classify(message)
	s.logger.Debug("assistant", "message classified", map[string]interface{}{
		"session_id": sessionID,
		"state":      state,
	})

	// 2. Embed. Failures become an empty vector; the pipeline continues.
	queryText := fmt.Sprintf("%s. Контекст: %s", message, summary)
	vector, err := s.embedder.Generate(ctx, queryText)
	if err != nil {
		s.logger.Warn("assistant", "embedding unavailable", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		vector = nil
	}

	// 3. Retrieve. Empty vector yields the sentinel, never an error.
	docs := s.retriever.Retrieve(ctx, vector)
	if docs.Unavailable {
		s.logger.Warn("assistant", "knowledge base unavailable", map[string]interface{}{
			"session_id": sessionID,
		})
	}

	// 4. Assemble
	masterPrompt := prompt.NewMasterBuilder(store.PromptContext{
		Summary:    summary,
		Benchmarks: s.static.Benchmarks,
		Docs:       docs,
		State:      state,
		Message:    message,
	}).Build()

	// 5. Dispatch
	reply, err := s.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: constant.ChatRoleSystem, Content: masterPrompt},
			{Role: constant.ChatRoleUser, Content: message},
		},
		llm.WithTemperature(s.temperature),
		llm.WithMaxTokens(s.maxTokens),
	)
	if err != nil {
		details := map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
			"timeout":    llm.IsTimeout(err),
			"upstream":   llm.IsUpstream(err),
		}
		s.logger.Error("assistant", "completion failed", details)
		s.publish(ctx, events.NewChatDegraded(sessionID, err.Error()))
		return constant.ApologyReply
	}

	if state == store.StateStressed {
		reply += constant.WellnessPrefix + wellness.Advice()
	}

	s.logger.Info("assistant", "reply generated", map[string]interface{}{
		"session_id":  sessionID,
		"state":       state,
		"docs_found":  !docs.Unavailable,
		"reply_runes": len([]rune(reply)),
	})
	s.publish(ctx, events.NewChatResponded(sessionID, string(state)))
	return reply
}

// publish is best-effort: a dead bus must never affect the reply.
func (s *assistantService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("assistant", "event publish failed", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}
