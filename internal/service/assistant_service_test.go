package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"zaman-assistant-be/internal/constant"
	"zaman-assistant-be/internal/content"
	"zaman-assistant-be/internal/entity"
	"zaman-assistant-be/internal/repository/memory"
	"zaman-assistant-be/pkg/events"
	"zaman-assistant-be/pkg/llm"
	"zaman-assistant-be/pkg/rag/retriever"
	"zaman-assistant-be/pkg/store"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeEmbedder struct {
	vector []float32
	err    error
	calls  []string
}

func (f *fakeEmbedder) Generate(_ context.Context, text string) ([]float32, error) {
	f.calls = append(f.calls, text)
	return f.vector, f.err
}

type fakeSearcher struct {
	passages []string
	err      error
}

func (f *fakeSearcher) SearchSimilar(_ context.Context, _ []float32, _ int) ([]*entity.KnowledgeDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	docs := make([]*entity.KnowledgeDocument, len(f.passages))
	for i, p := range f.passages {
		docs[i] = &entity.KnowledgeDocument{Content: p}
	}
	return docs, nil
}

type fakeLLM struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	if len(history) > 0 {
		f.prompts = append(f.prompts, history[0].Content)
	}
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: constant.ChatRoleSystem, Content: prompt}}, options...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e.EventType())
	return nil
}

func newTestService(
	embedder *fakeEmbedder,
	searcher retriever.DocumentSearcher,
	provider *fakeLLM,
	publisher events.Publisher,
) IAssistantService {
	return NewAssistantService(
		memory.NewSessionRepository(),
		embedder,
		retriever.New(searcher, constant.RetrievalTopK),
		provider,
		publisher,
		&content.StaticContent{ClientProfile: "profile", Benchmarks: "benchmarks"},
		0.8,
		600,
		nopLogger{},
	)
}

func TestRespondUnknownSessionUsesSentinelSummary(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	provider := &fakeLLM{reply: "ok"}
	svc := newTestService(embedder, &fakeSearcher{}, provider, nil)

	svc.Respond(context.Background(), "missing", "привет, как дела")

	if len(embedder.calls) != 1 {
		t.Fatalf("expected one embedding call, got %d", len(embedder.calls))
	}
	if !strings.Contains(embedder.calls[0], store.NoAnalysisSummary) {
		t.Errorf("embedding query should carry the no-analysis sentinel, got %q", embedder.calls[0])
	}
	if len(provider.prompts) != 1 || !strings.Contains(provider.prompts[0], store.NoAnalysisSummary) {
		t.Errorf("prompt should carry the no-analysis sentinel")
	}
}

func TestIngestAnalysisLastWriteWins(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	provider := &fakeLLM{reply: "ok"}
	svc := newTestService(embedder, &fakeSearcher{}, provider, nil)

	svc.IngestAnalysis("s1", "first summary")
	svc.IngestAnalysis("s1", "second summary")
	svc.Respond(context.Background(), "s1", "привет")

	if !strings.Contains(provider.prompts[0], "second summary") {
		t.Errorf("prompt should use the latest summary")
	}
	if strings.Contains(provider.prompts[0], "first summary") {
		t.Errorf("stale summary leaked into the prompt")
	}
}

func TestRespondEmbeddingFailureStillDispatches(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("hub down")}
	provider := &fakeLLM{reply: "ok"}
	svc := newTestService(embedder, &fakeSearcher{passages: []string{"doc"}}, provider, nil)

	reply := svc.Respond(context.Background(), "s1", "привет")

	if reply != "ok" {
		t.Fatalf("expected the completion reply, got %q", reply)
	}
	if !strings.Contains(provider.prompts[0], store.KnowledgeUnavailable) {
		t.Errorf("prompt should degrade to the knowledge sentinel, got:\n%s", provider.prompts[0])
	}
}

func TestRespondSearcherFailureDegradesToSentinel(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	provider := &fakeLLM{reply: "ok"}
	svc := newTestService(embedder, &fakeSearcher{err: errors.New("pg down")}, provider, nil)

	svc.Respond(context.Background(), "s1", "привет")

	if !strings.Contains(provider.prompts[0], store.KnowledgeUnavailable) {
		t.Errorf("searcher failure should surface the sentinel in the prompt")
	}
}

func TestRespondUpstreamErrorReturnsApology(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	provider := &fakeLLM{err: &llm.UpstreamError{Status: 502, Body: "bad gateway"}}
	publisher := &recordingPublisher{}
	svc := newTestService(embedder, &fakeSearcher{}, provider, publisher)

	reply := svc.Respond(context.Background(), "s1", "привет")

	if reply != constant.ApologyReply {
		t.Fatalf("expected apology, got %q", reply)
	}
	found := false
	for _, e := range publisher.events {
		if e == "CHAT_DEGRADED" {
			found = true
		}
	}
	if !found {
		t.Errorf("degraded turn should publish CHAT_DEGRADED, got %v", publisher.events)
	}
}

func TestRespondTimeoutReturnsApology(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	provider := &fakeLLM{err: context.DeadlineExceeded}
	svc := newTestService(embedder, &fakeSearcher{}, provider, nil)

	if got := svc.Respond(context.Background(), "s1", "привет"); got != constant.ApologyReply {
		t.Fatalf("expected apology on timeout, got %q", got)
	}
}

func TestRespondStressedAppendsWellnessTip(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	provider := &fakeLLM{reply: "Держитесь."}
	svc := newTestService(embedder, &fakeSearcher{passages: []string{"doc"}}, provider, nil)

	reply := svc.Respond(context.Background(), "s1", "у меня стресс из-за трат")

	if !strings.Contains(provider.prompts[0], "ЭМОЦИОНАЛЬНОЕ СОСТОЯНИЕ: stressed") {
		t.Errorf("prompt should name the stressed state")
	}
	if !strings.HasPrefix(reply, "Держитесь.") {
		t.Errorf("completion text should open the reply, got %q", reply)
	}
	if !strings.Contains(reply, constant.WellnessPrefix) {
		t.Errorf("stressed reply should append a wellness tip, got %q", reply)
	}
	if reply == "Держитесь." {
		t.Errorf("stressed reply must differ from the raw completion")
	}
}

func TestRespondNeutralLeavesReplyUntouched(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	provider := &fakeLLM{reply: "Добрый день!"}
	svc := newTestService(embedder, &fakeSearcher{}, provider, nil)

	if got := svc.Respond(context.Background(), "s1", "привет, как дела"); got != "Добрый день!" {
		t.Fatalf("neutral reply changed: %q", got)
	}
}

func TestRespondSuccessPublishesChatResponded(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	provider := &fakeLLM{reply: "ok"}
	publisher := &recordingPublisher{}
	svc := newTestService(embedder, &fakeSearcher{}, provider, publisher)

	svc.Respond(context.Background(), "s1", "привет")

	if len(publisher.events) == 0 || publisher.events[len(publisher.events)-1] != "CHAT_RESPONDED" {
		t.Errorf("expected CHAT_RESPONDED, got %v", publisher.events)
	}
}

func TestIngestAnalysisConcurrentSessions(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	provider := &fakeLLM{reply: "ok"}
	svc := newTestService(embedder, &fakeSearcher{}, provider, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc.IngestAnalysis(fmt.Sprintf("session-%d", i), fmt.Sprintf("summary-%d", i))
		}(i)
	}
	wg.Wait()

	// Spot-check a few sessions through the full pipeline.
	for _, i := range []int{0, 25, 49} {
		provider.prompts = nil
		svc.Respond(context.Background(), fmt.Sprintf("session-%d", i), "привет")
		if !strings.Contains(provider.prompts[0], fmt.Sprintf("summary-%d", i)) {
			t.Errorf("session-%d got the wrong summary", i)
		}
	}
}
