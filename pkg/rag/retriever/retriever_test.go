package retriever

import (
	"context"
	"errors"
	"testing"

	"zaman-assistant-be/internal/entity"
	"zaman-assistant-be/pkg/store"
)

type fakeSearcher struct {
	docs      []*entity.KnowledgeDocument
	err       error
	gotLimit  int
	gotVector []float32
}

func (f *fakeSearcher) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.KnowledgeDocument, error) {
	f.gotVector = embedding
	f.gotLimit = limit
	return f.docs, f.err
}

func docs(contents ...string) []*entity.KnowledgeDocument {
	out := make([]*entity.KnowledgeDocument, len(contents))
	for i, c := range contents {
		out[i] = &entity.KnowledgeDocument{Content: c}
	}
	return out
}

func TestRetrieveEmptyVectorReturnsSentinel(t *testing.T) {
	searcher := &fakeSearcher{docs: docs("should not be used")}
	r := New(searcher, 3)

	got := r.Retrieve(context.Background(), nil)
	if !got.Unavailable {
		t.Fatal("empty vector must yield the unavailable sentinel")
	}
	if len(got.Passages) != 1 || got.Passages[0] != store.KnowledgeUnavailable {
		t.Errorf("Passages = %v", got.Passages)
	}
	if searcher.gotVector != nil {
		t.Error("searcher must not be queried with an empty vector")
	}
}

func TestRetrieveNilSearcherReturnsSentinel(t *testing.T) {
	r := New(nil, 3)
	got := r.Retrieve(context.Background(), []float32{0.1})
	if !got.Unavailable {
		t.Fatal("missing index must yield the unavailable sentinel")
	}
}

func TestRetrieveSearchErrorReturnsSentinel(t *testing.T) {
	r := New(&fakeSearcher{err: errors.New("connection refused")}, 3)
	got := r.Retrieve(context.Background(), []float32{0.1, 0.2})
	if !got.Unavailable {
		t.Fatal("search failure must yield the unavailable sentinel")
	}
}

func TestRetrievePreservesOrder(t *testing.T) {
	r := New(&fakeSearcher{docs: docs("первый", "второй", "третий")}, 3)

	got := r.Retrieve(context.Background(), []float32{0.5})
	if got.Unavailable {
		t.Fatal("unexpected sentinel")
	}
	want := []string{"первый", "второй", "третий"}
	for i, p := range got.Passages {
		if p != want[i] {
			t.Errorf("Passages[%d] = %q, want %q (ranking order shuffled)", i, p, want[i])
		}
	}
}

func TestRetrievePassesTopK(t *testing.T) {
	searcher := &fakeSearcher{docs: docs("a")}
	r := New(searcher, 0) // zero falls back to default

	r.Retrieve(context.Background(), []float32{1})
	if searcher.gotLimit != 3 {
		t.Errorf("limit = %d, want default 3", searcher.gotLimit)
	}
}
