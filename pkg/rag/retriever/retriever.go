package retriever

import (
	"context"

	"zaman-assistant-be/internal/entity"
	"zaman-assistant-be/pkg/store"
)

// DocumentSearcher is the slice of the knowledge repository the retriever
// needs. Results must already be in the index's relevance order.
type DocumentSearcher interface {
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.KnowledgeDocument, error)
}

// Retriever converts a query embedding into ordered supporting passages.
// Any failure mode (empty vector, missing index, query error) collapses
// into the unavailable sentinel instead of an error: retrieval never
// aborts the chat pipeline.
type Retriever struct {
	searcher DocumentSearcher
	topK     int
}

func New(searcher DocumentSearcher, topK int) *Retriever {
	if topK <= 0 {
		topK = 3
	}
	return &Retriever{
		searcher: searcher,
		topK:     topK,
	}
}

func (r *Retriever) Retrieve(ctx context.Context, embedding []float32) store.RetrievedDocs {
	if r.searcher == nil || len(embedding) == 0 {
		return store.UnavailableDocs()
	}

	docs, err := r.searcher.SearchSimilar(ctx, embedding, r.topK)
	if err != nil || len(docs) == 0 {
		return store.UnavailableDocs()
	}

	passages := make([]string, len(docs))
	for i, d := range docs {
		passages[i] = d.Content
	}

	return store.RetrievedDocs{Passages: passages}
}
