package store

// Sentinel strings exposed by the assistant core. They are part of the
// degrade-not-fail contract: callers compare against these instead of
// handling errors.
const (
	// NoAnalysisSummary is used as session context until /analyze has run.
	NoAnalysisSummary = "Финансовый анализ не проведен."

	// KnowledgeUnavailable replaces retrieved passages when the vector
	// index cannot be queried (empty query vector, dead DB, etc).
	KnowledgeUnavailable = "База знаний недоступна."
)

// EmotionalState is a coarse lexical classification of the user message.
type EmotionalState string

const (
	StateNeutral  EmotionalState = "neutral"
	StateStressed EmotionalState = "stressed"
	StatePositive EmotionalState = "positive"
)

// Session is the per-conversation state kept between requests.
// Only the analysis flow writes it; chat only reads.
type Session struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

// RetrievedDocs is the ordered result of a knowledge-base lookup.
// Order is the index's own relevance ranking and must be preserved
// all the way into the prompt.
type RetrievedDocs struct {
	Passages    []string `json:"passages"`
	Unavailable bool     `json:"unavailable"`
}

// Unavailable returns the sentinel result used whenever retrieval
// could not run.
func UnavailableDocs() RetrievedDocs {
	return RetrievedDocs{
		Passages:    []string{KnowledgeUnavailable},
		Unavailable: true,
	}
}

// PromptContext aggregates everything the prompt builder needs for one
// chat turn. It lives only for the duration of a single request.
type PromptContext struct {
	Summary    string
	Benchmarks string
	Docs       RetrievedDocs
	State      EmotionalState
	Message    string
}
