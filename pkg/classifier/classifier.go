package classifier

import (
	"strings"

	"zaman-assistant-be/pkg/store"
)

// Rule binds an emotional state to the keywords that trigger it.
// Matching is case-insensitive substring search; the first rule that
// matches wins, so rule order is the priority order.
type Rule struct {
	State    store.EmotionalState
	Keywords []string
}

// DefaultRules mirrors the production keyword table. Stressed is checked
// before positive so that mixed messages lean towards support.
var DefaultRules = []Rule{
	{
		State:    store.StateStressed,
		Keywords: []string{"стресс", "переживаю", "волнуюсь", "тревожно", "устал", "проблем"},
	},
	{
		State:    store.StatePositive,
		Keywords: []string{"спасибо", "отлично", "рад", "здорово", "ура"},
	},
}

// Classify maps a message to an emotional state using DefaultRules.
// It is a pure lexical heuristic; misses are accepted behavior.
func Classify(message string) store.EmotionalState {
	return ClassifyWith(DefaultRules, message)
}

// ClassifyWith runs the classification against a custom rule table.
func ClassifyWith(rules []Rule, message string) store.EmotionalState {
	lowered := strings.ToLower(message)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.State
			}
		}
	}
	return store.StateNeutral
}
