package prompt

import (
	"strings"

	"zaman-assistant-be/pkg/store"
)

// MasterBuilder assembles the single system prompt for a chat turn from
// typed sections. Section order is fixed and every section writer is
// independently testable.
type MasterBuilder struct {
	context      store.PromptContext
	allowStyling bool
	sectionLimit int // max runes per injected section, 0 = no trim
}

// NewMasterBuilder creates a builder for one request's prompt context
func NewMasterBuilder(pc store.PromptContext) *MasterBuilder {
	return &MasterBuilder{
		context: pc,
	}
}

// WithStyling lifts the default ban on bold/italic markers in replies.
func (b *MasterBuilder) WithStyling(allowed bool) *MasterBuilder {
	b.allowStyling = allowed
	return b
}

// WithSectionLimit caps each injected section at n runes to keep the
// prompt inside the upstream token budget.
func (b *MasterBuilder) WithSectionLimit(n int) *MasterBuilder {
	b.sectionLimit = n
	return b
}

// Build produces the deterministic prompt string.
func (b *MasterBuilder) Build() string {
	var prompt strings.Builder

	b.writeIdentity(&prompt)
	b.writeFormattingRules(&prompt)
	b.writeClientContext(&prompt)
	b.writeBenchmarks(&prompt)
	b.writeKnowledge(&prompt)
	b.writeEmotionalState(&prompt)
	b.writeTask(&prompt)

	return prompt.String()
}

func (b *MasterBuilder) writeIdentity(prompt *strings.Builder) {
	prompt.WriteString("Ты — Zaman, персональный AI-ассистент исламского банка.\n\n")
}

func (b *MasterBuilder) writeFormattingRules(prompt *strings.Builder) {
	if b.allowStyling {
		return
	}
	prompt.WriteString("не используй Bold или Italic в ответах.\n\n")
}

func (b *MasterBuilder) writeClientContext(prompt *strings.Builder) {
	prompt.WriteString("КОНТЕКСТ КЛИЕНТА:\n")
	prompt.WriteString(b.trim(b.context.Summary))
	prompt.WriteString("\n\n")
}

func (b *MasterBuilder) writeBenchmarks(prompt *strings.Builder) {
	prompt.WriteString("СРАВНИТЕЛЬНАЯ АНАЛИТИКА:\n")
	prompt.WriteString(b.trim(b.context.Benchmarks))
	prompt.WriteString("\n\n")
	prompt.WriteString("Если вопрос клиента касается трат или финансовых целей, сверяй его ситуацию с разделом СРАВНИТЕЛЬНАЯ АНАЛИТИКА.\n\n")
}

func (b *MasterBuilder) writeKnowledge(prompt *strings.Builder) {
	prompt.WriteString("БАЗА ЗНАНИЙ:\n")
	// Passage order is the index ranking, joined as-is.
	prompt.WriteString(b.trim(strings.Join(b.context.Docs.Passages, "\n---\n")))
	prompt.WriteString("\n\n")
}

func (b *MasterBuilder) writeEmotionalState(prompt *strings.Builder) {
	prompt.WriteString("ЭМОЦИОНАЛЬНОЕ СОСТОЯНИЕ: ")
	prompt.WriteString(string(b.context.State))
	prompt.WriteString("\n\n")
}

func (b *MasterBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("Ответь на сообщение клиента, учитывая его ситуацию и продукты банка.")
}

func (b *MasterBuilder) trim(section string) string {
	if b.sectionLimit <= 0 {
		return section
	}
	runes := []rune(section)
	if len(runes) <= b.sectionLimit {
		return section
	}
	return string(runes[:b.sectionLimit])
}
