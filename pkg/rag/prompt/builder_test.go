package prompt

import (
	"strings"
	"testing"

	"zaman-assistant-be/pkg/store"
)

func testContext() store.PromptContext {
	return store.PromptContext{
		Summary:    "Клиент получил 400000 KZT дохода.",
		Benchmarks: "СЕГМЕНТ: молодые специалисты",
		Docs:       store.RetrievedDocs{Passages: []string{"Мурабаха", "Иджара", "Вакала"}},
		State:      store.StateStressed,
		Message:    "стресс из-за трат",
	}
}

func TestBuildContainsAllSections(t *testing.T) {
	got := NewMasterBuilder(testContext()).Build()

	for _, want := range []string{
		"КОНТЕКСТ КЛИЕНТА:",
		"Клиент получил 400000 KZT дохода.",
		"СРАВНИТЕЛЬНАЯ АНАЛИТИКА:",
		"СЕГМЕНТ: молодые специалисты",
		"БАЗА ЗНАНИЙ:",
		"ЭМОЦИОНАЛЬНОЕ СОСТОЯНИЕ: stressed",
		"не используй Bold или Italic",
		"Ответь на сообщение клиента",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	pc := testContext()
	a := NewMasterBuilder(pc).Build()
	b := NewMasterBuilder(pc).Build()
	if a != b {
		t.Error("two builds of the same context differ")
	}
}

func TestBuildPreservesPassageOrder(t *testing.T) {
	got := NewMasterBuilder(testContext()).Build()

	first := strings.Index(got, "Мурабаха")
	second := strings.Index(got, "Иджара")
	third := strings.Index(got, "Вакала")
	if first < 0 || second < 0 || third < 0 {
		t.Fatal("passages missing from prompt")
	}
	if !(first < second && second < third) {
		t.Errorf("passage order shuffled: %d %d %d", first, second, third)
	}
}

func TestBuildSectionOrder(t *testing.T) {
	got := NewMasterBuilder(testContext()).Build()

	ctxIdx := strings.Index(got, "КОНТЕКСТ КЛИЕНТА:")
	benchIdx := strings.Index(got, "СРАВНИТЕЛЬНАЯ АНАЛИТИКА:")
	kbIdx := strings.Index(got, "БАЗА ЗНАНИЙ:")
	stateIdx := strings.Index(got, "ЭМОЦИОНАЛЬНОЕ СОСТОЯНИЕ:")
	if !(ctxIdx < benchIdx && benchIdx < kbIdx && kbIdx < stateIdx) {
		t.Error("section order changed")
	}
}

func TestWithStylingDropsFormattingRule(t *testing.T) {
	got := NewMasterBuilder(testContext()).WithStyling(true).Build()
	if strings.Contains(got, "не используй Bold") {
		t.Error("styling rule present despite WithStyling(true)")
	}
}

func TestWithSectionLimitTrims(t *testing.T) {
	pc := testContext()
	pc.Summary = strings.Repeat("д", 500)

	got := NewMasterBuilder(pc).WithSectionLimit(100).Build()
	if strings.Contains(got, strings.Repeat("д", 101)) {
		t.Error("section not trimmed to limit")
	}
	if !strings.Contains(got, strings.Repeat("д", 100)) {
		t.Error("trimmed section lost its prefix")
	}
}

func TestBuildWithUnavailableDocs(t *testing.T) {
	pc := testContext()
	pc.Docs = store.UnavailableDocs()

	got := NewMasterBuilder(pc).Build()
	if !strings.Contains(got, store.KnowledgeUnavailable) {
		t.Error("unavailable sentinel must flow into the prompt")
	}
}
