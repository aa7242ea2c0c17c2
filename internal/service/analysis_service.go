package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"zaman-assistant-be/internal/content"
	"zaman-assistant-be/internal/dto"
	"zaman-assistant-be/internal/pkg/logger"
)

// IAnalysisService computes the financial summary that seeds a session.
type IAnalysisService interface {
	Analyze(ctx context.Context, sessionID string) *dto.AnalyzeResponse
}

type analysisService struct {
	assistant        IAssistantService
	staticProfile    string
	transactionsPath string
	logger           logger.ILogger
}

func NewAnalysisService(
	assistant IAssistantService,
	staticProfile string,
	transactionsPath string,
	log logger.ILogger,
) IAnalysisService {
	return &analysisService{
		assistant:        assistant,
		staticProfile:    staticProfile,
		transactionsPath: transactionsPath,
		logger:           log,
	}
}

// Analyze aggregates the transaction feed into category totals, builds
// the session summary and ingests it. It never fails: a missing feed
// produces an explanatory summary instead.
func (s *analysisService) Analyze(ctx context.Context, sessionID string) *dto.AnalyzeResponse {
	txs, err := content.LoadTransactions(s.transactionsPath)
	if err != nil {
		s.logger.Warn("analysis", "transaction feed not loaded", map[string]interface{}{
			"path":  s.transactionsPath,
			"error": err.Error(),
		})
		res := &dto.AnalyzeResponse{
			Summary:    "Ошибка: файл транзакций не найден.",
			Categories: map[string]float64{},
		}
		s.assistant.IngestAnalysis(sessionID, res.Summary)
		return res
	}

	categories := make(map[string]float64)
	var totalIncome, totalExpense float64
	for _, tx := range txs {
		if tx.Amount > 0 {
			totalIncome += tx.Amount
		} else {
			categories[tx.Category] += -tx.Amount
			totalExpense += -tx.Amount
		}
	}

	summary := fmt.Sprintf(
		"Клиент получил %.0f KZT дохода и потратил %.0f KZT. Основные траты: %s",
		totalIncome, totalExpense, topCategories(categories, 3),
	)
	fullContext := fmt.Sprintf("СТАТИЧЕСКИЙ ПРОФИЛЬ: %s\n\nДИНАМИКА: %s", s.staticProfile, summary)

	s.assistant.IngestAnalysis(sessionID, fullContext)

	return &dto.AnalyzeResponse{
		Summary:    fullContext,
		Categories: categories,
	}
}

func topCategories(categories map[string]float64, n int) string {
	type kv struct {
		category string
		amount   float64
	}
	sorted := make([]kv, 0, len(categories))
	for k, v := range categories {
		sorted = append(sorted, kv{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].amount != sorted[j].amount {
			return sorted[i].amount > sorted[j].amount
		}
		return sorted[i].category < sorted[j].category
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	parts := make([]string, len(sorted))
	for i, c := range sorted {
		parts[i] = fmt.Sprintf("%s (%.0f KZT)", c.category, c.amount)
	}
	return strings.Join(parts, ", ")
}
