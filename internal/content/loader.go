package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"zaman-assistant-be/internal/config"
	"zaman-assistant-be/internal/pkg/logger"
)

// Placeholders used when a content file is missing or malformed. Loading
// never fails startup; the core accepts these strings as-is.
const (
	ProfileUnavailable   = "Информация о клиенте недоступна."
	BenchmarkUnavailable = "Сравнительная аналитика недоступна."
)

// StaticContent holds the texts loaded once at process start and read
// only afterwards.
type StaticContent struct {
	ClientProfile string
	Benchmarks    string
}

type clientProfileEntry struct {
	Id            int `json:"id"`
	ClientDetails struct {
		Name   string `json:"name"`
		Age    int    `json:"age"`
		City   string `json:"city"`
		Status string `json:"status"`
	} `json:"client_details"`
	FinancialSummary struct {
		MonthlySalary  float64 `json:"monthly_salary_in_kzt"`
		LoanPaymentAvg float64 `json:"loan_payment_out_avg"`
	} `json:"financial_summary_kzt"`
}

type benchmarkSegment struct {
	SegmentName          string             `json:"segment_name"`
	AvgMonthlyIncome     float64            `json:"avg_monthly_income_kzt"`
	TopSpendingCategorys map[string]float64 `json:"top_spending_categories"`
	CommonGoals          []string           `json:"common_goals"`
	MotivationalInsight  string             `json:"motivational_insight"`
}

// Transaction is one entry of the mock transaction feed. Negative
// amounts are expenses.
type Transaction struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// LoadStatic reads the client profile and benchmark files, degrading to
// placeholders per file.
func LoadStatic(cfg config.ContentConfig, log logger.ILogger) *StaticContent {
	sc := &StaticContent{
		ClientProfile: loadClientProfile(cfg.ClientProfilePath, log),
		Benchmarks:    loadBenchmarks(cfg.BenchmarkPath, log),
	}

	log.Info("content", "static content loaded", map[string]interface{}{
		"profile_loaded":    sc.ClientProfile != ProfileUnavailable,
		"benchmarks_loaded": sc.Benchmarks != BenchmarkUnavailable,
	})
	return sc
}

func loadClientProfile(path string, log logger.ILogger) string {
	var entries []clientProfileEntry
	if err := loadJSON(path, &entries); err != nil {
		log.Warn("content", "client profile not loaded", map[string]interface{}{"path": path, "error": err.Error()})
		return ProfileUnavailable
	}

	for _, e := range entries {
		if e.Id != 0 {
			continue
		}
		d := e.ClientDetails
		s := e.FinancialSummary
		return fmt.Sprintf(
			"Клиент: %s, %d лет, %s. Статус: %s. Ежемесячный доход: %.0f KZT. Платежи по займам: %.0f KZT/мес.",
			d.Name, d.Age, d.City, d.Status, s.MonthlySalary, s.LoanPaymentAvg,
		)
	}
	return ProfileUnavailable
}

func loadBenchmarks(path string, log logger.ILogger) string {
	var segments []benchmarkSegment
	if err := loadJSON(path, &segments); err != nil || len(segments) == 0 {
		log.Warn("content", "benchmarks not loaded", map[string]interface{}{"path": path})
		return BenchmarkUnavailable
	}

	formatted := make([]string, 0, len(segments))
	for _, seg := range segments {
		formatted = append(formatted, fmt.Sprintf(
			"СЕГМЕНТ: %s | Средний доход: %.0f KZT. Топ-траты: %s. ИНСАЙТ: %s",
			seg.SegmentName,
			seg.AvgMonthlyIncome,
			formatSpends(seg.TopSpendingCategorys),
			seg.MotivationalInsight,
		))
	}
	return strings.Join(formatted, "\n\n---\n\n")
}

// formatSpends renders categories largest first so the output is stable
// across runs despite map iteration order.
func formatSpends(spends map[string]float64) string {
	type kv struct {
		category string
		amount   float64
	}
	sorted := make([]kv, 0, len(spends))
	for k, v := range spends {
		sorted = append(sorted, kv{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].amount != sorted[j].amount {
			return sorted[i].amount > sorted[j].amount
		}
		return sorted[i].category < sorted[j].category
	})

	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = fmt.Sprintf("%s (%.0f KZT)", s.category, s.amount)
	}
	return strings.Join(parts, ", ")
}

// LoadTransactions reads the mock transaction feed.
func LoadTransactions(path string) ([]Transaction, error) {
	var txs []Transaction
	if err := loadJSON(path, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
