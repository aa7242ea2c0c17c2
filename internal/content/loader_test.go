package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"zaman-assistant-be/internal/config"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStaticMissingFilesDegradeToPlaceholders(t *testing.T) {
	cfg := config.ContentConfig{
		ClientProfilePath: "does/not/exist.json",
		BenchmarkPath:     "also/missing.json",
	}

	sc := LoadStatic(cfg, nopLogger{})
	if sc.ClientProfile != ProfileUnavailable {
		t.Errorf("ClientProfile = %q", sc.ClientProfile)
	}
	if sc.Benchmarks != BenchmarkUnavailable {
		t.Errorf("Benchmarks = %q", sc.Benchmarks)
	}
}

func TestLoadStaticFormatsProfile(t *testing.T) {
	dir := t.TempDir()
	profile := writeFile(t, dir, "profile.json", `[
		{"id": 0,
		 "client_details": {"name": "Айдана", "age": 29, "city": "Алматы", "status": "зарплатный клиент"},
		 "financial_summary_kzt": {"monthly_salary_in_kzt": 400000, "loan_payment_out_avg": 55000}}
	]`)
	benchmarks := writeFile(t, dir, "bench.json", `[
		{"segment_name": "Молодые специалисты",
		 "avg_monthly_income_kzt": 380000,
		 "top_spending_categories": {"кафе": 80000, "транспорт": 30000},
		 "common_goals": ["накопления"],
		 "motivational_insight": "Сегмент активно копит."}
	]`)

	sc := LoadStatic(config.ContentConfig{ClientProfilePath: profile, BenchmarkPath: benchmarks}, nopLogger{})

	if !strings.Contains(sc.ClientProfile, "Айдана, 29 лет, Алматы") {
		t.Errorf("ClientProfile = %q", sc.ClientProfile)
	}
	if !strings.Contains(sc.ClientProfile, "400000 KZT") {
		t.Errorf("ClientProfile missing salary: %q", sc.ClientProfile)
	}

	if !strings.Contains(sc.Benchmarks, "СЕГМЕНТ: Молодые специалисты") {
		t.Errorf("Benchmarks = %q", sc.Benchmarks)
	}
	// Largest spend category must come first regardless of map order.
	if !strings.Contains(sc.Benchmarks, "кафе (80000 KZT), транспорт (30000 KZT)") {
		t.Errorf("spend order unstable: %q", sc.Benchmarks)
	}
}

func TestLoadTransactions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tx.json", `[
		{"amount": 400000, "category": "salary"},
		{"amount": -80000, "category": "dining"}
	]`)

	txs, err := LoadTransactions(path)
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(txs) != 2 || txs[1].Amount != -80000 {
		t.Errorf("txs = %+v", txs)
	}

	if _, err := LoadTransactions(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should return an error")
	}
}
