package summary

import (
	"testing"

	"fintrack/internal/models"
)

func TestMonthly(t *testing.T) {
	t.Run("buckets_by_month", func(t *testing.T) {
		summaries := Monthly([]models.Transaction{
			tx(1000, models.TransactionTypeIncome, "Salary", "2024-01-05"),
			tx(300, models.TransactionTypeExpense, "Food & Dining", "2024-01-10"),
			tx(1000, models.TransactionTypeIncome, "Salary", "2024-02-05"),
		})

		if len(summaries) != 2 {
			t.Fatalf("expected 2 months, got %d", len(summaries))
		}
		jan := summaries[0]
		if jan.Month != "2024-01" || jan.Income != 1000 || jan.Expenses != 300 || jan.Balance != 700 {
			t.Errorf("unexpected January summary: %+v", jan)
		}
		feb := summaries[1]
		if feb.Month != "2024-02" || feb.Income != 1000 || feb.Expenses != 0 {
			t.Errorf("unexpected February summary: %+v", feb)
		}
	})

	t.Run("sorted_ascending_regardless_of_input_order", func(t *testing.T) {
		summaries := Monthly([]models.Transaction{
			tx(10, models.TransactionTypeExpense, "Shopping", "2024-12-01"),
			tx(10, models.TransactionTypeExpense, "Shopping", "2023-02-01"),
			tx(10, models.TransactionTypeExpense, "Shopping", "2024-03-01"),
		})

		want := []string{"2023-02", "2024-03", "2024-12"}
		for i, m := range summaries {
			if m.Month != want[i] {
				t.Errorf("expected month %s at index %d, got %s", want[i], i, m.Month)
			}
		}
	})

	t.Run("gap_months_are_absent", func(t *testing.T) {
		summaries := Monthly([]models.Transaction{
			tx(10, models.TransactionTypeExpense, "Shopping", "2024-01-15"),
			tx(10, models.TransactionTypeExpense, "Shopping", "2024-04-15"),
		})

		if len(summaries) != 2 {
			t.Fatalf("expected only months with transactions, got %d entries", len(summaries))
		}
		for _, m := range summaries {
			if m.Month == "2024-02" || m.Month == "2024-03" {
				t.Errorf("gap month %s should not be synthesized", m.Month)
			}
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		if summaries := Monthly(nil); len(summaries) != 0 {
			t.Errorf("expected no summaries, got %v", summaries)
		}
	})
}
