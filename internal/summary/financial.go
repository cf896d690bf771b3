package summary

import (
	"fintrack/internal/models"
)

// salaryCategory is matched literally and case-sensitively; it is the
// conventional income category name, not a general income heuristic.
const salaryCategory = "Salary"

// Financial computes the overall totals, savings metrics, and per-category
// rollup for a transaction snapshot. Category summaries keep first-seen
// order; sorting for display is the caller's concern.
func Financial(transactions []models.Transaction) FinancialSummary {
	var s FinancialSummary

	months := make(map[string]struct{})
	categories := make(map[string]int) // category -> index into CategorySummaries
	s.CategorySummaries = []CategorySummary{}

	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			s.TotalIncome += t.Amount
			if t.Category == salaryCategory {
				s.TotalSalary += t.Amount
			}
		case models.TransactionTypeExpense:
			s.TotalExpenses += t.Amount
		}

		months[t.Month()] = struct{}{}

		idx, ok := categories[t.Category]
		if !ok {
			idx = len(s.CategorySummaries)
			categories[t.Category] = idx
			s.CategorySummaries = append(s.CategorySummaries, CategorySummary{Category: t.Category})
		}
		s.CategorySummaries[idx].Total += t.Amount
		s.CategorySummaries[idx].Transactions++
	}

	s.Balance = s.TotalIncome - s.TotalExpenses
	if s.Balance > 0 {
		s.TotalSavings = s.Balance
	}
	if s.TotalIncome > 0 {
		s.SavingsRate = s.TotalSavings / s.TotalIncome * 100
	}
	if len(months) > 0 {
		s.MonthlyAverage = s.Balance / float64(len(months))
	}

	return s
}
