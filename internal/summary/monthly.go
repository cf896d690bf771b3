package summary

import (
	"sort"

	"fintrack/internal/models"
)

// Monthly buckets transactions by calendar month into income/expense/balance
// entries, one per month present in the data. Months without transactions are
// absent, not zero-filled. The result is sorted ascending by month key, which
// is calendar order because the keys are zero-padded YYYY-MM strings.
// Downstream consumers rely on that ordering to read the last two elements as
// the current and previous month.
func Monthly(transactions []models.Transaction) []MonthlySummary {
	type totals struct {
		income   float64
		expenses float64
	}

	byMonth := make(map[string]totals)
	for _, t := range transactions {
		month := t.Month()
		acc := byMonth[month]
		switch t.Type {
		case models.TransactionTypeIncome:
			acc.income += t.Amount
		case models.TransactionTypeExpense:
			acc.expenses += t.Amount
		}
		byMonth[month] = acc
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	summaries := make([]MonthlySummary, 0, len(months))
	for _, month := range months {
		acc := byMonth[month]
		summaries = append(summaries, MonthlySummary{
			Month:    month,
			Income:   acc.income,
			Expenses: acc.expenses,
			Balance:  acc.income - acc.expenses,
		})
	}
	return summaries
}
