package summary

import (
	"fintrack/internal/models"
)

// Budgets computes a status for every budget in the snapshot, in input order.
// A nil budget collection yields an empty list rather than an error.
func Budgets(transactions []models.Transaction, budgets []models.Budget) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, BudgetFor(transactions, b))
	}
	return statuses
}

// BudgetFor compares one budget against the expense transactions of its
// month. Remaining amounts may go negative; percentages are guarded against
// zero budgets. Exactly meeting the budget is not over budget.
func BudgetFor(transactions []models.Transaction, budget models.Budget) BudgetStatus {
	var monthExpenses []models.Transaction
	for _, t := range transactions {
		if t.Type == models.TransactionTypeExpense && t.Month() == budget.Month {
			monthExpenses = append(monthExpenses, t)
		}
	}

	var totalSpent float64
	for _, t := range monthExpenses {
		totalSpent += t.Amount
	}

	status := BudgetStatus{
		Month:            budget.Month,
		TotalBudget:      budget.TotalBudget,
		TotalSpent:       totalSpent,
		RemainingBudget:  budget.TotalBudget - totalSpent,
		IsOverBudget:     totalSpent > budget.TotalBudget,
		CategoryStatuses: []CategoryBudgetStatus{},
	}
	if budget.TotalBudget > 0 {
		status.PercentageUsed = totalSpent / budget.TotalBudget * 100
	}

	// Only categories listed on the budget get a status; untracked categories
	// are not synthesized.
	for _, cb := range budget.CategoryBudgets {
		var spent float64
		for _, t := range monthExpenses {
			if t.Category == cb.Category {
				spent += t.Amount
			}
		}

		cs := CategoryBudgetStatus{
			Category:     cb.Category,
			BudgetAmount: cb.BudgetAmount,
			Spent:        spent,
			Remaining:    cb.BudgetAmount - spent,
			IsOverBudget: spent > cb.BudgetAmount,
		}
		if cb.BudgetAmount > 0 {
			cs.PercentageUsed = spent / cb.BudgetAmount * 100
		}
		status.CategoryStatuses = append(status.CategoryStatuses, cs)
	}

	return status
}
