package models

// Conventional category names offered by the UI layer. They are suggestions,
// not an enforced vocabulary: transactions may carry any category string.
var (
	IncomeCategories = []string{
		"Salary",
		"Freelance",
		"Business",
		"Investment",
		"Gift",
		"Other Income",
	}

	ExpenseCategories = []string{
		"Food & Dining",
		"Transportation",
		"Shopping",
		"Entertainment",
		"Bills & Utilities",
		"Healthcare",
		"Education",
		"Travel",
		"Other Expenses",
	}
)
