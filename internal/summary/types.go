// Package summary contains the derived-financial-metrics engines. Every
// function is a pure computation over an in-memory snapshot of the record
// collections: no I/O, no shared state, and no error conditions. Missing
// or empty inputs degrade to zeroed results.
package summary

// CategorySummary aggregates all transactions sharing one category string.
type CategorySummary struct {
	Category     string  `json:"category"`
	Total        float64 `json:"total"`
	Transactions int     `json:"transactions"`
}

// FinancialSummary holds the overall totals derived from the transaction
// collection.
type FinancialSummary struct {
	TotalIncome       float64           `json:"total_income"`
	TotalSalary       float64           `json:"total_salary"`
	TotalExpenses     float64           `json:"total_expenses"`
	Balance           float64           `json:"balance"`
	TotalSavings      float64           `json:"total_savings"`
	SavingsRate       float64           `json:"savings_rate"`
	MonthlyAverage    float64           `json:"monthly_average"`
	CategorySummaries []CategorySummary `json:"category_summaries"`
}

// MonthlySummary holds income, expenses and balance for one calendar month.
type MonthlySummary struct {
	Month    string  `json:"month"` // YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// CategoryBudgetStatus compares one category's budget against actual spend
// within the budget's month.
type CategoryBudgetStatus struct {
	Category       string  `json:"category"`
	BudgetAmount   float64 `json:"budget_amount"`
	Spent          float64 `json:"spent"`
	Remaining      float64 `json:"remaining"`
	PercentageUsed float64 `json:"percentage_used"`
	IsOverBudget   bool    `json:"is_over_budget"`
}

// BudgetStatus compares a monthly budget against actual expense spend.
type BudgetStatus struct {
	Month            string                 `json:"month"`
	TotalBudget      float64                `json:"total_budget"`
	TotalSpent       float64                `json:"total_spent"`
	RemainingBudget  float64                `json:"remaining_budget"`
	PercentageUsed   float64                `json:"percentage_used"`
	IsOverBudget     bool                   `json:"is_over_budget"`
	CategoryStatuses []CategoryBudgetStatus `json:"category_statuses"`
}

// LoanSummary aggregates loans by direction and derives the net position.
type LoanSummary struct {
	// Given loans (money the user lent out).
	TotalLoansGiven       float64 `json:"total_loans_given"`
	TotalOutstandingGiven float64 `json:"total_outstanding_given"`
	TotalReceivedBack     float64 `json:"total_received_back"`
	TotalInterestEarned   float64 `json:"total_interest_earned"`
	ActiveGivenLoans      int     `json:"active_given_loans"`
	OverdueGivenLoans     int     `json:"overdue_given_loans"`

	// Borrowed loans (money the user owes).
	TotalLoansBorrowed       float64 `json:"total_loans_borrowed"`
	TotalOutstandingBorrowed float64 `json:"total_outstanding_borrowed"`
	TotalPaidBack            float64 `json:"total_paid_back"`
	TotalInterestPaid        float64 `json:"total_interest_paid"`
	ActiveBorrowedLoans      int     `json:"active_borrowed_loans"`
	OverdueBorrowedLoans     int     `json:"overdue_borrowed_loans"`

	// Positive means the user is owed more than they owe.
	NetLoanPosition float64 `json:"net_loan_position"`
}
