package services

import (
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/summary"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type     *models.TransactionType
	Category *string
	Month    *string // YYYY-MM
	FromDate *string // YYYY-MM-DD, inclusive
	ToDate   *string // YYYY-MM-DD, inclusive
}

// TransactionUpdate is an explicit partial update for a transaction. Nil
// fields are left untouched; id and created_at are never updatable.
type TransactionUpdate struct {
	Amount          *float64
	Category        *string
	Description     *string
	Date            *string
	Type            *models.TransactionType
	ReceiptImage    *string
	ReceiptFileName *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(amount float64, category, description, date string, txType models.TransactionType, receiptImage, receiptFileName string) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id string, update TransactionUpdate) (*models.Transaction, error)
	AttachReceipt(id, receiptImage, receiptFileName string) (*models.Transaction, error)
	DeleteTransaction(id string) error
	FinancialSummary() (*summary.FinancialSummary, error)
	MonthlySummaries() ([]summary.MonthlySummary, error)
}

// BudgetUpdate is an explicit partial update for a budget. A non-nil category
// list replaces the existing one wholesale.
type BudgetUpdate struct {
	TotalBudget     *float64
	CategoryBudgets *[]models.CategoryBudget
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	UpsertBudget(month string, totalBudget float64, categoryBudgets []models.CategoryBudget) (*models.Budget, error)
	GetBudgets() ([]models.Budget, error)
	GetBudgetByID(id string) (*models.Budget, error)
	UpdateBudget(id string, update BudgetUpdate) (*models.Budget, error)
	DeleteBudget(id string) error
	BudgetStatuses() ([]summary.BudgetStatus, error)
}

// LoanUpdate is an explicit partial update for a loan. The status field is
// deliberately absent: status is always re-derived, never written by callers.
type LoanUpdate struct {
	CounterpartyName *string
	Amount           *float64
	InterestRate     *float64
	LoanDate         *string
	DueDate          *string
	Description      *string
}

// LoanServicer defines the contract for loan-related business logic.
type LoanServicer interface {
	CreateLoan(loanType models.LoanType, counterpartyName string, amount, interestRate float64, loanDate, dueDate, description string) (*models.Loan, error)
	GetLoans() ([]models.Loan, error)
	GetLoanByID(id string) (*models.Loan, error)
	UpdateLoan(id string, update LoanUpdate) (*models.Loan, error)
	DeleteLoan(id string) error
	AddPayment(loanID string, amount float64, paymentDate, description string) (*models.Loan, error)
	LoanSummary() (*summary.LoanSummary, error)
}
