package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction creates a transaction of the given type, amount,
// category, and date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, amount float64, category, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Date:        date,
		Type:        txType,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget for the given month and total.
func CreateTestBudget(t *testing.T, db *gorm.DB, month string, totalBudget float64, categoryBudgets ...models.CategoryBudget) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Month:           month,
		TotalBudget:     totalBudget,
		CategoryBudgets: categoryBudgets,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestLoan creates a loan of the given direction with no payments.
func CreateTestLoan(t *testing.T, db *gorm.DB, loanType models.LoanType, amount float64, loanDate, dueDate string) *models.Loan {
	t.Helper()

	loan := &models.Loan{
		Type:             loanType,
		CounterpartyName: fmt.Sprintf("Test Counterparty %d", nextID()),
		Amount:           amount,
		LoanDate:         loanDate,
		DueDate:          dueDate,
		Status:           models.LoanStatusActive,
	}
	if err := db.Create(loan).Error; err != nil {
		t.Fatalf("failed to create test loan: %v", err)
	}
	return loan
}

// CreateTestLoanPayment records a payment against the given loan.
func CreateTestLoanPayment(t *testing.T, db *gorm.DB, loanID string, amount float64, paymentDate string) *models.LoanPayment {
	t.Helper()

	payment := &models.LoanPayment{
		LoanID:      loanID,
		Amount:      amount,
		PaymentDate: paymentDate,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test loan payment: %v", err)
	}
	return payment
}
