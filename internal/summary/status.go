package summary

import (
	"time"

	"fintrack/internal/models"
)

// DeriveLoanStatus computes a loan's lifecycle status from its payment list
// and due date. Full repayment wins over the due date: a fully paid loan past
// its due date is paid, not overdue. An unparseable due date never marks a
// loan overdue.
//
// Callers must re-derive the status every time a loan is loaded, created, or
// mutated so the stored status never goes stale.
func DeriveLoanStatus(loan *models.Loan, today time.Time) models.LoanStatus {
	if loan.TotalPaid() >= loan.Amount {
		return models.LoanStatusPaid
	}
	if due, err := models.ParseDate(loan.DueDate); err == nil && due.Before(today) {
		return models.LoanStatusOverdue
	}
	return models.LoanStatusActive
}
