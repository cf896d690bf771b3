package summary

import (
	"math"
	"time"

	"fintrack/internal/models"
)

// yearHours is the fixed 365-day year used by the interest approximation.
// No leap-year adjustment; this is a deliberate simplification, not a
// day-count convention.
const yearHours = 365 * 24

// Loans partitions loans by direction and aggregates principals, repayments,
// accrued-interest approximations, active/overdue counts, and the net
// position. Empty input yields an all-zero summary.
func Loans(loans []models.Loan) LoanSummary {
	return loansAt(loans, time.Now().UTC())
}

func loansAt(loans []models.Loan, now time.Time) LoanSummary {
	var given, borrowed []models.Loan
	for _, l := range loans {
		switch l.Type {
		case models.LoanTypeGiven:
			given = append(given, l)
		case models.LoanTypeBorrowed:
			borrowed = append(borrowed, l)
		}
	}

	g := tallySide(given, now)
	b := tallySide(borrowed, now)

	return LoanSummary{
		TotalLoansGiven:       g.principal,
		TotalOutstandingGiven: g.principal - g.paidBack,
		TotalReceivedBack:     g.paidBack,
		TotalInterestEarned:   g.interest,
		ActiveGivenLoans:      g.active,
		OverdueGivenLoans:     g.overdue,

		TotalLoansBorrowed:       b.principal,
		TotalOutstandingBorrowed: b.principal - b.paidBack,
		TotalPaidBack:            b.paidBack,
		TotalInterestPaid:        b.interest,
		ActiveBorrowedLoans:      b.active,
		OverdueBorrowedLoans:     b.overdue,

		NetLoanPosition: (g.principal - g.paidBack) - (b.principal - b.paidBack),
	}
}

// sideTotals accumulates one direction's aggregates. Given and borrowed sides
// use identical logic with the role names swapped.
type sideTotals struct {
	principal float64
	paidBack  float64
	interest  float64
	active    int
	overdue   int
}

func tallySide(loans []models.Loan, now time.Time) sideTotals {
	var s sideTotals

	for i := range loans {
		loan := &loans[i]
		paid := loan.TotalPaid()

		s.principal += loan.Amount
		s.paidBack += paid

		// Accrued-interest approximation: interest is only counted once
		// payments exceed principal, capped at the time-accrued expected
		// amount. The inner min can go negative before the outer max guard.
		var expected float64
		if loanDate, err := models.ParseDate(loan.LoanDate); err == nil {
			elapsedYears := now.Sub(loanDate).Hours() / yearHours
			expected = loan.Amount * (loan.InterestRate / 100) * elapsedYears
		}
		s.interest += math.Max(0, math.Min(expected, paid-loan.Amount))

		if loan.Status == models.LoanStatusActive {
			s.active++
		}

		// Overdue is re-checked live from the payment total and due date
		// rather than read from the status field, so a stale status cannot
		// hide an overdue loan. Fully repaid loans are never overdue.
		if paid < loan.Amount {
			if due, err := models.ParseDate(loan.DueDate); err == nil && due.Before(now) {
				s.overdue++
			}
		}
	}

	return s
}
