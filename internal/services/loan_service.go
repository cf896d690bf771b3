package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/summary"
)

// loanService handles loan-related business logic. Every read and mutation
// re-derives the loan status so it never goes stale relative to the payment
// list and due date.
type loanService struct {
	db *gorm.DB
}

// NewLoanService creates a new LoanServicer.
func NewLoanService(db *gorm.DB) LoanServicer {
	return &loanService{db: db}
}

// CreateLoan records a new loan with an empty payment list and a freshly
// derived status.
func (s *loanService) CreateLoan(
	loanType models.LoanType,
	counterpartyName string,
	amount, interestRate float64,
	loanDate, dueDate, description string,
) (*models.Loan, error) {
	if loanType != models.LoanTypeGiven && loanType != models.LoanTypeBorrowed {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "loan type must be given or borrowed")
	}
	if amount < 0 || interestRate < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if _, err := models.ParseDate(loanDate); err != nil {
		return nil, apperrors.ErrInvalidDate
	}
	if _, err := models.ParseDate(dueDate); err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	loan := &models.Loan{
		Type:             loanType,
		CounterpartyName: counterpartyName,
		Amount:           amount,
		InterestRate:     interestRate,
		LoanDate:         loanDate,
		DueDate:          dueDate,
		Description:      description,
		Payments:         []models.LoanPayment{},
	}
	loan.Status = summary.DeriveLoanStatus(loan, models.Today())

	if err := s.db.Create(loan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return loan, nil
}

// GetLoans returns all loans with payments, statuses re-derived.
func (s *loanService) GetLoans() ([]models.Loan, error) {
	var loans []models.Loan
	if err := s.db.Preload("Payments").Order("created_at DESC").Find(&loans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	today := models.Today()
	for i := range loans {
		loans[i].Status = summary.DeriveLoanStatus(&loans[i], today)
	}
	return loans, nil
}

// GetLoanByID returns a loan with its payments, status re-derived.
func (s *loanService) GetLoanByID(id string) (*models.Loan, error) {
	var loan models.Loan
	if err := s.db.Preload("Payments").Where("id = ?", id).First(&loan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	loan.Status = summary.DeriveLoanStatus(&loan, models.Today())
	return &loan, nil
}

// UpdateLoan applies an explicit partial update, then re-derives and persists
// the status. Status itself is not a writable field.
func (s *loanService) UpdateLoan(id string, update LoanUpdate) (*models.Loan, error) {
	loan, err := s.GetLoanByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.CounterpartyName != nil {
		updates["counterparty_name"] = *update.CounterpartyName
	}
	if update.Amount != nil {
		if *update.Amount < 0 {
			return nil, apperrors.ErrNegativeAmount
		}
		updates["amount"] = *update.Amount
		loan.Amount = *update.Amount
	}
	if update.InterestRate != nil {
		if *update.InterestRate < 0 {
			return nil, apperrors.ErrNegativeAmount
		}
		updates["interest_rate"] = *update.InterestRate
		loan.InterestRate = *update.InterestRate
	}
	if update.LoanDate != nil {
		if _, err := models.ParseDate(*update.LoanDate); err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		updates["loan_date"] = *update.LoanDate
		loan.LoanDate = *update.LoanDate
	}
	if update.DueDate != nil {
		if _, err := models.ParseDate(*update.DueDate); err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		updates["due_date"] = *update.DueDate
		loan.DueDate = *update.DueDate
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}

	updates["status"] = summary.DeriveLoanStatus(loan, models.Today())

	if err := s.db.Model(loan).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return loan, nil
}

// DeleteLoan removes a loan and its payments.
func (s *loanService) DeleteLoan(id string) error {
	loan, err := s.GetLoanByID(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("loan_id = ?", loan.ID).Delete(&models.LoanPayment{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(loan).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// AddPayment appends a repayment to a loan, then re-derives and persists the
// status so a completing payment immediately marks the loan paid.
func (s *loanService) AddPayment(loanID string, amount float64, paymentDate, description string) (*models.Loan, error) {
	if amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if _, err := models.ParseDate(paymentDate); err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	loan, err := s.GetLoanByID(loanID)
	if err != nil {
		return nil, err
	}

	payment := models.LoanPayment{
		LoanID:      loan.ID,
		Amount:      amount,
		PaymentDate: paymentDate,
		Description: description,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		loan.Payments = append(loan.Payments, payment)
		loan.Status = summary.DeriveLoanStatus(loan, models.Today())
		if err := tx.Model(loan).Update("status", loan.Status).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// LoanSummary recomputes the aggregate loan position from the current
// snapshot with freshly derived statuses.
func (s *loanService) LoanSummary() (*summary.LoanSummary, error) {
	loans, err := s.GetLoans()
	if err != nil {
		return nil, err
	}
	result := summary.Loans(loans)
	return &result, nil
}
