package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/summary"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a new income or expense transaction. The id and
// created_at fields are assigned here and stay immutable afterwards.
func (s *transactionService) CreateTransaction(
	amount float64,
	category, description, date string,
	txType models.TransactionType,
	receiptImage, receiptFileName string,
) (*models.Transaction, error) {
	if amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if _, err := models.ParseDate(date); err != nil {
		return nil, apperrors.ErrInvalidDate
	}
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}

	transaction := &models.Transaction{
		Amount:          amount,
		Category:        category,
		Description:     description,
		Date:            date,
		Type:            txType,
		ReceiptImage:    receiptImage,
		ReceiptFileName: receiptFileName,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetTransactions retrieves a paginated, filtered list of transactions,
// newest first.
func (s *transactionService) GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.Month != nil {
		q = q.Where("date LIKE ?", *f.Month+"%")
	}
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	return q
}

// GetTransactionByID returns a transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies an explicit partial update to a transaction.
func (s *transactionService) UpdateTransaction(id string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Amount != nil {
		if *update.Amount < 0 {
			return nil, apperrors.ErrNegativeAmount
		}
		updates["amount"] = *update.Amount
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Date != nil {
		if _, err := models.ParseDate(*update.Date); err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		updates["date"] = *update.Date
	}
	if update.Type != nil {
		if *update.Type != models.TransactionTypeIncome && *update.Type != models.TransactionTypeExpense {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
		}
		updates["type"] = *update.Type
	}
	if update.ReceiptImage != nil {
		updates["receipt_image"] = *update.ReceiptImage
	}
	if update.ReceiptFileName != nil {
		updates["receipt_file_name"] = *update.ReceiptFileName
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// AttachReceipt stores or replaces the receipt attachment on a transaction
// without touching any other field.
func (s *transactionService) AttachReceipt(id, receiptImage, receiptFileName string) (*models.Transaction, error) {
	return s.UpdateTransaction(id, TransactionUpdate{
		ReceiptImage:    &receiptImage,
		ReceiptFileName: &receiptFileName,
	})
}

// DeleteTransaction soft-deletes a transaction.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// FinancialSummary recomputes the overall summary from the full transaction
// snapshot. Summaries carry no cached state; every call reflects the current
// collections.
func (s *transactionService) FinancialSummary() (*summary.FinancialSummary, error) {
	transactions, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	result := summary.Financial(transactions)
	return &result, nil
}

// MonthlySummaries recomputes the per-month series from the full snapshot.
func (s *transactionService) MonthlySummaries() ([]summary.MonthlySummary, error) {
	transactions, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return summary.Monthly(transactions), nil
}

func (s *transactionService) snapshot() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
