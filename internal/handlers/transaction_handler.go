package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
type CreateTransactionRequest struct {
	Amount          float64                `json:"amount" binding:"required,gte=0"`
	Category        string                 `json:"category" binding:"required,min=1,max=100"`
	Description     string                 `json:"description" binding:"max=500"`
	Date            string                 `json:"date" binding:"required,calendar_date"`
	Type            models.TransactionType `json:"type" binding:"required,transaction_type"`
	ReceiptImage    string                 `json:"receipt_image"`
	ReceiptFileName string                 `json:"receipt_file_name" binding:"max=255"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Nil fields are left untouched.
type UpdateTransactionRequest struct {
	Amount          *float64                `json:"amount" binding:"omitempty,gte=0"`
	Category        *string                 `json:"category" binding:"omitempty,min=1,max=100"`
	Description     *string                 `json:"description" binding:"omitempty,max=500"`
	Date            *string                 `json:"date" binding:"omitempty,calendar_date"`
	Type            *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	ReceiptImage    *string                 `json:"receipt_image"`
	ReceiptFileName *string                 `json:"receipt_file_name" binding:"omitempty,max=255"`
}

// CreateTransaction handles the creation of a new transaction.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(
		req.Amount, req.Category, req.Description, req.Date, req.Type, req.ReceiptImage, req.ReceiptFileName,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles listing transactions with optional filters.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.TransactionFilter
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		if t != models.TransactionTypeIncome && t != models.TransactionTypeExpense {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'income' or 'expense'"))
			return
		}
		filter.Type = &t
	}
	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := c.Query("month"); v != "" {
		filter.Month = &v
	}
	if v := c.Query("from_date"); v != "" {
		filter.FromDate = &v
	}
	if v := c.Query("to_date"); v != "" {
		filter.ToDate = &v
	}

	result, err := h.transactionService.GetTransactions(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction handles retrieving a specific transaction.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles updating an existing transaction.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(id, services.TransactionUpdate{
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		Date:            req.Date,
		Type:            req.Type,
		ReceiptImage:    req.ReceiptImage,
		ReceiptFileName: req.ReceiptFileName,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
