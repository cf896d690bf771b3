package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// LoanHandler handles loan-related requests.
type LoanHandler struct {
	loanService services.LoanServicer
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanService services.LoanServicer) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// CreateLoanRequest represents the request payload for creating a loan.
type CreateLoanRequest struct {
	Type             models.LoanType `json:"type" binding:"required,loan_type"`
	CounterpartyName string          `json:"counterparty_name" binding:"required,min=1,max=100"`
	Amount           float64         `json:"amount" binding:"required,gte=0"`
	InterestRate     float64         `json:"interest_rate" binding:"gte=0"`
	LoanDate         string          `json:"loan_date" binding:"required,calendar_date"`
	DueDate          string          `json:"due_date" binding:"required,calendar_date"`
	Description      string          `json:"description" binding:"max=500"`
}

// UpdateLoanRequest represents the request payload for updating a loan. The
// status field is absent on purpose: status is derived, never written.
type UpdateLoanRequest struct {
	CounterpartyName *string  `json:"counterparty_name" binding:"omitempty,min=1,max=100"`
	Amount           *float64 `json:"amount" binding:"omitempty,gte=0"`
	InterestRate     *float64 `json:"interest_rate" binding:"omitempty,gte=0"`
	LoanDate         *string  `json:"loan_date" binding:"omitempty,calendar_date"`
	DueDate          *string  `json:"due_date" binding:"omitempty,calendar_date"`
	Description      *string  `json:"description" binding:"omitempty,max=500"`
}

// AddPaymentRequest represents the request payload for recording a repayment.
type AddPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gte=0"`
	PaymentDate string  `json:"payment_date" binding:"required,calendar_date"`
	Description string  `json:"description" binding:"max=500"`
}

// CreateLoan handles the creation of a new loan.
func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	loan, err := h.loanService.CreateLoan(
		req.Type, req.CounterpartyName, req.Amount, req.InterestRate, req.LoanDate, req.DueDate, req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"loan": loan})
}

// GetLoans handles listing all loans with freshly derived statuses.
func (h *LoanHandler) GetLoans(c *gin.Context) {
	loans, err := h.loanService.GetLoans()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loans": loans})
}

// GetLoan handles retrieving a specific loan.
func (h *LoanHandler) GetLoan(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	loan, err := h.loanService.GetLoanByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// UpdateLoan handles updating an existing loan.
func (h *LoanHandler) UpdateLoan(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	loan, err := h.loanService.UpdateLoan(id, services.LoanUpdate{
		CounterpartyName: req.CounterpartyName,
		Amount:           req.Amount,
		InterestRate:     req.InterestRate,
		LoanDate:         req.LoanDate,
		DueDate:          req.DueDate,
		Description:      req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// DeleteLoan handles deleting a loan and its payments.
func (h *LoanHandler) DeleteLoan(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.loanService.DeleteLoan(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Loan deleted successfully"})
}

// AddPayment handles recording a repayment against a loan.
func (h *LoanHandler) AddPayment(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	loan, err := h.loanService.AddPayment(id, req.Amount, req.PaymentDate, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"loan": loan})
}
