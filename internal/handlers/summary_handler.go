package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// SummaryHandler serves the derived financial metrics. Every endpoint
// recomputes from the current data, nothing is cached.
type SummaryHandler struct {
	transactionService services.TransactionServicer
	budgetService      services.BudgetServicer
	loanService        services.LoanServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(
	transactionService services.TransactionServicer,
	budgetService services.BudgetServicer,
	loanService services.LoanServicer,
) *SummaryHandler {
	return &SummaryHandler{
		transactionService: transactionService,
		budgetService:      budgetService,
		loanService:        loanService,
	}
}

// GetOverview handles retrieving the overall financial summary.
func (h *SummaryHandler) GetOverview(c *gin.Context) {
	s, err := h.transactionService.FinancialSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": s})
}

// GetMonthly handles retrieving per-month summaries in ascending month order.
func (h *SummaryHandler) GetMonthly(c *gin.Context) {
	summaries, err := h.transactionService.MonthlySummaries()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly_summaries": summaries})
}

// GetBudgetStatuses handles retrieving the spending status of every budget.
func (h *SummaryHandler) GetBudgetStatuses(c *gin.Context) {
	statuses, err := h.budgetService.BudgetStatuses()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_statuses": statuses})
}

// GetLoanSummary handles retrieving the aggregate loan position.
func (h *SummaryHandler) GetLoanSummary(c *gin.Context) {
	s, err := h.loanService.LoanSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loan_summary": s})
}
