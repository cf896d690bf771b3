package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CategoryBudgetRequest represents a single per-category allocation.
type CategoryBudgetRequest struct {
	Category     string  `json:"category" binding:"required,min=1,max=100"`
	BudgetAmount float64 `json:"budget_amount" binding:"gte=0"`
}

// UpsertBudgetRequest represents the request payload for creating or replacing
// the budget of a month.
type UpsertBudgetRequest struct {
	Month           string                  `json:"month" binding:"required,month_key"`
	TotalBudget     float64                 `json:"total_budget" binding:"gte=0"`
	CategoryBudgets []CategoryBudgetRequest `json:"category_budgets" binding:"omitempty,dive"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
// A non-nil category list replaces the existing one wholesale.
type UpdateBudgetRequest struct {
	TotalBudget     *float64                 `json:"total_budget" binding:"omitempty,gte=0"`
	CategoryBudgets *[]CategoryBudgetRequest `json:"category_budgets" binding:"omitempty,dive"`
}

func toCategoryBudgets(reqs []CategoryBudgetRequest) []models.CategoryBudget {
	cats := make([]models.CategoryBudget, 0, len(reqs))
	for _, r := range reqs {
		cats = append(cats, models.CategoryBudget{
			Category:     r.Category,
			BudgetAmount: r.BudgetAmount,
		})
	}
	return cats
}

// UpsertBudget handles creating or replacing the budget for a month.
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpsertBudget(req.Month, req.TotalBudget, toCategoryBudgets(req.CategoryBudgets))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing all budgets ordered by month.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	budgets, err := h.budgetService.GetBudgets()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetBudget handles retrieving a specific budget.
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles updating an existing budget.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.BudgetUpdate{TotalBudget: req.TotalBudget}
	if req.CategoryBudgets != nil {
		cats := toCategoryBudgets(*req.CategoryBudgets)
		update.CategoryBudgets = &cats
	}

	budget, err := h.budgetService.UpdateBudget(id, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
