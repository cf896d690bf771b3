package services

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/summary"
)

var monthKeyRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// UpsertBudget creates the budget for a month, replacing any existing budget
// for that month so a month never has two budgets. Category entries with a
// zero amount are dropped.
func (s *budgetService) UpsertBudget(month string, totalBudget float64, categoryBudgets []models.CategoryBudget) (*models.Budget, error) {
	if !monthKeyRegex.MatchString(month) {
		return nil, apperrors.ErrInvalidMonth
	}
	if totalBudget < 0 {
		return nil, apperrors.ErrNegativeAmount
	}

	kept := make([]models.CategoryBudget, 0, len(categoryBudgets))
	for _, cb := range categoryBudgets {
		if cb.BudgetAmount != 0 {
			kept = append(kept, models.CategoryBudget{Category: cb.Category, BudgetAmount: cb.BudgetAmount})
		}
	}

	budget := &models.Budget{
		Month:           month,
		TotalBudget:     totalBudget,
		CategoryBudgets: kept,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Budget
		if err := tx.Where("month = ?", month).Find(&existing).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for i := range existing {
			if err := s.deleteWithCategories(tx, &existing[i]); err != nil {
				return err
			}
		}
		if err := tx.Create(budget).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// GetBudgets returns all budgets ordered by month ascending.
func (s *budgetService) GetBudgets() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Preload("CategoryBudgets").Order("month ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget with its category entries.
func (s *budgetService) GetBudgetByID(id string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("CategoryBudgets").Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget applies an explicit partial update. A provided category list
// replaces the stored one wholesale, with zero-amount entries dropped.
func (s *budgetService) UpdateBudget(id string, update BudgetUpdate) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if update.TotalBudget != nil {
			if *update.TotalBudget < 0 {
				return apperrors.ErrNegativeAmount
			}
			if err := tx.Model(budget).Update("total_budget", *update.TotalBudget).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if update.CategoryBudgets != nil {
			if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.CategoryBudget{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			kept := make([]models.CategoryBudget, 0, len(*update.CategoryBudgets))
			for _, cb := range *update.CategoryBudgets {
				if cb.BudgetAmount != 0 {
					kept = append(kept, models.CategoryBudget{
						BudgetID:     budget.ID,
						Category:     cb.Category,
						BudgetAmount: cb.BudgetAmount,
					})
				}
			}
			if len(kept) > 0 {
				if err := tx.Create(&kept).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
			}
			budget.CategoryBudgets = kept
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetBudgetByID(id)
}

// DeleteBudget removes a budget and its category entries.
func (s *budgetService) DeleteBudget(id string) error {
	budget, err := s.GetBudgetByID(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.deleteWithCategories(tx, budget)
	})
}

func (s *budgetService) deleteWithCategories(tx *gorm.DB, budget *models.Budget) error {
	if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.CategoryBudget{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := tx.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// BudgetStatuses recomputes budget utilization from the current transaction
// and budget snapshots.
func (s *budgetService) BudgetStatuses() ([]summary.BudgetStatus, error) {
	var transactions []models.Transaction
	if err := s.db.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	budgets, err := s.GetBudgets()
	if err != nil {
		return nil, err
	}
	return summary.Budgets(transactions, budgets), nil
}
