package models

import (
	"gorm.io/gorm"

	"fintrack/internal/uuid"
)

// Budget represents a monthly spending plan. At most one budget exists per
// month; creating a budget for an existing month replaces it.
type Budget struct {
	Base
	Month           string           `gorm:"not null;index" json:"month"` // YYYY-MM
	TotalBudget     float64          `gorm:"not null" json:"total_budget"`
	CategoryBudgets []CategoryBudget `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"category_budgets"`
}

// CategoryBudget is a spending cap for one expense category within the
// budget's month. It has no lifecycle of its own.
type CategoryBudget struct {
	ID           string  `gorm:"type:uuid;primaryKey" json:"-"`
	BudgetID     string  `gorm:"type:uuid;not null;index" json:"-"`
	Category     string  `gorm:"not null" json:"category"`
	BudgetAmount float64 `gorm:"not null" json:"budget_amount"`
}

// BeforeCreate assigns a UUID before inserting.
func (cb *CategoryBudget) BeforeCreate(tx *gorm.DB) error {
	if cb.ID == "" {
		cb.ID = uuid.New()
	}
	return nil
}

// AfterFind guards against budgets persisted without category entries so
// callers always see a list, never nil.
func (b *Budget) AfterFind(tx *gorm.DB) error {
	if b.CategoryBudgets == nil {
		b.CategoryBudgets = []CategoryBudget{}
	}
	return nil
}
