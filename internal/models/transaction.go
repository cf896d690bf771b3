package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense record. Amount is always
// non-negative; the direction is carried by Type, never by the sign.
type Transaction struct {
	Base
	Amount      float64         `gorm:"not null" json:"amount"`
	Category    string          `gorm:"not null;index" json:"category"`
	Description string          `json:"description"`
	Date        string          `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	Type        TransactionType `gorm:"not null" json:"type"`

	// Optional receipt attachment captured alongside the transaction.
	ReceiptImage    string `json:"receipt_image,omitempty"` // base64-encoded image data
	ReceiptFileName string `json:"receipt_file_name,omitempty"`
}

// Month returns the YYYY-MM key of the transaction's date.
func (t *Transaction) Month() string {
	return MonthKey(t.Date)
}
