package models

// LoanType represents the direction of a loan
type LoanType string

const (
	LoanTypeGiven    LoanType = "given"    // money the user lent out
	LoanTypeBorrowed LoanType = "borrowed" // money the user owes
)

// LoanStatus represents the lifecycle status of a loan. It is always derived
// from the payment list and due date, never trusted as stored truth.
type LoanStatus string

const (
	LoanStatusActive  LoanStatus = "active"
	LoanStatusPaid    LoanStatus = "paid"
	LoanStatusOverdue LoanStatus = "overdue"
)

// Loan represents a peer-to-peer loan, either given or borrowed.
// CounterpartyName is the borrower for given loans and the lender for
// borrowed ones.
type Loan struct {
	Base
	Type             LoanType      `gorm:"not null" json:"type"`
	CounterpartyName string        `gorm:"not null" json:"counterparty_name"`
	Amount           float64       `gorm:"not null" json:"amount"` // principal
	InterestRate     float64       `gorm:"not null;default:0" json:"interest_rate"` // annual %
	LoanDate         string        `gorm:"not null" json:"loan_date"` // YYYY-MM-DD
	DueDate          string        `gorm:"not null" json:"due_date"`  // YYYY-MM-DD
	Description      string        `json:"description"`
	Status           LoanStatus    `gorm:"not null;default:'active'" json:"status"`
	Payments         []LoanPayment `gorm:"foreignKey:LoanID;constraint:OnDelete:CASCADE" json:"payments"`
}

// LoanPayment is a single repayment against a loan. Payments belong
// exclusively to their loan.
type LoanPayment struct {
	Base
	LoanID      string  `gorm:"type:uuid;not null;index" json:"-"`
	Amount      float64 `gorm:"not null" json:"amount"`
	PaymentDate string  `gorm:"not null" json:"payment_date"` // YYYY-MM-DD
	Description string  `json:"description,omitempty"`
}

// TotalPaid sums all payments recorded against the loan.
func (l *Loan) TotalPaid() float64 {
	var total float64
	for _, p := range l.Payments {
		total += p.Amount
	}
	return total
}
