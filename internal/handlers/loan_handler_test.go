package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/summary"
)

// --- mock loan service ---

type mockLoanService struct {
	createLoanFn  func(loanType models.LoanType, counterpartyName string, amount, interestRate float64, loanDate, dueDate, description string) (*models.Loan, error)
	getLoansFn    func() ([]models.Loan, error)
	getLoanByIDFn func(id string) (*models.Loan, error)
	updateLoanFn  func(id string, update services.LoanUpdate) (*models.Loan, error)
	deleteLoanFn  func(id string) error
	addPaymentFn  func(loanID string, amount float64, paymentDate, description string) (*models.Loan, error)
	loanSummaryFn func() (*summary.LoanSummary, error)
}

func (m *mockLoanService) CreateLoan(loanType models.LoanType, counterpartyName string, amount, interestRate float64, loanDate, dueDate, description string) (*models.Loan, error) {
	if m.createLoanFn != nil {
		return m.createLoanFn(loanType, counterpartyName, amount, interestRate, loanDate, dueDate, description)
	}
	return &models.Loan{}, nil
}

func (m *mockLoanService) GetLoans() ([]models.Loan, error) {
	if m.getLoansFn != nil {
		return m.getLoansFn()
	}
	return []models.Loan{}, nil
}

func (m *mockLoanService) GetLoanByID(id string) (*models.Loan, error) {
	if m.getLoanByIDFn != nil {
		return m.getLoanByIDFn(id)
	}
	return &models.Loan{}, nil
}

func (m *mockLoanService) UpdateLoan(id string, update services.LoanUpdate) (*models.Loan, error) {
	if m.updateLoanFn != nil {
		return m.updateLoanFn(id, update)
	}
	return &models.Loan{}, nil
}

func (m *mockLoanService) DeleteLoan(id string) error {
	if m.deleteLoanFn != nil {
		return m.deleteLoanFn(id)
	}
	return nil
}

func (m *mockLoanService) AddPayment(loanID string, amount float64, paymentDate, description string) (*models.Loan, error) {
	if m.addPaymentFn != nil {
		return m.addPaymentFn(loanID, amount, paymentDate, description)
	}
	return &models.Loan{}, nil
}

func (m *mockLoanService) LoanSummary() (*summary.LoanSummary, error) {
	if m.loanSummaryFn != nil {
		return m.loanSummaryFn()
	}
	return &summary.LoanSummary{}, nil
}

var _ services.LoanServicer = (*mockLoanService)(nil)

func setupLoanRouter(handler *LoanHandler) *gin.Engine {
	r := gin.New()
	r.POST("/loans", handler.CreateLoan)
	r.GET("/loans", handler.GetLoans)
	r.GET("/loans/:id", handler.GetLoan)
	r.PUT("/loans/:id", handler.UpdateLoan)
	r.DELETE("/loans/:id", handler.DeleteLoan)
	r.POST("/loans/:id/payments", handler.AddPayment)
	return r
}

// --- tests ---

func TestLoanHandler_CreateLoan(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockLoanService{
			createLoanFn: func(loanType models.LoanType, name string, amount, _ float64, loanDate, dueDate, _ string) (*models.Loan, error) {
				return &models.Loan{
					Base:             models.Base{ID: testID},
					Type:             loanType,
					CounterpartyName: name,
					Amount:           amount,
					LoanDate:         loanDate,
					DueDate:          dueDate,
					Status:           models.LoanStatusActive,
				}, nil
			},
		}
		r := setupLoanRouter(NewLoanHandler(svc))

		rec := doRequest(r, "POST", "/loans",
			`{"type":"given","counterparty_name":"Alex","amount":1000,"loan_date":"2025-01-01","due_date":"2025-12-31"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		loan := result["loan"].(map[string]interface{})
		if loan["status"] != "active" {
			t.Errorf("expected active status, got %v", loan["status"])
		}
	})

	t.Run("returns 400 on unknown direction", func(t *testing.T) {
		r := setupLoanRouter(NewLoanHandler(&mockLoanService{}))

		rec := doRequest(r, "POST", "/loans",
			`{"type":"shared","counterparty_name":"Alex","amount":1000,"loan_date":"2025-01-01","due_date":"2025-12-31"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestLoanHandler_UpdateLoan(t *testing.T) {
	t.Run("status is not a writable field", func(t *testing.T) {
		var captured services.LoanUpdate
		svc := &mockLoanService{
			updateLoanFn: func(id string, update services.LoanUpdate) (*models.Loan, error) {
				captured = update
				return &models.Loan{Base: models.Base{ID: id}}, nil
			},
		}
		r := setupLoanRouter(NewLoanHandler(svc))

		// A status field in the payload is ignored, not an error.
		rec := doRequest(r, "PUT", "/loans/"+testID, `{"amount":2000,"status":"paid"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Amount == nil || *captured.Amount != 2000 {
			t.Error("expected amount to be forwarded")
		}
	})
}

func TestLoanHandler_AddPayment(t *testing.T) {
	t.Run("returns 201 with updated loan", func(t *testing.T) {
		svc := &mockLoanService{
			addPaymentFn: func(loanID string, amount float64, paymentDate, _ string) (*models.Loan, error) {
				return &models.Loan{
					Base:   models.Base{ID: loanID},
					Amount: amount,
					Status: models.LoanStatusPaid,
					Payments: []models.LoanPayment{
						{LoanID: loanID, Amount: amount, PaymentDate: paymentDate},
					},
				}, nil
			},
		}
		r := setupLoanRouter(NewLoanHandler(svc))

		rec := doRequest(r, "POST", "/loans/"+testID+"/payments",
			`{"amount":1000,"payment_date":"2025-06-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		loan := result["loan"].(map[string]interface{})
		if loan["status"] != "paid" {
			t.Errorf("expected paid status, got %v", loan["status"])
		}
	})

	t.Run("returns 404 when loan missing", func(t *testing.T) {
		svc := &mockLoanService{
			addPaymentFn: func(string, float64, string, string) (*models.Loan, error) {
				return nil, apperrors.ErrLoanNotFound
			},
		}
		r := setupLoanRouter(NewLoanHandler(svc))

		rec := doRequest(r, "POST", "/loans/"+testID+"/payments",
			`{"amount":1000,"payment_date":"2025-06-01"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "LOAN_NOT_FOUND")
	})

	t.Run("returns 400 on malformed payment date", func(t *testing.T) {
		r := setupLoanRouter(NewLoanHandler(&mockLoanService{}))

		rec := doRequest(r, "POST", "/loans/"+testID+"/payments",
			`{"amount":1000,"payment_date":"yesterday"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
