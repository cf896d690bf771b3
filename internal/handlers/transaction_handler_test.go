package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/summary"
	"fintrack/internal/validator"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn  func(amount float64, category, description, date string, txType models.TransactionType, receiptImage, receiptFileName string) (*models.Transaction, error)
	getTransactionsFn    func(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn func(id string) (*models.Transaction, error)
	updateTransactionFn  func(id string, update services.TransactionUpdate) (*models.Transaction, error)
	attachReceiptFn      func(id, receiptImage, receiptFileName string) (*models.Transaction, error)
	deleteTransactionFn  func(id string) error
	financialSummaryFn   func() (*summary.FinancialSummary, error)
	monthlySummariesFn   func() ([]summary.MonthlySummary, error)
}

func (m *mockTransactionService) CreateTransaction(amount float64, category, description, date string, txType models.TransactionType, receiptImage, receiptFileName string) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(amount, category, description, date, txType, receiptImage, receiptFileName)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactions(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getTransactionsFn != nil {
		return m.getTransactionsFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(id string, update services.TransactionUpdate) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(id, update)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) AttachReceipt(id, receiptImage, receiptFileName string) (*models.Transaction, error) {
	if m.attachReceiptFn != nil {
		return m.attachReceiptFn(id, receiptImage, receiptFileName)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

func (m *mockTransactionService) FinancialSummary() (*summary.FinancialSummary, error) {
	if m.financialSummaryFn != nil {
		return m.financialSummaryFn()
	}
	return &summary.FinancialSummary{}, nil
}

func (m *mockTransactionService) MonthlySummaries() ([]summary.MonthlySummary, error) {
	if m.monthlySummariesFn != nil {
		return m.monthlySummariesFn()
	}
	return []summary.MonthlySummary{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

const testID = "d6e0ba90-1a2b-7c3d-8e4f-000000000001"

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.GetTransactions)
	r.GET("/transactions/:id", handler.GetTransaction)
	r.PUT("/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

// --- tests ---

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(amount float64, category, description, date string, txType models.TransactionType, _, _ string) (*models.Transaction, error) {
				return &models.Transaction{
					Base:        models.Base{ID: testID},
					Amount:      amount,
					Category:    category,
					Description: description,
					Date:        date,
					Type:        txType,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":42.50,"category":"Food & Dining","description":"lunch","date":"2025-06-01","type":"expense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["category"] != "Food & Dining" {
			t.Errorf("expected Food & Dining, got %v", tx["category"])
		}
		if tx["amount"].(float64) != 42.50 {
			t.Errorf("expected amount 42.50, got %v", tx["amount"])
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":10,"category":"Food & Dining","date":"June 1st","type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":10,"category":"Food & Dining","date":"2025-06-01","type":"transfer"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("passes filters through to the service", func(t *testing.T) {
		var captured services.TransactionFilter
		svc := &mockTransactionService{
			getTransactionsFn: func(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				captured = filter
				page.Defaults()
				resp := pagination.NewPageResponse([]models.Transaction{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions?type=expense&month=2025-06&category=Shopping", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Type == nil || *captured.Type != models.TransactionTypeExpense {
			t.Error("expected expense type filter to be forwarded")
		}
		if captured.Month == nil || *captured.Month != "2025-06" {
			t.Error("expected month filter to be forwarded")
		}
		if captured.Category == nil || *captured.Category != "Shopping" {
			t.Error("expected category filter to be forwarded")
		}
	})

	t.Run("returns 400 on unknown type filter", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?type=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("forwards only supplied fields", func(t *testing.T) {
		var captured services.TransactionUpdate
		svc := &mockTransactionService{
			updateTransactionFn: func(id string, update services.TransactionUpdate) (*models.Transaction, error) {
				captured = update
				return &models.Transaction{Base: models.Base{ID: id}}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/transactions/"+testID, `{"amount":99.99}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Amount == nil || *captured.Amount != 99.99 {
			t.Error("expected amount to be forwarded")
		}
		if captured.Category != nil || captured.Date != nil {
			t.Error("expected unsupplied fields to stay nil")
		}
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "PUT", "/transactions/not-a-uuid", `{"amount":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockTransactionService{
			updateTransactionFn: func(string, services.TransactionUpdate) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/transactions/"+testID, `{"amount":1}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "DELETE", "/transactions/"+testID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
