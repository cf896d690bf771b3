package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/receipt"
)

// ReceiptHandler handles receipt text parsing requests.
type ReceiptHandler struct{}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler() *ReceiptHandler {
	return &ReceiptHandler{}
}

// ParseReceiptRequest represents the request payload for parsing receipt text.
type ParseReceiptRequest struct {
	Text string `json:"text" binding:"required"`
}

// ParseReceipt extracts a transaction draft from raw receipt text. The caller
// supplies the text; no image processing happens server-side.
func (h *ReceiptHandler) ParseReceipt(c *gin.Context) {
	var req ParseReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	draft := receipt.Parse(req.Text)

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}
