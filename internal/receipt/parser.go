// Package receipt turns raw text extracted from a receipt image into a
// best-effort transaction draft. It is UI convenience, not a
// correctness-bearing subsystem: the guess is prefilled into a form and the
// user confirms or corrects it. Text extraction (OCR) itself happens outside
// this package; callers pass in the recognized text.
package receipt

import (
	"regexp"
	"strconv"
	"strings"

	"fintrack/internal/models"
)

// Draft is the guessed transaction prefill for a scanned receipt.
type Draft struct {
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Type        models.TransactionType `json:"type"`
}

var (
	amountRegex   = regexp.MustCompile(`[\$€£¥₹]?\s*(\d+[.,]\d{2}|\d+)`)
	nonWordRegex  = regexp.MustCompile(`[^\w\s]`)
	multiSpaceRgx = regexp.MustCompile(`\s+`)
)

// categoryRule maps receipt keywords to a conventional expense category.
// Rules are checked in order; the first hit wins.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"restaurant", "cafe", "food"}, "Food & Dining"},
	{[]string{"gas", "fuel", "transport"}, "Transportation"},
	{[]string{"grocery", "market", "store"}, "Shopping"},
	{[]string{"pharmacy", "medical", "hospital"}, "Healthcare"},
	{[]string{"electric", "water", "utility"}, "Bills & Utilities"},
}

const fallbackCategory = "Other Expenses"

// Parse extracts a transaction draft from receipt text. The amount is the
// last money-looking token (receipts print the grand total near the bottom),
// the description comes from the leading lines, and the category is guessed
// from keywords. Receipts are always treated as expenses.
func Parse(text string) Draft {
	return Draft{
		Amount:      guessAmount(text),
		Description: guessDescription(text),
		Category:    guessCategory(text),
		Type:        models.TransactionTypeExpense,
	}
}

func guessAmount(text string) float64 {
	matches := amountRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0
	}
	raw := strings.ReplaceAll(matches[len(matches)-1][1], ",", ".")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

func guessDescription(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if len(lines) == 3 {
			break
		}
	}

	joined := nonWordRegex.ReplaceAllString(strings.Join(lines, " "), " ")
	joined = strings.TrimSpace(multiSpaceRgx.ReplaceAllString(joined, " "))
	if joined == "" {
		return "Receipt Transaction"
	}
	return joined
}

func guessCategory(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return fallbackCategory
}
