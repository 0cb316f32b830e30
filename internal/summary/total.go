// Package summary assembles payment items into complete payment sheets.
//
// The core model treats amounts as opaque text. This package is the one
// place amounts are interpreted: computing an aggregate total line requires
// decimal arithmetic, done in integer cents to avoid float drift.
package summary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fachrifaul/paysheet/internal/models"
)

var (
	// ErrNoItems is returned when a total is requested for an empty sheet.
	ErrNoItems = errors.New("cannot total an empty item list")
)

// Total computes the aggregate line for the given items: amounts are summed
// as decimal cents and the result carries type total with the given label.
//
// The total's status is derived from the item statuses: if any item is still
// pending the total is pending; otherwise if any item is unknown the total
// is unknown; only when every item is final_price is the total final_price.
//
// Items must carry amounts parseable as plain decimals with at most two
// fraction digits (e.g. "99.99", "-5", "0.5"). Anything else is an error;
// the items themselves are never modified.
func Total(items []models.PaymentItem, label string) (models.PaymentItem, error) {
	if len(items) == 0 {
		return models.PaymentItem{}, ErrNoItems
	}

	var sum int64
	status := models.StatusFinalPrice
	for i, item := range items {
		cents, err := parseCents(item.Amount)
		if err != nil {
			return models.PaymentItem{}, fmt.Errorf("item %d: %w", i, err)
		}
		sum += cents

		switch item.Status {
		case models.StatusPending:
			status = models.StatusPending
		case models.StatusUnknown:
			if status != models.StatusPending {
				status = models.StatusUnknown
			}
		}
	}

	total := models.NewPaymentItem(formatCents(sum)).
		WithLabel(label).
		WithType(models.TypeTotal).
		WithStatus(status)
	return total, nil
}

// Append returns the items followed by their computed total line, leaving
// the input slice untouched.
func Append(items []models.PaymentItem, totalLabel string) ([]models.PaymentItem, error) {
	total, err := Total(items, totalLabel)
	if err != nil {
		return nil, err
	}
	out := make([]models.PaymentItem, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, total)
	return out, nil
}

// parseCents converts a decimal string like "-12.30" into cents. At most
// two fraction digits are accepted; "12.3" means 12.30.
func parseCents(amount string) (int64, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("malformed amount %q", amount)
	}
	if whole == "" {
		whole = "0"
	}

	// Only digits from here on; ParseInt would accept a second sign.
	if !isDigits(whole) {
		return 0, fmt.Errorf("malformed amount %q", amount)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", amount, err)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("amount %q must have 1 or 2 fraction digits", amount)
		}
		if !isDigits(frac) {
			return 0, fmt.Errorf("malformed amount %q", amount)
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed amount %q: %w", amount, err)
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	value := units*100 + cents
	if negative {
		value = -value
	}
	return value, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// formatCents renders cents back into the "units.hundredths" form used on
// payment sheets, e.g. -150 -> "-1.50".
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
