package models

// PaymentSummary is an ordered collection of payment items presented to the
// payment UI as one sheet. Item order is meaningful: it is the order the
// lines appear on screen, with the total conventionally last.
type PaymentSummary struct {
	// ID is the unique identifier for the summary (UUID format).
	ID string

	// OwnerID is the user that created the summary.
	OwnerID string

	// Merchant is the display name shown at the top of the payment sheet.
	Merchant string

	// CurrencyCode is the ISO 4217 code all item amounts are denominated in.
	// Like item amounts it is passed through untouched.
	CurrencyCode string

	// Items are the sheet lines in display order.
	Items []PaymentItem

	// CreatedAt is the Unix timestamp when the summary was created.
	CreatedAt int64
}

// Sheet serializes every item, in display order, into the generic shape the
// payment UI consumes. Like PaymentItem.ToMap it is pure and cannot fail.
func (s *PaymentSummary) Sheet() []map[string]any {
	sheet := make([]map[string]any, 0, len(s.Items))
	for _, item := range s.Items {
		sheet = append(sheet, item.ToMap())
	}
	return sheet
}
