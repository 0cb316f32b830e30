package models

// PaymentItemStatus tells the payment UI whether an item's amount is settled.
// The constant values are the canonical serialized form.
type PaymentItemStatus string

const (
	// StatusUnknown is the fallback when a status has not been determined.
	StatusUnknown PaymentItemStatus = "unknown"

	// StatusPending marks an amount that may still change, e.g. in response
	// to a user selection made later in the flow.
	StatusPending PaymentItemStatus = "pending"

	// StatusFinalPrice marks an amount that is fixed and will not change.
	StatusFinalPrice PaymentItemStatus = "final_price"
)

// Valid reports whether s is one of the defined status variants.
func (s PaymentItemStatus) Valid() bool {
	switch s {
	case StatusUnknown, StatusPending, StatusFinalPrice:
		return true
	}
	return false
}

// PaymentItemType distinguishes a regular summary line from the total line.
type PaymentItemType string

const (
	// TypeItem is a regular line item on the sheet.
	TypeItem PaymentItemType = "item"

	// TypeTotal is the aggregate amount due.
	TypeTotal PaymentItemType = "total"
)

// Valid reports whether t is one of the defined type variants.
func (t PaymentItemType) Valid() bool {
	switch t {
	case TypeItem, TypeTotal:
		return true
	}
	return false
}

// IntervalUnit is the calendar unit used to express a recurring-payment
// interval. Combined with an interval count it yields a cadence, e.g.
// unit=month, count=3 means every three months.
type IntervalUnit string

const (
	IntervalMinute IntervalUnit = "minute"
	IntervalHour   IntervalUnit = "hour"
	IntervalDay    IntervalUnit = "day"
	IntervalMonth  IntervalUnit = "month"
	IntervalYear   IntervalUnit = "year"
)

// Valid reports whether u is one of the defined interval units.
func (u IntervalUnit) Valid() bool {
	switch u {
	case IntervalMinute, IntervalHour, IntervalDay, IntervalMonth, IntervalYear:
		return true
	}
	return false
}

// PaymentItem is one line in a payment summary shown by a platform payment
// sheet. It is a plain value: construct it, read it, discard it. The Amount
// is opaque formatted text (e.g. "99.99") and is never parsed or validated
// here; IntervalCount is likewise accepted as-is, including zero or negative
// values. Callers are responsible for supplying sensible values.
//
// Use NewPaymentItem and the With* methods rather than a struct literal so
// that every field carries its documented default.
type PaymentItem struct {
	// Label is the display text for the line. Nil means the line has no
	// label, which is distinct from an empty-string label.
	Label *string

	// Amount is the price as formatted text. Always present.
	Amount string

	// Type says whether this is a regular line or the total.
	Type PaymentItemType

	// Status says whether Amount is final or may still change.
	Status PaymentItemStatus

	// Recurring marks the item as part of a recurring payment.
	Recurring bool

	// IntervalUnit is the calendar unit of the recurring interval.
	IntervalUnit IntervalUnit

	// IntervalCount is how many IntervalUnits make up one interval.
	IntervalCount int
}

// NewPaymentItem returns a PaymentItem for the given amount with defaults
// applied: no label, type total, status unknown, non-recurring, monthly
// interval of one. Construction never fails.
func NewPaymentItem(amount string) PaymentItem {
	return PaymentItem{
		Amount:        amount,
		Type:          TypeTotal,
		Status:        StatusUnknown,
		Recurring:     false,
		IntervalUnit:  IntervalMonth,
		IntervalCount: 1,
	}
}

// WithLabel returns a copy of the item with the given display label.
func (p PaymentItem) WithLabel(label string) PaymentItem {
	p.Label = &label
	return p
}

// WithType returns a copy of the item with the given line type.
func (p PaymentItem) WithType(t PaymentItemType) PaymentItem {
	p.Type = t
	return p
}

// WithStatus returns a copy of the item with the given status.
func (p PaymentItem) WithStatus(s PaymentItemStatus) PaymentItem {
	p.Status = s
	return p
}

// WithRecurring returns a copy of the item marked recurring with the given
// cadence. The count is passed through unchecked.
func (p PaymentItem) WithRecurring(unit IntervalUnit, count int) PaymentItem {
	p.Recurring = true
	p.IntervalUnit = unit
	p.IntervalCount = count
	return p
}

// ToMap serializes the item into the generic key-value shape consumed by
// platform payment sheets:
//
//	{
//	  "label": string | nil,
//	  "amount": string,
//	  "type": "item" | "total",
//	  "status": "unknown" | "pending" | "final_price",
//	  "recurring": bool,
//	  "intervalUnit": "minute" | "hour" | "day" | "month" | "year",
//	  "intervalCount": int
//	}
//
// The result always has exactly these seven keys. Enums serialize through
// their canonical strings; amount, recurring and intervalCount pass through
// in their native types. ToMap is pure and cannot fail.
func (p PaymentItem) ToMap() map[string]any {
	var label any
	if p.Label != nil {
		label = *p.Label
	}
	return map[string]any{
		"label":         label,
		"amount":        p.Amount,
		"type":          string(p.Type),
		"status":        string(p.Status),
		"recurring":     p.Recurring,
		"intervalUnit":  string(p.IntervalUnit),
		"intervalCount": p.IntervalCount,
	}
}
