// Package models defines the core domain models for Paysheet.
//
// # Models
//
//   - PaymentItem: One line on a payment sheet (a labeled amount, either a
//     regular item or the total), plus its recurring-payment cadence
//   - PaymentSummary: An ordered collection of payment items handed to a
//     platform payment UI as a single sheet
//   - User: Registered API client account that owns stored summaries
//
// # Design Principles
//
// 1. **Value semantics**: PaymentItem is a plain record, read-only after
// construction. Constructors supply defaults so no field is ever unset.
//
// 2. **Opaque amounts**: amounts are formatted text, passed through unparsed.
// The model never validates or interprets them; callers own correctness.
// Only the summary package parses amounts, and only to compute a total line.
//
// 3. **String enums**: item type, status, and interval unit are closed
// string-typed enums whose values are their canonical serialized form, so the
// serialization contract (ToMap) cannot drift if declaration order changes.
//
// 4. **Loosely-typed boundary**: the payment UI consumer receives a generic
// string-keyed map, not a typed struct. That shape is dictated by the
// receiving platform and is deliberately not over-typed here.
package models
