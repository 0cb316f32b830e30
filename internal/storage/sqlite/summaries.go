package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fachrifaul/paysheet/internal/models"
	"github.com/fachrifaul/paysheet/internal/storage"
)

// CreateSummary persists a summary and its items in a single transaction.
// Item positions record display order so enumeration is stable on read.
func (s *SQLiteStore) CreateSummary(ctx context.Context, summary *models.PaymentSummary) error {
	if summary.ID == "" {
		summary.ID = uuid.New().String()
	}
	if summary.CreatedAt == 0 {
		summary.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO summaries (id, owner_id, merchant, currency_code, created_at) VALUES (?, ?, ?, ?, ?)",
		summary.ID, summary.OwnerID, summary.Merchant, summary.CurrencyCode, summary.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert summary: %w", err)
	}

	for pos, item := range summary.Items {
		var label sql.NullString
		if item.Label != nil {
			label = sql.NullString{String: *item.Label, Valid: true}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO summary_items
				(summary_id, position, label, amount, item_type, status, recurring, interval_unit, interval_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			summary.ID, pos, label, item.Amount,
			string(item.Type), string(item.Status),
			item.Recurring, string(item.IntervalUnit), item.IntervalCount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert summary item %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSummary retrieves a summary by ID, including its items in display order.
func (s *SQLiteStore) GetSummary(ctx context.Context, id string) (*models.PaymentSummary, error) {
	summary := &models.PaymentSummary{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, merchant, currency_code, created_at FROM summaries WHERE id = ?",
		id,
	).Scan(&summary.ID, &summary.OwnerID, &summary.Merchant, &summary.CurrencyCode, &summary.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("summary %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	items, err := s.getSummaryItems(ctx, id)
	if err != nil {
		return nil, err
	}
	summary.Items = items

	return summary, nil
}

// ListSummaries returns the owner's summaries, newest first, up to limit.
func (s *SQLiteStore) ListSummaries(ctx context.Context, ownerID string, limit int) ([]*models.PaymentSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, merchant, currency_code, created_at FROM summaries WHERE owner_id = ? ORDER BY created_at DESC, id LIMIT ?",
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*models.PaymentSummary
	for rows.Next() {
		summary := &models.PaymentSummary{}
		if err := rows.Scan(&summary.ID, &summary.OwnerID, &summary.Merchant, &summary.CurrencyCode, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summaries: %w", err)
	}

	for _, summary := range summaries {
		items, err := s.getSummaryItems(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		summary.Items = items
	}

	return summaries, nil
}

// DeleteSummary removes a summary; items cascade.
func (s *SQLiteStore) DeleteSummary(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM summaries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete summary: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("summary %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// getSummaryItems loads a summary's items ordered by position.
func (s *SQLiteStore) getSummaryItems(ctx context.Context, summaryID string) ([]models.PaymentItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label, amount, item_type, status, recurring, interval_unit, interval_count
		 FROM summary_items WHERE summary_id = ? ORDER BY position`,
		summaryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary items: %w", err)
	}
	defer rows.Close()

	var items []models.PaymentItem
	for rows.Next() {
		var (
			item     models.PaymentItem
			label    sql.NullString
			itemType string
			status   string
			unit     string
		)
		if err := rows.Scan(&label, &item.Amount, &itemType, &status, &item.Recurring, &unit, &item.IntervalCount); err != nil {
			return nil, fmt.Errorf("failed to scan summary item: %w", err)
		}
		if label.Valid {
			item = item.WithLabel(label.String)
		}
		item.Type = models.PaymentItemType(itemType)
		item.Status = models.PaymentItemStatus(status)
		item.IntervalUnit = models.IntervalUnit(unit)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary items: %w", err)
	}

	return items, nil
}
