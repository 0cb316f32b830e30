package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fachrifaul/paysheet/internal/models"
	"github.com/fachrifaul/paysheet/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "paysheet-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()

	user := models.NewUser(email, "Test User", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestSQLiteStoreSummaries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createTestUser(t, store, "owner@example.com")

	t.Run("CreateSummary generates ID and timestamp", func(t *testing.T) {
		summary := &models.PaymentSummary{
			OwnerID:      owner.ID,
			Merchant:     "Shoe Shop",
			CurrencyCode: "EUR",
			Items: []models.PaymentItem{
				models.NewPaymentItem("99.99").WithLabel("Your new shoes").WithType(models.TypeItem).WithStatus(models.StatusFinalPrice),
				models.NewPaymentItem("102.99").WithLabel("Total").WithStatus(models.StatusFinalPrice),
			},
		}

		if err := store.CreateSummary(ctx, summary); err != nil {
			t.Fatalf("CreateSummary failed: %v", err)
		}
		if summary.ID == "" {
			t.Error("Expected summary ID to be generated")
		}
		if summary.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetSummary round-trips items in order", func(t *testing.T) {
		original := &models.PaymentSummary{
			OwnerID:      owner.ID,
			Merchant:     "Streaming Co",
			CurrencyCode: "USD",
			Items: []models.PaymentItem{
				models.NewPaymentItem("9.99").WithLabel("Plan").WithType(models.TypeItem).WithStatus(models.StatusPending).WithRecurring(models.IntervalYear, 2),
				models.NewPaymentItem("0.99").WithType(models.TypeItem), // no label
				models.NewPaymentItem("10.98").WithLabel("Total"),
			},
		}
		if err := store.CreateSummary(ctx, original); err != nil {
			t.Fatalf("CreateSummary failed: %v", err)
		}

		retrieved, err := store.GetSummary(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}

		if retrieved.Merchant != original.Merchant {
			t.Errorf("Merchant = %q, want %q", retrieved.Merchant, original.Merchant)
		}
		if retrieved.CurrencyCode != original.CurrencyCode {
			t.Errorf("CurrencyCode = %q, want %q", retrieved.CurrencyCode, original.CurrencyCode)
		}
		if retrieved.OwnerID != owner.ID {
			t.Errorf("OwnerID = %q, want %q", retrieved.OwnerID, owner.ID)
		}
		if len(retrieved.Items) != len(original.Items) {
			t.Fatalf("Items count = %d, want %d", len(retrieved.Items), len(original.Items))
		}

		first := retrieved.Items[0]
		if first.Label == nil || *first.Label != "Plan" {
			t.Errorf("first label = %v, want Plan", first.Label)
		}
		if first.Status != models.StatusPending || first.Type != models.TypeItem {
			t.Errorf("first item enums = %q/%q", first.Status, first.Type)
		}
		if !first.Recurring || first.IntervalUnit != models.IntervalYear || first.IntervalCount != 2 {
			t.Errorf("first item recurrence = %v/%q/%d", first.Recurring, first.IntervalUnit, first.IntervalCount)
		}

		if retrieved.Items[1].Label != nil {
			t.Errorf("second label = %q, want absent", *retrieved.Items[1].Label)
		}

		last := retrieved.Items[2]
		if last.Type != models.TypeTotal || last.Amount != "10.98" {
			t.Errorf("last item = %+v, want total/10.98", last)
		}
	})

	t.Run("GetSummary returns ErrNotFound for unknown ID", func(t *testing.T) {
		_, err := store.GetSummary(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListSummaries filters by owner and respects limit", func(t *testing.T) {
		other := createTestUser(t, store, "other@example.com")

		for i := 0; i < 3; i++ {
			summary := &models.PaymentSummary{
				OwnerID:      other.ID,
				Merchant:     "Merchant",
				CurrencyCode: "USD",
				CreatedAt:    int64(1000 + i),
				Items:        []models.PaymentItem{models.NewPaymentItem("1.00")},
			}
			if err := store.CreateSummary(ctx, summary); err != nil {
				t.Fatalf("CreateSummary failed: %v", err)
			}
		}

		summaries, err := store.ListSummaries(ctx, other.ID, 2)
		if err != nil {
			t.Fatalf("ListSummaries failed: %v", err)
		}
		if len(summaries) != 2 {
			t.Fatalf("got %d summaries, want 2", len(summaries))
		}
		if summaries[0].CreatedAt < summaries[1].CreatedAt {
			t.Error("summaries not sorted newest first")
		}
		for _, summary := range summaries {
			if summary.OwnerID != other.ID {
				t.Errorf("summary %s owned by %s, want %s", summary.ID, summary.OwnerID, other.ID)
			}
			if len(summary.Items) != 1 {
				t.Errorf("summary %s has %d items, want 1", summary.ID, len(summary.Items))
			}
		}
	})

	t.Run("DeleteSummary removes summary and items", func(t *testing.T) {
		summary := &models.PaymentSummary{
			OwnerID:      owner.ID,
			Merchant:     "Gone Inc",
			CurrencyCode: "USD",
			Items:        []models.PaymentItem{models.NewPaymentItem("1.00")},
		}
		if err := store.CreateSummary(ctx, summary); err != nil {
			t.Fatalf("CreateSummary failed: %v", err)
		}

		if err := store.DeleteSummary(ctx, summary.ID); err != nil {
			t.Fatalf("DeleteSummary failed: %v", err)
		}
		if _, err := store.GetSummary(ctx, summary.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err after delete = %v, want ErrNotFound", err)
		}
		if err := store.DeleteSummary(ctx, summary.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("second delete err = %v, want ErrNotFound", err)
		}
	})
}

func TestSQLiteStoreUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser and GetUserByEmail", func(t *testing.T) {
		user := createTestUser(t, store, "alice@example.com")

		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID {
			t.Errorf("got %+v, want ID %s", got, user.ID)
		}
	})

	t.Run("GetUserByID", func(t *testing.T) {
		user := createTestUser(t, store, "bob@example.com")

		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got == nil || got.Email != "bob@example.com" {
			t.Errorf("got %+v, want email bob@example.com", got)
		}
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		createTestUser(t, store, "dup@example.com")

		dup := models.NewUser("dup@example.com", "Dup", "hash")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("expected error for duplicate email, got nil")
		}
	})
}
