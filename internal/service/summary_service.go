package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fachrifaul/paysheet/internal/middleware"
	"github.com/fachrifaul/paysheet/internal/models"
	"github.com/fachrifaul/paysheet/internal/storage"
	"github.com/fachrifaul/paysheet/internal/summary"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// SummaryService exposes payment summary storage and serialization over HTTP.
// All handlers require an authenticated user in the request context.
type SummaryService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewSummaryService creates a new SummaryService with the given storage backend.
func NewSummaryService(store storage.Store, logger *slog.Logger) *SummaryService {
	return &SummaryService{store: store, logger: logger}
}

// itemRequest mirrors the sheet line shape. Absent fields take the model
// defaults; intervalCount is a pointer so an explicit zero survives.
type itemRequest struct {
	Label         *string `json:"label"`
	Amount        *string `json:"amount"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	Recurring     bool    `json:"recurring"`
	IntervalUnit  string  `json:"intervalUnit"`
	IntervalCount *int    `json:"intervalCount"`
}

type createSummaryRequest struct {
	Merchant     string        `json:"merchant"`
	CurrencyCode string        `json:"currencyCode"`
	Items        []itemRequest `json:"items"`

	// AppendTotal asks the service to compute and append a total line from
	// the item amounts; TotalLabel is its display label.
	AppendTotal bool   `json:"appendTotal"`
	TotalLabel  string `json:"totalLabel"`
}

type summaryResponse struct {
	ID           string           `json:"id"`
	Merchant     string           `json:"merchant"`
	CurrencyCode string           `json:"currencyCode"`
	CreatedAt    int64            `json:"createdAt"`
	Sheet        []map[string]any `json:"sheet"`
}

type listSummariesResponse struct {
	Summaries []summaryResponse `json:"summaries"`
}

// HandleCreate stores a new payment summary and returns its serialized sheet.
func (s *SummaryService) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "at least one item is required")
		return
	}

	items := make([]models.PaymentItem, 0, len(req.Items))
	for i, ir := range req.Items {
		if ir.Amount == nil {
			writeError(w, http.StatusBadRequest, "item "+strconv.Itoa(i)+": amount is required")
			return
		}

		item := models.NewPaymentItem(*ir.Amount)
		if ir.Label != nil {
			item = item.WithLabel(*ir.Label)
		}
		if ir.Type != "" {
			itemType := models.PaymentItemType(ir.Type)
			if !itemType.Valid() {
				writeError(w, http.StatusBadRequest, "item "+strconv.Itoa(i)+": unknown type "+strconv.Quote(ir.Type))
				return
			}
			item = item.WithType(itemType)
		}
		if ir.Status != "" {
			status := models.PaymentItemStatus(ir.Status)
			if !status.Valid() {
				writeError(w, http.StatusBadRequest, "item "+strconv.Itoa(i)+": unknown status "+strconv.Quote(ir.Status))
				return
			}
			item = item.WithStatus(status)
		}
		unit := models.IntervalMonth
		if ir.IntervalUnit != "" {
			unit = models.IntervalUnit(ir.IntervalUnit)
			if !unit.Valid() {
				writeError(w, http.StatusBadRequest, "item "+strconv.Itoa(i)+": unknown intervalUnit "+strconv.Quote(ir.IntervalUnit))
				return
			}
		}
		if ir.Recurring {
			count := 1
			if ir.IntervalCount != nil {
				count = *ir.IntervalCount
			}
			item = item.WithRecurring(unit, count)
		}
		items = append(items, item)
	}

	if req.AppendTotal {
		label := req.TotalLabel
		if label == "" {
			label = "Total"
		}
		withTotal, err := summary.Append(items, label)
		if err != nil {
			writeError(w, http.StatusBadRequest, "cannot compute total: "+err.Error())
			return
		}
		items = withTotal
	}

	record := &models.PaymentSummary{
		OwnerID:      middleware.GetUserID(r.Context()),
		Merchant:     req.Merchant,
		CurrencyCode: req.CurrencyCode,
		Items:        items,
	}
	if err := s.store.CreateSummary(r.Context(), record); err != nil {
		s.logger.Error("Failed to create summary", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create summary")
		return
	}

	s.logger.Info("Summary created", "summary_id", record.ID, "items", len(record.Items))
	writeJSON(w, http.StatusCreated, toSummaryResponse(record))
}

// HandleGet returns one summary with its serialized sheet.
func (s *SummaryService) HandleGet(w http.ResponseWriter, r *http.Request) {
	record, ok := s.ownedSummary(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(record))
}

// HandleList returns the caller's summaries, newest first.
func (s *SummaryService) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxListLimit)
	}

	records, err := s.store.ListSummaries(r.Context(), middleware.GetUserID(r.Context()), limit)
	if err != nil {
		s.logger.Error("Failed to list summaries", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list summaries")
		return
	}

	resp := listSummariesResponse{Summaries: make([]summaryResponse, 0, len(records))}
	for _, record := range records {
		resp.Summaries = append(resp.Summaries, toSummaryResponse(record))
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete removes one of the caller's summaries.
func (s *SummaryService) HandleDelete(w http.ResponseWriter, r *http.Request) {
	record, ok := s.ownedSummary(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteSummary(r.Context(), record.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "summary not found")
			return
		}
		s.logger.Error("Failed to delete summary", "summary_id", record.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete summary")
		return
	}

	s.logger.Info("Summary deleted", "summary_id", record.ID)
	w.WriteHeader(http.StatusNoContent)
}

// ownedSummary loads the summary from the path ID and checks it belongs to
// the caller. Foreign summaries read as not found so IDs do not leak.
func (s *SummaryService) ownedSummary(w http.ResponseWriter, r *http.Request) (*models.PaymentSummary, bool) {
	id := r.PathValue("id")

	record, err := s.store.GetSummary(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "summary not found")
			return nil, false
		}
		s.logger.Error("Failed to get summary", "summary_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get summary")
		return nil, false
	}

	if record.OwnerID != middleware.GetUserID(r.Context()) {
		writeError(w, http.StatusNotFound, "summary not found")
		return nil, false
	}

	return record, true
}

func toSummaryResponse(record *models.PaymentSummary) summaryResponse {
	return summaryResponse{
		ID:           record.ID,
		Merchant:     record.Merchant,
		CurrencyCode: record.CurrencyCode,
		CreatedAt:    record.CreatedAt,
		Sheet:        record.Sheet(),
	}
}
