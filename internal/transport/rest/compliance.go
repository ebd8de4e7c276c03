package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ellishaven/careops-backend/internal/domain"
)

// complianceService defines the minimal interface needed by ComplianceHandler.
type complianceService interface {
	Complete(ctx context.Context, itemID uuid.UUID) (*domain.ComplianceItem, error)
	List(ctx context.Context, status domain.ComplianceStatus) ([]*domain.ComplianceItem, error)
}

// ComplianceHandler serves compliance item REST endpoints.
type ComplianceHandler struct {
	svc complianceService
	log *slog.Logger
}

// NewComplianceHandler creates a ComplianceHandler.
func NewComplianceHandler(svc complianceService, logger *slog.Logger) *ComplianceHandler {
	return &ComplianceHandler{svc: svc, log: logger.With("handler", "compliance")}
}

type complianceItemResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueAt       *time.Time `json:"dueAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Complete handles POST /compliance/{id}/complete.
func (h *ComplianceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	item, err := h.svc.Complete(r.Context(), itemID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toComplianceItemResponse(item))
}

// List handles GET /compliance. An optional status query parameter
// filters the caller's items.
func (h *ComplianceHandler) List(w http.ResponseWriter, r *http.Request) {
	var status domain.ComplianceStatus
	if v := r.URL.Query().Get("status"); v != "" {
		status = domain.ComplianceStatus(v)
		if !status.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
	}

	items, err := h.svc.List(r.Context(), status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]complianceItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toComplianceItemResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ComplianceHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toComplianceItemResponse(item *domain.ComplianceItem) complianceItemResponse {
	return complianceItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Status:      item.Status.String(),
		DueAt:       item.DueAt,
		CompletedAt: item.CompletedAt,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
