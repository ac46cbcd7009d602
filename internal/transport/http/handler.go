package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"polititrack/internal/domain"
	"polititrack/internal/export"
	"polititrack/internal/service"
)

// DirectoryService defines the query and write operations the handler
// exposes.
type DirectoryService interface {
	Search(ctx context.Context, query string) ([]domain.PoliticianSummary, error)
	List(ctx context.Context, filter domain.ListFilter) (*domain.Page, error)
	GetProfile(ctx context.Context, id int64) (*domain.PoliticianProfile, error)
	Create(ctx context.Context, in service.CreatePoliticianInput) (*domain.Politician, error)
	Update(ctx context.Context, id int64, in service.UpdatePoliticianInput) (*domain.Politician, error)
}

// AuditService defines the data-quality report operation.
type AuditService interface {
	Run(ctx context.Context) ([]domain.PoliticianDataHealth, error)
}

// Handler wires the politician endpoints to the services.
type Handler struct {
	directory DirectoryService
	audit     AuditService
	logger    *slog.Logger
}

func NewHandler(directory DirectoryService, audit AuditService, logger *slog.Logger) *Handler {
	return &Handler{
		directory: directory,
		audit:     audit,
		logger:    logger,
	}
}

// Register mounts the API endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/search", h.HandleSearch)
	r.Get("/api/politicians", h.HandleList)
	r.Post("/api/politicians", h.HandleCreate)
	r.Get("/api/politicians/{id}", h.HandleGetProfile)
	r.Patch("/api/politicians/{id}", h.HandleUpdate)
	r.Get("/api/reports/data-health", h.HandleDataHealth)
	r.Get("/api/reports/data-health.csv", h.HandleDataHealthCSV)
}

// HandleSearch handles GET /api/search?q=...
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query().Get("q")
	if err := domain.ValidateSearchQuery(q); err != nil {
		writeError(w, err)
		return
	}

	results, err := h.directory.Search(ctx, q)
	if err != nil {
		h.logError(ctx, "search failed", err, "query", q)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

// HandleList handles GET /api/politicians with pagination, sorting,
// and optional party/jurisdiction filters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseListFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := h.directory.List(ctx, filter)
	if err != nil {
		h.logError(ctx, "list failed", err, "page", filter.Page, "size", filter.Size)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleGetProfile handles GET /api/politicians/{id}.
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.directory.GetProfile(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.logError(ctx, "profile fetch failed", err, "id", id)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleCreate handles POST /api/politicians.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodeCreateRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := h.directory.Create(ctx, req)
	if err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			h.logError(ctx, "create failed", err)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, politicianResponse(p))
}

// HandleUpdate handles PATCH /api/politicians/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := decodeUpdateRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := h.directory.Update(ctx, id, req)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrEmptyUpdate) {
			h.logError(ctx, "update failed", err, "id", id)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, politicianResponse(p))
}

// HandleDataHealth handles GET /api/reports/data-health.
func (h *Handler) HandleDataHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.audit.Run(ctx)
	if err != nil {
		h.logError(ctx, "data-health report failed", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Report: report})
}

// HandleDataHealthCSV handles GET /api/reports/data-health.csv.
func (h *Handler) HandleDataHealthCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.audit.Run(ctx)
	if err != nil {
		h.logError(ctx, "data-health report failed", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="data-health.csv"`)
	if err := export.WriteHealthReportCSV(w, report); err != nil {
		h.logError(ctx, "data-health csv write failed", err)
	}
}

func (h *Handler) logError(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "request_id", RequestID(ctx), "error", err)
	h.logger.ErrorContext(ctx, msg, args...)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errBadID
	}
	return id, nil
}
