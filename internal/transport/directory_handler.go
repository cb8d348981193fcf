package transport

import (
	"net/http"
	"strconv"
	"time"

	"verzeichnis/internal/domain"
	"verzeichnis/internal/middleware"
	"verzeichnis/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SearchQuery carries the parsed /api/search query parameters
type SearchQuery struct {
	Query      string `validate:"omitempty,max=200"`
	CategoryID string `validate:"omitempty,max=100"`
	Tier       string `validate:"omitempty,oneof=basic premium"`
	Sort       string `validate:"omitempty,oneof=relevance newest popular"`
	Page       int
	PageSize   int
}

// EventsQuery carries the parsed /api/events query parameters
type EventsQuery struct {
	Limit  int
	Offset int
}

// DirectoryHandler handles HTTP requests for the public directory API
type DirectoryHandler struct {
	directory service.DirectoryService
	logger    *zap.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directory service.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
		logger:    logger,
	}
}

// RegisterRoutes registers all directory routes
func (h *DirectoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", h.Search)
		r.Get("/categories", h.Categories)
		r.Get("/events", h.UpcomingEvents)
		r.Get("/events/calendar", h.EventsCalendar)
		r.Get("/businesses/featured", h.FeaturedBusinesses)
		r.Get("/businesses/{slug}", h.BusinessBySlug)
		r.Get("/stats", h.Stats)
	})
}

// Search handles business search requests
func (h *DirectoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	req := SearchQuery{
		Query:      params.Get("q"),
		CategoryID: params.Get("category"),
		Tier:       params.Get("tier"),
		Sort:       params.Get("sort"),
	}

	var err error
	if req.Page, err = parseIntParam(params.Get("page")); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "page must be a number")
		return
	}
	if req.PageSize, err = parseIntParam(params.Get("page_size")); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "page_size must be a number")
		return
	}

	if err := middleware.ValidateStruct(&req); err != nil {
		h.logger.Debug("Search validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid search parameters")
		return
	}

	envelope := h.directory.SearchBusinesses(r.Context(), req.Query, req.CategoryID, domain.SearchFilters{
		SubscriptionTier: domain.SubscriptionTier(req.Tier),
		SortBy:           domain.SortMode(req.Sort),
		Page:             req.Page,
		PageSize:         req.PageSize,
	})

	middleware.RespondWithJSON(w, pageStatus(envelope.Success), envelope)
}

// Categories handles the category grid request
func (h *DirectoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	envelope := h.directory.CategoriesWithCounts(r.Context())
	middleware.RespondWithJSON(w, pageStatus(envelope.Success), envelope)
}

// UpcomingEvents handles the upcoming events listing
func (h *DirectoryHandler) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var req EventsQuery
	var err error
	if req.Limit, err = parseIntParam(params.Get("limit")); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "limit must be a number")
		return
	}
	if req.Offset, err = parseIntParam(params.Get("offset")); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "offset must be a number")
		return
	}

	envelope := h.directory.UpcomingEvents(r.Context(), req.Limit, req.Offset)
	middleware.RespondWithJSON(w, pageStatus(envelope.Success), envelope)
}

// EventsCalendar handles the calendar view: events within a date window
func (h *DirectoryHandler) EventsCalendar(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	from, err := parseDateParam(params.Get("from"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "from must be an RFC3339 timestamp or YYYY-MM-DD date")
		return
	}
	to, err := parseDateParam(params.Get("to"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "to must be an RFC3339 timestamp or YYYY-MM-DD date")
		return
	}
	if from.IsZero() || to.IsZero() {
		middleware.RespondWithError(w, http.StatusBadRequest, "from and to are required")
		return
	}
	if to.Before(from) {
		middleware.RespondWithError(w, http.StatusBadRequest, "to must not be before from")
		return
	}

	envelope := h.directory.EventsByDate(r.Context(), from, to)
	middleware.RespondWithJSON(w, pageStatus(envelope.Success), envelope)
}

// FeaturedBusinesses handles the homepage featured listing
func (h *DirectoryHandler) FeaturedBusinesses(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r.URL.Query().Get("limit"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "limit must be a number")
		return
	}

	envelope := h.directory.FeaturedBusinesses(r.Context(), limit)
	middleware.RespondWithJSON(w, pageStatus(envelope.Success), envelope)
}

// BusinessBySlug handles public business profile lookups
func (h *DirectoryHandler) BusinessBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	envelope := h.directory.BusinessBySlug(r.Context(), slug)

	status := http.StatusOK
	if !envelope.Success {
		if envelope.Error == service.ErrMsgBusinessNotFound {
			status = http.StatusNotFound
		} else {
			status = http.StatusServiceUnavailable
		}
	}
	middleware.RespondWithJSON(w, status, envelope)
}

// Stats handles the homepage statistics request
func (h *DirectoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	envelope := h.directory.HomepageStats(r.Context())
	middleware.RespondWithJSON(w, pageStatus(envelope.Success), envelope)
}

// pageStatus maps envelope success to an HTTP status. Failed envelopes
// keep their uniform body shape but signal unavailability transport-side.
func pageStatus(success bool) int {
	if success {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
