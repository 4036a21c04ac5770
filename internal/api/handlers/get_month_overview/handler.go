package get_month_overview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/service/calendar"
)

const (
	msgInvalidYear  = "invalid year"
	msgInvalidMonth = "invalid month, expected 1-12"
	msgMissingVenue = "venue query parameter is required"
	msgUnknownVenue = "unknown venue"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}?venue=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1 {
		h.logger.Warn("GET /calendar - Invalid year: %q", vars["year"])
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /calendar - Invalid month: %q", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	venue := r.URL.Query().Get("venue")
	if venue == "" {
		h.logger.Warn("GET /calendar - Missing venue parameter")
		handlers.RespondBadRequest(w, msgMissingVenue)
		return
	}

	overview, err := h.service.MonthOverview(r.Context(), year, month, venue)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrUnknownVenue):
			h.logger.Warn("GET /calendar - Unknown venue: %s", venue)
			handlers.RespondBadRequest(w, msgUnknownVenue)

		case errors.Is(err, calendar.ErrInvalidMonth):
			h.logger.Warn("GET /calendar - Invalid month: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed to build overview: year=%d, month=%d, venue=%s, error=%v",
				year, month, venue, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceModel(overview))
}
