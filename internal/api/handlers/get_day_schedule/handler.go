package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	getDaySchedule "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_day_schedule"
)

const (
	msgMissingParams = "date and venue query parameters are required"
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgUnknownVenue  = "unknown venue"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?date=YYYY-MM-DD&venue=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	venue := r.URL.Query().Get("venue")

	if dateStr == "" || venue == "" {
		h.logger.Warn("GET /schedule - Missing query parameters: date=%q, venue=%q", dateStr, venue)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := domain.ParseDateKey(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		Date:  date,
		Venue: venue,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrUnknownVenue):
			h.logger.Warn("GET /schedule - Unknown venue: %s", venue)
			handlers.RespondBadRequest(w, msgUnknownVenue)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: date=%s, venue=%s, error=%v",
				dateStr, venue, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
