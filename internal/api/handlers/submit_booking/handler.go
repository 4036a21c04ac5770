package submit_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/notify"
	submitBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgMissingSelection   = "please select an event type and a time slot"
	msgUnknownVenue       = "unknown venue"
	msgUnknownEventType   = "unknown event type"
	msgUnknownSlot        = "unknown time slot"
	msgSlotNotAvailable   = "this slot is no longer available"
)

type Handler struct {
	useCase  SubmitBookingUseCase
	notifier Notifier
	metrics  Metrics
	logger   Logger
}

func NewHandler(useCase SubmitBookingUseCase, notifier Notifier, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *submitBooking.ConflictError

		switch {
		case errors.Is(err, submitBooking.ErrMissingSelection):
			h.logger.Warn("POST /bookings - Missing selection: venue=%s", req.Venue)
			h.notifier.Show(notify.KindError, msgMissingSelection)
			handlers.RespondBadRequest(w, msgMissingSelection)

		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slot conflict: date=%s, venue=%s, slot=%s, reason=%s",
				req.Date, req.Venue, req.Slot, conflict.Availability.Reason)
			if h.metrics != nil {
				h.metrics.IncBookingConflict(conflict.Availability.Reason)
			}
			h.notifier.Show(notify.KindError, conflict.Availability.Reason)
			resp := ConflictResponse{
				Error:  msgSlotNotAvailable,
				Reason: conflict.Availability.Reason,
			}
			if conflict.Availability.ConflictingEvent != "" {
				resp.ConflictingEvent = ptr.Ptr(conflict.Availability.ConflictingEvent)
			}
			handlers.RespondJSON(w, http.StatusConflict, resp)

		case errors.Is(err, submitBooking.ErrUnknownVenue):
			h.logger.Warn("POST /bookings - Unknown venue: %s", req.Venue)
			handlers.RespondBadRequest(w, msgUnknownVenue)

		case errors.Is(err, submitBooking.ErrUnknownEventType):
			h.logger.Warn("POST /bookings - Unknown event type: %s", req.EventType)
			handlers.RespondBadRequest(w, msgUnknownEventType)

		case errors.Is(err, submitBooking.ErrUnknownSlot):
			h.logger.Warn("POST /bookings - Unknown slot: %s", req.Slot)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, submitBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: date=%s, venue=%s, error=%v",
				req.Date, req.Venue, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.IncBooking(result.Venue, result.Slot.String())
	}
	h.notifier.Show(notify.KindSuccess,
		fmt.Sprintf("Successfully booked for %s at %s!", result.EventType, result.Venue))

	h.logger.Info("POST /bookings - Booking created: date=%s, venue=%s, slot=%s, event=%s",
		result.DateKey, result.Venue, result.Slot, result.EventType)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
