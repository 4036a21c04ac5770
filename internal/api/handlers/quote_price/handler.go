package quote_price

import (
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	quotePrice "github.com/m04kA/SMC-VenueBooking/internal/usecase/quote_price"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	EventType string  `json:"eventType"`
	Slot      string  `json:"slot"`
	Amount    float64 `json:"amount"`
}

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/price?eventType=...&slot=...
// Пустые параметры допустимы: пока выбор неполный, amount равен 0.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventType := r.URL.Query().Get("eventType")
	slot := r.URL.Query().Get("slot")

	result, err := h.useCase.Execute(r.Context(), &quotePrice.Request{
		EventType: eventType,
		Slot:      domain.Slot(slot),
	})
	if err != nil {
		h.logger.Error("GET /price - Failed to quote price: eventType=%s, slot=%s, error=%v",
			eventType, slot, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, QuoteResponse{
		EventType: result.EventType,
		Slot:      result.Slot.String(),
		Amount:    result.Amount,
	})
}
