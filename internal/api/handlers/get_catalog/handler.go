package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CatalogResponse HTTP response model: фиксированные наборы, из которых
// UI строит форму бронирования
type CatalogResponse struct {
	Venues     []string   `json:"venues"`
	EventTypes []string   `json:"eventTypes"`
	Slots      []SlotInfo `json:"slots"`
}

// SlotInfo слот с его ценовым множителем
type SlotInfo struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type Handler struct {
	catalog   domain.Catalog
	priceList domain.PriceList
	logger    Logger
}

func NewHandler(catalog domain.Catalog, priceList domain.PriceList, logger Logger) *Handler {
	return &Handler{
		catalog:   catalog,
		priceList: priceList,
		logger:    logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := make([]SlotInfo, 0, len(domain.Slots))
	for _, slot := range domain.Slots {
		multiplier, ok := h.priceList.Multipliers[slot]
		if !ok {
			multiplier = 1
		}
		slots = append(slots, SlotInfo{
			Name:       slot.String(),
			Multiplier: multiplier,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, CatalogResponse{
		Venues:     h.catalog.Venues,
		EventTypes: h.catalog.EventTypes,
		Slots:      slots,
	})
}
