package get_notification

import (
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/notify"
)

// Notifier интерфейс центра транзиентных уведомлений
type Notifier interface {
	Current() (notify.Notification, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NotificationResponse HTTP response model
type NotificationResponse struct {
	Show    bool   `json:"show"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

type Handler struct {
	notifier Notifier
	logger   Logger
}

func NewHandler(notifier Notifier, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

// Handle GET /api/v1/notification
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	notification, ok := h.notifier.Current()
	if !ok {
		handlers.RespondJSON(w, http.StatusOK, NotificationResponse{Show: false})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NotificationResponse{
		Show:    true,
		Kind:    string(notification.Kind),
		Message: notification.Message,
	})
}
