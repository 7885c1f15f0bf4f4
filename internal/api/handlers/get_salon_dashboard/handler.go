package get_salon_dashboard

import (
	"net/http"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/api/middleware"
)

// Handler обработчик GET /api/v1/owner/dashboard
type Handler struct {
	service AppointmentsService
	log     Logger
}

// New создает новый экземпляр обработчика
func New(service AppointmentsService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle обрабатывает запрос сводки по салонам владельца
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	dashboard, err := h.service.GetSalonDashboard(r.Context(), userID)
	if err != nil {
		h.log.Error("get_salon_dashboard failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
