package get_salon_customers

import (
	"net/http"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/api/middleware"
)

// Handler обработчик GET /api/v1/owner/customers
type Handler struct {
	service AppointmentsService
	log     Logger
}

// New создает новый экземпляр обработчика
func New(service AppointmentsService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle обрабатывает запрос списка клиентов салонов владельца
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	customers, err := h.service.GetUniqueCustomers(r.Context(), userID)
	if err != nil {
		h.log.Error("get_salon_customers failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, customers)
}
