package get_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/api/middleware"
	"github.com/salonbook/salon-booking-service/internal/service/appointments"
)

// Handler обработчик GET /api/v1/appointments/{appointmentId}
type Handler struct {
	service AppointmentsService
	log     Logger
}

// New создает новый экземпляр обработчика
func New(service AppointmentsService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle обрабатывает запрос записи по ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		handlers.RespondBadRequest(w, "некорректный идентификатор записи")
		return
	}

	info, err := h.service.GetByID(r.Context(), appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, "запись не найдена")
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, "доступ запрещён")
		default:
			h.log.Error("get_appointment failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, info)
}
