package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/api/middleware"
	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/internal/service/appointments"
)

// Handler обработчик PATCH /api/v1/appointments/{appointmentId}/status
type Handler struct {
	service AppointmentsService
	log     Logger
}

// New создает новый экземпляр обработчика
func New(service AppointmentsService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle обрабатывает запрос на смену статуса записи
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

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, "некорректное тело запроса")
		return
	}

	info, err := h.service.UpdateStatus(r.Context(), appointmentID, userID, domain.AppointmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, "запись не найдена")
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, "менять статус может только владелец салона")
		case errors.Is(err, appointments.ErrInvalidStatus):
			handlers.RespondBadRequest(w, "неизвестный статус")
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondBadRequest(w, "недопустимая смена статуса")
		default:
			h.log.Error("update_appointment_status failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, info)
}
