package get_salon_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/api/middleware"
	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/internal/service/appointments"
)

// Handler обработчик GET /api/v1/salons/{salonId}/appointments
type Handler struct {
	service AppointmentsService
	log     Logger
}

// New создает новый экземпляр обработчика
func New(service AppointmentsService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle обрабатывает запрос списка записей салона
// Опциональные query-параметры date и status фильтруют выборку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, "некорректный идентификатор салона")
		return
	}

	filter := domain.SalonAppointmentsFilter{SalonID: salonID}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, "некорректный формат даты, ожидается YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.AppointmentStatus(raw)
		filter.Status = &s
	}

	infos, err := h.service.GetSalonAppointments(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrSalonNotFound):
			handlers.RespondNotFound(w, "салон не найден")
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, "записи салона доступны только владельцу")
		case errors.Is(err, appointments.ErrInvalidStatus):
			handlers.RespondBadRequest(w, "неизвестный статус")
		default:
			h.log.Error("get_salon_appointments failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, infos)
}
