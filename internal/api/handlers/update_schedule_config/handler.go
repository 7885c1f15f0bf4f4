package update_schedule_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/api/middleware"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/get_schedule_config"
	"github.com/salonbook/salon-booking-service/internal/service/schedule"
)

// Handler обработчик PUT /api/v1/salons/{salonId}/schedule
type Handler struct {
	service ScheduleService
	log     Logger
}

// New создает новый экземпляр обработчика
func New(service ScheduleService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle обрабатывает запрос на полную замену расписания салона
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

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, "некорректное тело запроса")
		return
	}

	cfg, err := req.ToDomain()
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	updated, err := h.service.Replace(r.Context(), salonID, userID, cfg)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSalonNotFound):
			handlers.RespondNotFound(w, "салон не найден")
		case errors.Is(err, schedule.ErrAccessDenied):
			handlers.RespondForbidden(w, "расписание может менять только владелец салона")
		case errors.Is(err, schedule.ErrValidation):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.log.Error("update_schedule_config failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, get_schedule_config.FromDomain(updated))
}
