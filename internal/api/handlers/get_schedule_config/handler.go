package get_schedule_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/service/schedule"
)

// Handler обработчик GET /api/v1/salons/{salonId}/schedule
type Handler struct {
	service ScheduleService
	log     Logger
}

// New создает новый экземпляр обработчика
func New(service ScheduleService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle обрабатывает запрос конфигурации расписания салона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, "некорректный идентификатор салона")
		return
	}

	cfg, err := h.service.Get(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSalonNotFound):
			handlers.RespondNotFound(w, "салон не найден")
		default:
			h.log.Error("get_schedule_config failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(cfg))
}
