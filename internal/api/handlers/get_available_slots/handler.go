package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/domain"
	uc "github.com/salonbook/salon-booking-service/internal/usecase/get_available_slots"
)

// Handler обработчик GET /api/v1/salons/{salonId}/available-slots
type Handler struct {
	useCase UseCase
	log     Logger
}

// New создает новый экземпляр обработчика
func New(useCase UseCase, log Logger) *Handler {
	return &Handler{useCase: useCase, log: log}
}

// Handle обрабатывает запрос доступных слотов на дату
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, "некорректный идентификатор салона")
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, "параметр date обязателен")
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		handlers.RespondBadRequest(w, "некорректный формат даты, ожидается YYYY-MM-DD")
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &uc.Request{
		SalonID: salonID,
		Date:    date,
	})

	if err != nil {
		switch {
		case errors.Is(err, uc.ErrSalonNotFound):
			handlers.RespondNotFound(w, "салон не найден")
		case errors.Is(err, uc.ErrInvalidDate), errors.Is(err, uc.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.log.Error("get_available_slots failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(resp))
}
