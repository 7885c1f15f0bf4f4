package book_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/salonbook/salon-booking-service/internal/api/handlers"
	"github.com/salonbook/salon-booking-service/internal/api/middleware"
	"github.com/salonbook/salon-booking-service/internal/domain"
	uc "github.com/salonbook/salon-booking-service/internal/usecase/book_slot"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Handler обработчик POST /api/v1/appointments
type Handler struct {
	useCase UseCase
	log     Logger
}

// New создает новый экземпляр обработчика
func New(useCase UseCase, log Logger) *Handler {
	return &Handler{useCase: useCase, log: log}
}

// Handle обрабатывает запрос на бронирование слота
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, "некорректное тело запроса")
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, "некорректный формат даты, ожидается YYYY-MM-DD")
		return
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		handlers.RespondBadRequest(w, "некорректный формат времени, ожидается HH:MM")
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &uc.Request{
		SalonID:   req.SalonID,
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
	})

	if err != nil {
		switch {
		case errors.Is(err, uc.ErrSlotFull):
			handlers.RespondConflict(w, "слот полностью занят")
		case errors.Is(err, uc.ErrTransientFailure):
			handlers.RespondServiceUnavailable(w, "не удалось забронировать из-за конкурентных конфликтов, повторите запрос")
		case errors.Is(err, uc.ErrSalonNotFound):
			handlers.RespondNotFound(w, "салон не найден")
		case errors.Is(err, uc.ErrSalonInactive),
			errors.Is(err, uc.ErrInvalidSlot),
			errors.Is(err, uc.ErrInvalidDate),
			errors.Is(err, uc.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.log.Error("book_slot failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, resp)
}
