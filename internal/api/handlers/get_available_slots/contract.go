package get_available_slots

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/usecase/get_available_slots"
)

// UseCase интерфейс сценария получения доступных слотов
type UseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Error(format string, v ...interface{})
}
