package book_slot

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/usecase/book_slot"
)

// UseCase интерфейс сценария бронирования слота
type UseCase interface {
	Execute(ctx context.Context, req *book_slot.Request) (*book_slot.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Error(format string, v ...interface{})
}
