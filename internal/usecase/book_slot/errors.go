package book_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("book_slot: invalid date")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("book_slot: salon not found")

	// ErrSalonInactive возвращается, когда салон не принимает записи
	ErrSalonInactive = errors.New("book_slot: salon is not accepting bookings")

	// ErrInvalidSlot возвращается, когда время не является слотом расписания
	// (нерабочий день, вне рабочего окна, перерыв или не кратно шагу сетки)
	ErrInvalidSlot = errors.New("book_slot: requested time is not a valid slot")

	// ErrSlotFull возвращается, когда вместимость слота исчерпана
	ErrSlotFull = errors.New("book_slot: slot is fully booked")

	// ErrTransientFailure возвращается, когда конкурентные конфликты не дали
	// завершить бронирование; запрос можно безопасно повторить
	ErrTransientFailure = errors.New("book_slot: transient conflict, retry the request")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("book_slot: internal error")
)
