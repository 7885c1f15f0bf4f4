package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments service: appointment not found")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("appointments service: salon not found")

	// ErrAccessDenied возвращается при попытке доступа к чужим данным
	ErrAccessDenied = errors.New("appointments service: access denied")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	// Разрешены только переходы booked -> cancelled и booked -> completed
	ErrInvalidTransition = errors.New("appointments service: invalid status transition")

	// ErrInvalidStatus возвращается при неизвестном значении статуса
	ErrInvalidStatus = errors.New("appointments service: invalid status")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("appointments service: internal error")
)
