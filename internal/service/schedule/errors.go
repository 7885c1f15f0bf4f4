package schedule

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("schedule service: salon not found")

	// ErrAccessDenied возвращается при попытке изменить чужое расписание
	ErrAccessDenied = errors.New("schedule service: access denied")

	// ErrValidation возвращается при некорректной конфигурации расписания
	ErrValidation = errors.New("schedule service: invalid schedule config")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("schedule service: internal error")
)
