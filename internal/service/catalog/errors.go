package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена.
	// Также возвращается при попытке изменить чужую услугу, чтобы
	// не раскрывать факт её существования.
	ErrServiceNotFound = errors.New("service not found")

	// ErrAccessDenied возвращается, когда операция недоступна роли пользователя
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
