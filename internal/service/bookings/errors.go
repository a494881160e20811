package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или пользователь не является его участником
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда операция недоступна роли пользователя
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus возвращается при неизвестном значении статуса
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrStatusTransition возвращается при недопустимом переходе статуса
	ErrStatusTransition = errors.New("invalid status transition")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
