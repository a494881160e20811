package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceUnavailable возвращается при попытке забронировать деактивированную услугу
	ErrServiceUnavailable = errors.New("create_booking: service is not available for booking")

	// ErrAccessDenied возвращается, когда бронирование создает не клиент
	ErrAccessDenied = errors.New("create_booking: only customers can create bookings")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: scheduled time must be in the future")

	// ErrOutsideAvailability возвращается, когда интервал не попадает
	// целиком ни в одно окно доступности услуги
	ErrOutsideAvailability = errors.New("create_booking: requested time is outside service availability")

	// ErrPaymentFailed возвращается при отказе платежного шлюза.
	// Бронирование при этом сохраняется отмененным вместе с неуспешным платежом.
	ErrPaymentFailed = errors.New("create_booking: payment failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
