package paymentgw

import "errors"

var (
	// ErrChargeDeclined возвращается, когда платежный шлюз отклонил списание.
	// Причина отказа доступна в ChargeResult.FailureReason.
	ErrChargeDeclined = errors.New("paymentgw: charge declined")

	// ErrInvalidCard возвращается при невалидных данных карты до обращения к шлюзу
	ErrInvalidCard = errors.New("paymentgw: invalid card details")

	// ErrInternal возвращается при внутренних ошибках шлюза
	ErrInternal = errors.New("paymentgw: internal error")
)
