package domain

// Business validation constants
const (
	MinPasswordLength = 8

	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
	MaxCategoryLength    = 50
	MaxCurrencyLength    = 3

	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours

	MaxNotesLength = 500
)

// DefaultCurrency валюта по умолчанию для новых услуг
const DefaultCurrency = "USD"
