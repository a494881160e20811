package users

import "errors"

var (
	// ErrEmailTaken возвращается при попытке регистрации на занятый email
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Не различаем "нет пользователя" и "неверный пароль".
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
