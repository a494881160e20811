package models

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Role     string         `json:"role"`
	Profile  ProfileRequest `json:"profile"`
}

// ProfileRequest профиль пользователя в запросе
type ProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// UserResponse ответ с данными пользователя.
// Хеш пароля наружу не отдается.
type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Profile   ProfileResponse `json:"profile"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ProfileResponse профиль пользователя в ответе
type ProfileResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// AuthResponse ответ с токеном доступа
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int64        `json:"expiresIn"` // секунды
	User        UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain модель в response
func FromDomainUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
		Profile: ProfileResponse{
			FirstName: user.Profile.FirstName,
			LastName:  user.Profile.LastName,
			Phone:     user.Profile.Phone,
			Address:   user.Profile.Address,
		},
		CreatedAt: user.CreatedAt,
	}
}

// ToDomainProfile конвертирует request профиль в domain модель
func (p ProfileRequest) ToDomainProfile() domain.Profile {
	return domain.Profile{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Address:   p.Address,
	}
}
