package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

var (
	// ErrBadToken возвращается при невалидном или просроченном токене
	ErrBadToken = errors.New("auth: invalid token")
)

// HashPassword хэширует пароль через bcrypt
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword сверяет пароль с bcrypt-хэшем
func CheckPassword(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}

// Claims полезная нагрузка access-токена: идентификатор и роль пользователя
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer выпускает и разбирает access-токены (HS256)
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer создает эмитент токенов с заданным секретом и временем жизни
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL возвращает время жизни выпускаемых токенов
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// MakeToken выпускает подписанный access-токен для пользователя
func (i *TokenIssuer) MakeToken(userID string, role domain.UserRole) (string, error) {
	c := Claims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims
func (i *TokenIssuer) ParseToken(raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// защита от подмены алгоритма подписи
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, ErrBadToken
	}

	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}

	return c, nil
}
