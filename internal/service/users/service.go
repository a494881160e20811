package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-MarketplaceService/internal/auth"
	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	userRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/user"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/users/models"
)

// Service сервис для работы с пользователями: регистрация, вход, профиль
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя и сразу выдает токен доступа
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         domain.UserRole(req.Role),
		Profile:      req.Profile.ToDomainProfile(),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email already taken: %s", user.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", user.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user created id=%s, role=%s", created.ID, created.Role)

	return s.authResponse(created)
}

// Login проверяет учетные данные и выдает токен доступа.
// Не найденный email и неверный пароль возвращают одну и ту же ошибку.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		s.logger.Warn("Login: wrong password for user=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user authenticated id=%s, role=%s", user.ID, user.Role)

	return s.authResponse(user)
}

// GetProfile получает профиль пользователя по ID
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user id=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainUser(user)
	return &resp, nil
}

func (s *Service) authResponse(user *domain.User) (*models.AuthResponse, error) {
	token, err := s.tokens.MakeToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("authResponse: failed to issue token for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		User:        models.FromDomainUser(user),
	}, nil
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if !domain.UserRole(req.Role).IsValid() {
		return fmt.Errorf("%w: role must be %q or %q", ErrInvalidInput, domain.RoleCustomer, domain.RoleProvider)
	}
	if strings.TrimSpace(req.Profile.FirstName) == "" || strings.TrimSpace(req.Profile.LastName) == "" {
		return fmt.Errorf("%w: first name and last name are required", ErrInvalidInput)
	}
	return nil
}
