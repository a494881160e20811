package get_profile

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/users/models"
)

type UsersService interface {
	GetProfile(ctx context.Context, userID string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
