package ports

import (
	"context"

	"github.com/senvo/shipping-api/internal/core/domain"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
