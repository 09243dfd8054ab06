package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/senvo/shipping-api/internal/core/domain"
)

type stubAuthRepo struct {
	byEmail map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.byEmail[user.Email] = &clone
	return &clone, nil
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", 0)

	user, err := svc.Register(context.Background(), "ops@senvo.dev", "hunter22", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password must be hashed")
	}

	token, logged, err := svc.Login(context.Background(), "ops@senvo.dev", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Email != "ops@senvo.dev" {
		t.Errorf("unexpected user: %+v", logged)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must parse with the signing secret: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Errorf("expected role claim %q, got %v", domain.RoleAdmin, claims["role"])
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", 0)

	_, err := svc.Register(context.Background(), "x@y.z", "pw", "superuser")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", 0)

	if _, err := svc.Register(context.Background(), "x@y.z", "right", domain.RoleClient); err != nil {
		t.Fatal(err)
	}

	_, _, err := svc.Login(context.Background(), "x@y.z", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", 0)

	_, _, err := svc.Login(context.Background(), "ghost@y.z", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
