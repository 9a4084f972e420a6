package auth

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	pkgauth "github.com/emberoak/atelier-backend/pkg/auth"
	"github.com/emberoak/atelier-backend/pkg/config"
	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
	"github.com/emberoak/atelier-backend/pkg/logger"
	"github.com/emberoak/atelier-backend/pkg/security"
)

type stubUsers struct {
	user *models.User
}

func (s *stubUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func testJWTCfg() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "atelier-test", ExpirationMinutes: 30}
}

func testPasswordCfg() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func newTestService(t *testing.T, users userRepository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Users:  users,
		JWTCfg: testJWTCfg(),
		Logger: logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard}),
		Now:    func() time.Time { return time.Unix(1750000000, 0) },
	})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func TestLoginMintsToken(t *testing.T) {
	hash, err := security.HashPassword("correct horse battery", testPasswordCfg())
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := &models.User{
		ID:           uuid.New(),
		Name:         "Mara",
		Email:        "mara@example.com",
		PasswordHash: hash,
		Role:         enums.UserRoleAdmin,
	}
	svc := newTestService(t, &stubUsers{user: user})

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "mara@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.User.ID != user.ID || result.User.Role != enums.UserRoleAdmin {
		t.Fatalf("unexpected user %+v", result.User)
	}

	claims, err := pkgauth.ParseAccessToken(testJWTCfg(), result.Token)
	if err != nil {
		t.Fatalf("parsing minted token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected token for %s, got %s", user.ID, claims.UserID)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := security.HashPassword("correct horse battery", testPasswordCfg())
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	svc := newTestService(t, &stubUsers{user: &models.User{
		ID:           uuid.New(),
		Email:        "mara@example.com",
		PasswordHash: hash,
		Role:         enums.UserRoleAdmin,
	}})

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "mara@example.com",
		Password: "wrong",
	})
	if err == nil {
		t.Fatal("expected unauthorized")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownEmailMatchesBadPassword(t *testing.T) {
	svc := newTestService(t, &stubUsers{})

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever123",
	})
	if err == nil {
		t.Fatal("expected unauthorized")
	}
	typed := pkgerrors.As(err)
	if typed.Code() != pkgerrors.CodeUnauthorized || typed.Message() != "invalid credentials" {
		t.Fatalf("expected indistinct unauthorized error, got %v", err)
	}
}
