package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/minimall-next/internal/config"
	"github.com/minimall-next/internal/constants"
	"github.com/minimall-next/internal/models"
	"github.com/minimall-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	cfg := &config.Config{
		Session: config.SessionConfig{
			SecretKey:   "auth-service-test-secret-key-0123456789",
			ExpireHours: 1,
		},
	}
	return NewAuthService(cfg, repository.NewUserRepository(db)), db
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user, err := svc.Register(RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "secret",
		Role:     constants.RoleUser,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("user id should be assigned")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email should be lowercased, got %s", user.Email)
	}
	if user.PasswordHash == "secret" || user.PasswordHash == "" {
		t.Fatalf("password should be stored as hash")
	}

	logged, err := svc.Login("alice@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("login returned wrong user: %d", logged.ID)
	}

	if _, err := svc.Login("alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password should fail with ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("nobody@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email should fail with ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, err := svc.Register(RegisterInput{Name: "A", Email: "dup@example.com", Password: "x", Role: constants.RoleUser}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(RegisterInput{Name: "B", Email: "dup@example.com", Password: "y", Role: constants.RoleVendor})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, err := svc.Register(RegisterInput{Name: "A", Email: "not-an-email", Password: "x", Role: constants.RoleUser}); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected ErrEmailInvalid, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Name: "A", Email: "a@example.com", Password: " ", Role: constants.RoleUser}); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Name: "A", Email: "a@example.com", Password: "x", Role: "superuser"}); !errors.Is(err, ErrRoleInvalid) {
		t.Fatalf("expected ErrRoleInvalid, got %v", err)
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user, err := svc.Register(RegisterInput{Name: "C", Email: "c@example.com", Password: "x", Role: constants.RoleVendor})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, expiresAt, err := svc.GenerateSessionToken(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("token should expire in the future")
	}

	claims, err := ParseSessionToken(token, svc.cfg.Session.SecretKey)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleVendor {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := ParseSessionToken(token, "another-secret-key-0123456789abcdef"); err == nil {
		t.Fatalf("token signed with other key should not parse")
	}
}
