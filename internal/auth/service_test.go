package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/tetraedu/desempenho-backend/pkg/auth"
	"github.com/tetraedu/desempenho-backend/pkg/config"
	"github.com/tetraedu/desempenho-backend/pkg/db/models"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/security"
)

type fakeUserRepo struct {
	user       *models.SellerUser
	lastLogins int
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.SellerUser, error) {
	if f.user == nil || f.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *f.user
	return &copy, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	f.lastLogins++
	return nil
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := security.HashPassword(password, config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hashed
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "desempenho-api",
		ExpirationMinutes: 30,
	}
}

func TestServiceLoginMintsTokenWithSellerName(t *testing.T) {
	password := "seller-secret"
	repo := &fakeUserRepo{user: &models.SellerUser{
		ID:           uuid.New(),
		Email:        "sabrina.lopes@example.com",
		PasswordHash: mustHashPassword(t, password),
		SellerName:   "SABRINA",
		IsActive:     true,
	}}
	cfg := testJWTConfig()

	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: cfg})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "sabrina.lopes@example.com",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgauth.ParseAccessToken(cfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.SellerName != "SABRINA" {
		t.Errorf("expected seller name on claims, got %q", claims.SellerName)
	}
	if resp.User.LastLoginAt == nil {
		t.Errorf("expected last login timestamp on user")
	}
	if repo.lastLogins != 1 {
		t.Errorf("expected one last-login update, got %d", repo.lastLogins)
	}
}

func TestServiceLoginDerivesSellerNameFromEmail(t *testing.T) {
	password := "seller-secret"
	repo := &fakeUserRepo{user: &models.SellerUser{
		ID:           uuid.New(),
		Email:        "joão.silva@example.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     true,
	}}

	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "joão.silva@example.com",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.SellerName != "JOAO" {
		t.Errorf("expected derived seller name JOAO, got %q", resp.User.SellerName)
	}
}

func TestServiceLoginRejectsWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{user: &models.SellerUser{
		ID:           uuid.New(),
		Email:        "seller@example.com",
		PasswordHash: mustHashPassword(t, "right"),
		IsActive:     true,
	}}

	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: "seller@example.com", Password: "wrong"})
	assertUnauthorized(t, err)
}

func TestServiceLoginRejectsInactiveAccount(t *testing.T) {
	password := "secret"
	repo := &fakeUserRepo{user: &models.SellerUser{
		ID:           uuid.New(),
		Email:        "inactive@example.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     false,
	}}

	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: "inactive@example.com", Password: password})
	assertUnauthorized(t, err)
}

func TestServiceLoginRejectsUnknownEmail(t *testing.T) {
	svc, err := NewService(ServiceParams{UserRepo: &fakeUserRepo{}, JWTConfig: testJWTConfig()})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "x"})
	assertUnauthorized(t, err)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
