package admin

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/craftroots/craftroots-backend/pkg/auth"
	"github.com/craftroots/craftroots-backend/pkg/config"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
)

// LoginInput is the admin login payload.
type LoginInput struct {
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the minted token and its expiry back to the caller.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Name      string    `json:"name"`
}

// Service authenticates the single admin identity.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}

type service struct {
	adminCfg config.AdminConfig
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// NewService constructs the admin auth service.
func NewService(adminCfg config.AdminConfig, jwtCfg config.JWTConfig) Service {
	return &service{adminCfg: adminCfg, jwtCfg: jwtCfg, now: time.Now}
}

// Login checks the password against the configured bcrypt hash and mints a
// short-lived admin token. A wrong password and a misconfigured hash look the
// same to the caller.
func (s *service) Login(_ context.Context, input LoginInput) (*LoginResult, error) {
	if input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.adminCfg.PasswordHash), []byte(input.Password))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now()
	token, err := auth.MintAdminToken(s.jwtCfg, now, s.adminCfg.DisplayName)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint admin token")
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(s.jwtCfg.Expiration()),
		Name:      s.adminCfg.DisplayName,
	}, nil
}
