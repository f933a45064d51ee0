package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kashf-health/kashf/internal/models"
	"github.com/kashf-health/kashf/internal/repository"
	"github.com/kashf-health/kashf/internal/token"
	appErr "github.com/kashf-health/kashf/pkg/errors"
	"github.com/kashf-health/kashf/pkg/logger"
)

type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	issuer *token.Issuer
}

func NewAuthService(users repository.UserRepository, issuer *token.Issuer) AuthService {
	return &authService{users: users, issuer: issuer}
}

var _ AuthService = (*authService)(nil)

// Register hashes the password and creates the identity record. The role is
// upper-cased and constrained to the fixed enumeration; concurrent duplicate
// registrations are resolved by the email uniqueness constraint, with the
// loser surfacing as a conflict.
func (s *authService) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	r := models.NormalizeRole(role)
	if !r.Valid() {
		return nil, appErr.New(appErr.CodeInvalid, "role must be PROFESSIONAL or PATIENT")
	}

	ph, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	u := &models.User{
		Email:        email,
		PasswordHash: string(ph),
		Role:         r,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "email already registered")
		}
		return nil, err
	}

	logger.L().Info("user registered", zap.String("user_id", u.ID.String()), zap.String("role", string(u.Role)))
	return u, nil
}

// Login returns a signed bearer token. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	var u models.User
	if err := s.users.GetByEmail(ctx, email, &u); err != nil {
		return "", appErr.New(appErr.CodeUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", appErr.New(appErr.CodeUnauthorized, "invalid credentials")
	}

	tok, err := s.issuer.Issue(u.ID.String(), string(u.Role))
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}
	return tok, nil
}
