// Package service provides business logic layer for the auth module.
package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashevelyov/matchboard/internal/auth/model"
	"github.com/ashevelyov/matchboard/internal/auth/repository"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Service defines the interface for auth business logic operations.
type Service interface {
	// Register creates a new viewer account.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.PublicUser, error)

	// Login checks credentials and issues a bearer token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// Verify validates a bearer token and returns its claims.
	Verify(token string) (*model.Claims, error)

	// Me loads the account behind a verified token's user id.
	Me(ctx context.Context, userID string) (*model.PublicUser, error)
}

// Config holds token issuance settings.
type Config struct {
	// Secret signs and verifies tokens.
	Secret string
	// TokenTTL is how long an issued token stays valid.
	TokenTTL time.Duration
}

type service struct {
	repo   repository.Repository
	cfg    Config
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(repo repository.Repository, cfg Config, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, cfg: cfg, logger: logger}
}

// Register creates a new viewer account.
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*model.PublicUser, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, model.ErrInvalidEmail
	}
	if len(req.Password) < MinPasswordLength {
		return nil, model.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleViewer,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", user.ID)
	pub := user.Public()
	return &pub, nil
}

// Login checks credentials and issues a bearer token.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Same error as a bad password, so logins do not leak
			// which emails are registered.
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token, User: user.Public()}, nil
}

func (s *service) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// Verify validates a bearer token and returns its claims.
func (s *service) Verify(tokenString string) (*model.Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, model.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, model.ErrInvalidToken
	}

	return &model.Claims{UserID: sub, Email: email, Role: role}, nil
}

// Me loads the account behind a verified token's user id. Tokens outlive
// account changes, so this is the fresh record, not the claims snapshot.
func (s *service) Me(ctx context.Context, userID string) (*model.PublicUser, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}
