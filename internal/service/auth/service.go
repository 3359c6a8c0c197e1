// Package auth issues and verifies seller identities. The ledger itself
// never touches credentials; it only receives the Seller this package yields.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvalderrama/ventas/internal/domain/models"
	"github.com/mvalderrama/ventas/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown phone and wrong password.
	ErrInvalidCredentials = errors.New("invalid phone or password")

	// ErrPhoneTaken rejects registering a phone number twice.
	ErrPhoneTaken = errors.New("phone number already registered")

	// ErrInvalidToken covers malformed, forged and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

const tokenTTL = 24 * time.Hour

// Claims is the JWT payload carried by seller tokens.
type Claims struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	jwt.RegisteredClaims
}

// Service authenticates sellers against the user store.
type Service struct {
	users  repository.UserRepository
	secret []byte
	logger *zap.Logger
}

// NewService wires a new auth service instance.
func NewService(users repository.UserRepository, secret string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, secret: []byte(secret), logger: logger}
}

// Register creates a seller account with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	existing, err := s.users.FindByPhone(ctx, req.Phone)
	if err != nil {
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return models.User{}, ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, models.User{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	})
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("seller registered", zap.Int("user_id", user.ID), zap.String("name", user.Name))
	return user, nil
}

// Login checks credentials and returns a signed 24h token plus the account.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (string, models.User, error) {
	user, err := s.users.FindByPhone(ctx, req.Phone)
	if err != nil {
		return "", models.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Phone:  user.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", models.User{}, fmt.Errorf("sign token: %w", err)
	}

	return token, *user, nil
}

// VerifyToken parses and validates a token, returning the seller it names.
func (s *Service) VerifyToken(tokenStr string) (models.Seller, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Seller{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return models.Seller{}, ErrInvalidToken
	}

	return models.Seller{ID: claims.UserID, Name: claims.Name}, nil
}
