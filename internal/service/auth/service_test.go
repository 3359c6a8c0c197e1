package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/ventas/internal/domain/models"
	"github.com/mvalderrama/ventas/internal/repository/memory"
)

const testSecret = "test-secret-F0qQnVt0m4e2v8q1"

func newTestService() *Service {
	return NewService(memory.NewUserRepository(), testSecret, nil)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()

	user, err := svc.Register(context.Background(), models.RegisterUserRequest{
		Name:     "Maria",
		Phone:    "3001234567",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NotEqual(t, "correct-horse", user.PasswordHash, "password must be stored hashed")

	token, logged, err := svc.Login(context.Background(), models.LoginRequest{
		Phone:    "3001234567",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)

	seller, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.Seller{ID: 1, Name: "Maria"}, seller)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), models.RegisterUserRequest{
		Name: "Maria", Phone: "3001234567", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), models.RegisterUserRequest{
		Name: "Ana", Phone: "3001234567", Password: "other-password",
	})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), models.RegisterUserRequest{
		Name: "Maria", Phone: "3001234567", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), models.LoginRequest{Phone: "3001234567", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), models.LoginRequest{Phone: "0000000000", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRejectsForgery(t *testing.T) {
	svc := newTestService()

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token signed with a different secret.
	other := NewService(memory.NewUserRepository(), "another-secret-entirely", nil)
	_, err = other.Register(context.Background(), models.RegisterUserRequest{
		Name: "Maria", Phone: "3001234567", Password: "correct-horse",
	})
	require.NoError(t, err)
	token, _, err := other.Login(context.Background(), models.LoginRequest{Phone: "3001234567", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
