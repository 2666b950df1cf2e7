package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/apperror"
	"backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuth(users *userRepoMock) AuthService {
	return NewAuthService([]byte("test-secret"), time.Hour, users)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	auth := newAuth(nil)

	signed, err := auth.SignToken(TokenPayload{UserID: "user-1"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	payload, err := auth.VerifyToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.UserID)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	auth := newAuth(nil)

	signed, err := auth.SignToken(TokenPayload{UserID: "user-1"})
	require.NoError(t, err)

	_, err = auth.VerifyToken(signed + "x")
	typed := apperror.From(err)
	assert.Equal(t, apperror.KindUnauthorized, typed.Kind)
	assert.Equal(t, "Invalid token", typed.Message)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	other := NewAuthService([]byte("other-secret"), time.Hour, nil)
	signed, err := other.SignToken(TokenPayload{UserID: "user-1"})
	require.NoError(t, err)

	_, err = newAuth(nil).VerifyToken(signed)
	assert.Equal(t, apperror.KindUnauthorized, apperror.From(err).Kind)
}

func TestVerifyRejectsMissingUserID(t *testing.T) {
	// A validly signed token without the user identifier is still invalid.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = newAuth(nil).VerifyToken(signed)
	typed := apperror.From(err)
	assert.Equal(t, apperror.KindUnauthorized, typed.Kind)
	assert.Equal(t, "Invalid token", typed.Message)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := NewAuthService([]byte("test-secret"), -time.Hour, nil)
	signed, err := expired.SignToken(TokenPayload{UserID: "user-1"})
	require.NoError(t, err)

	_, err = newAuth(nil).VerifyToken(signed)
	assert.Equal(t, apperror.KindUnauthorized, apperror.From(err).Kind)
}

func TestLoginIssuesTokenForKnownUser(t *testing.T) {
	users := new(userRepoMock)
	auth := newAuth(users)
	user := &model.User{ID: uuid.New(), Email: "ada@example.com"}
	users.On("FindByEmail", mock.Anything, "ada@example.com").Return(user, nil)

	res, err := auth.Login(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user, res.User)

	payload, err := auth.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), payload.UserID)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	users := new(userRepoMock)
	auth := newAuth(users)
	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return((*model.User)(nil), nil)

	_, err := auth.Login(context.Background(), "nobody@example.com")
	typed := apperror.From(err)
	assert.Equal(t, apperror.KindUnauthorized, typed.Kind)
	assert.Equal(t, "Invalid credentials", typed.Message)
}
