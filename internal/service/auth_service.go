package service

import (
	"context"
	"time"

	"backend/internal/apperror"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPayload is the claim set carried by a session token. UserID is the
// only field the backend relies on.
type TokenPayload struct {
	UserID string `json:"userId"`
}

// TokenResponse is the login payload: the signed token plus the session
// owner.
type TokenResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthService interface {
	SignToken(payload TokenPayload) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
	Login(ctx context.Context, email string) (*TokenResponse, error)
}

type authService struct {
	secret []byte
	ttl    time.Duration
	users  repository.UserRepository
}

func NewAuthService(secret []byte, ttl time.Duration, users repository.UserRepository) AuthService {
	return &authService{secret: secret, ttl: ttl, users: users}
}

func (s *authService) SignToken(payload TokenPayload) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": payload.UserID,
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperror.Unauthorized("Failed to sign token", err)
	}
	return signed, nil
}

// VerifyToken treats a payload missing the user identifier the same as a
// failed signature check.
func (s *authService) VerifyToken(tokenString string) (*TokenPayload, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthorized("Invalid token", nil)
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("Invalid token", nil)
	}

	return &TokenPayload{UserID: userID}, nil
}

func (s *authService) Login(ctx context.Context, email string) (*TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.From(err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid credentials", nil)
	}

	signed, err := s.SignToken(TokenPayload{UserID: user.ID.String()})
	if err != nil {
		return nil, apperror.From(err)
	}

	return &TokenResponse{Token: signed, User: user}, nil
}
