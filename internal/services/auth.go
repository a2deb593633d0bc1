package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
)

// Identity is the authenticated caller attached to a request: who they are
// and whether they carry the admin flag.
type Identity struct {
	UserID  uint
	IsAdmin bool
}

type AuthService interface {
	IssueToken(userID uint, isAdmin bool) (string, error)
	ParseToken(tokenString string) (*Identity, error)
}

type authService struct {
	log      *logger.Logger
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(log *logger.Logger, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		log:      log.With("service", "AuthService"),
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (as *authService) IssueToken(userID uint, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"admin":   isAdmin,
		"exp":     time.Now().Add(as.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(as.secret)
}

func (as *authService) ParseToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return as.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return nil, errors.New("token missing user_id")
	}
	isAdmin, _ := claims["admin"].(bool)
	return &Identity{UserID: uint(rawID), IsAdmin: isAdmin}, nil
}
