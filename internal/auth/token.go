package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"foodcourt/internal/domain"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID  int    `json:"sub_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Country string `json:"country,omitempty"`
	jwt.RegisteredClaims
}

// NewToken signs an access token for the user with HS256.
func NewToken(secret []byte, u *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  u.ID,
		Email:   u.Email,
		Role:    string(u.Role),
		Country: u.Country,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken validates the token and returns the identity it carries.
func ParseToken(secret []byte, tokenString string) (*domain.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &domain.User{
		ID:      claims.UserID,
		Email:   claims.Email,
		Role:    domain.Role(claims.Role),
		Country: claims.Country,
	}, nil
}
