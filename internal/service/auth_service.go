package service

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
)

type AuthService struct {
	users  UserRepository
	secret []byte
}

func NewAuthService(users UserRepository, secret []byte) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// Login verifies credentials and issues an access token. The returned user
// never carries the password hash.
func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, Unauthorized("Invalid credentials")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, Unauthorized("Invalid credentials")
	}

	token, err := auth.NewToken(s.secret, user)
	if err != nil {
		return "", nil, err
	}

	user.Password = ""
	return token, user, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
