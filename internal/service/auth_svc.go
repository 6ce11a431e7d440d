package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/you/carvalueai/internal/apperr"
	"github.com/you/carvalueai/internal/domain"
	"github.com/you/carvalueai/internal/repository"
	"github.com/you/carvalueai/pkg/auth"
)

const minPasswordLen = 6

type AuthSvc struct {
	users  *repository.UserRepo
	secret []byte
	ttl    time.Duration
}

func NewAuthSvc(users *repository.UserRepo, secret []byte, ttl time.Duration) *AuthSvc {
	return &AuthSvc{users: users, secret: secret, ttl: ttl}
}

// validEmail wants an @ followed by a domain with a dot, nothing fancier.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func (s *AuthSvc) Signup(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", apperr.Validation("name, email and password are required")
	}
	if !validEmail(email) {
		return nil, "", apperr.Validation("invalid email address")
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return nil, "", apperr.Validation("password must be at least %d characters", minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:       "USR_" + uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastLogin:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperr.Conflict("email already registered")
		}
		return nil, "", err
	}

	token, err := auth.CreateToken(s.secret, u.UserID, u.Email, s.ttl)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login deliberately reports the same error for an unknown email and a
// wrong password.
func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperr.Validation("email and password are required")
	}

	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Auth("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", apperr.Auth("invalid email or password")
	}

	u.LastLogin = time.Now().UTC()
	if err := s.users.TouchLastLogin(ctx, u.UserID, u.LastLogin); err != nil {
		return nil, "", err
	}

	token, err := auth.CreateToken(s.secret, u.UserID, u.Email, s.ttl)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthSvc) Verify(token string) (*auth.Claims, error) {
	claims, err := auth.ParseValidate(s.secret, token)
	if err != nil {
		return nil, apperr.Auth("invalid or expired token")
	}
	return claims, nil
}

func (s *AuthSvc) Me(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}
