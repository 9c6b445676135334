package services

import (
	"context"
	"strings"
	"time"

	"carhub/config"
	"carhub/internal/domain/user"
	"carhub/internal/repository"
	carhub_errors "carhub/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Hour,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResult struct {
	Token string
	User  UserInfo
}

type AccessClaims struct {
	UserID string `json:"sub"`
	jwt.RegisteredClaims
}

// Register creates the account with a hashed password and issues a token
// for the fresh account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return "", carhub_errors.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return "", err
	}

	return s.newAccessToken(newUser.ID)
}

// Login verifies the credentials and issues a fresh token. Unknown email and
// wrong password are indistinguishable to the caller on purpose.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	if in.Email == "" || in.Password == "" {
		return LoginResult{}, carhub_errors.ErrInvalidInput
	}

	u, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return LoginResult{}, carhub_errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return LoginResult{}, carhub_errors.ErrInvalidCredentials
	}

	token, err := s.newAccessToken(u.ID)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token: token,
		User: UserInfo{
			ID:    u.ID.String(),
			Name:  u.Name,
			Email: u.Email,
		},
	}, nil
}

// ParseAccessToken verifies the signature and expiry of a bearer token.
func (s *AuthService) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	if tokenString == "" {
		return nil, carhub_errors.ErrUnauthorized
	}
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, carhub_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, carhub_errors.ErrUnauthorized
	}
	return claims, nil
}

// GetUserByID resolves a token's embedded account id to a live account.
func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *AuthService) newAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})
	return token.SignedString(s.jwtSecret)
}
