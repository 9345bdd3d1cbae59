package service

import (
	"context"
	"errors"
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

type authUserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type sessionStorage interface {
	Set(ctx context.Context, userID int64, refreshToken string, expiration time.Duration) error
	Get(ctx context.Context, userID int64) (string, error)
	Clear(ctx context.Context, userID int64) error
}

type authSMTPClient interface {
	SendWelcomeEmail(to string, name string)
}

type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

type AuthService struct {
	userStorage authUserStorage
	sessions    sessionStorage
	smtpClient  authSMTPClient

	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userStorage authUserStorage, sessions sessionStorage, smtpClient authSMTPClient, secret string) *AuthService {
	return &AuthService{
		userStorage: userStorage,
		sessions:    sessions,
		smtpClient:  smtpClient,
		secret:      []byte(secret),
		accessTTL:   15 * time.Minute,
		refreshTTL:  7 * 24 * time.Hour,
	}
}

func (s *AuthService) Signup(ctx context.Context, input dto.Signup) (*dto.AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userStorage.Create(ctx, &entity.User{
		Email:          input.Email,
		Password:       string(hash),
		Name:           input.Name,
		Age:            input.Age,
		OnboardingType: entity.OnboardingMember,
	})
	if err != nil {
		// duplicate email is a Conflict, not an idempotent no-op
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorz.Conflict
		}
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if s.smtpClient != nil {
		go s.smtpClient.SendWelcomeEmail(user.Email, user.Name)
	}

	return &dto.AuthResult{Tokens: *tokens, Email: user.Email, UserID: user.ID}, nil
}

func (s *AuthService) Login(ctx context.Context, input dto.Login) (*dto.AuthResult, error) {
	user, err := s.userStorage.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same error as a wrong password, no user enumeration
			return nil, errorz.Unauthorized
		}
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, errorz.Unauthorized
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResult{Tokens: *tokens, Email: user.Email, UserID: user.ID}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.sessions.Clear(ctx, userID)
}

// Refresh rotates the token pair. The presented refresh token must
// match the one stored for the user, so logout invalidates it.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.ParseToken(refreshToken)
	if err != nil {
		return nil, errorz.Unauthorized
	}

	stored, err := s.sessions.Get(ctx, claims.UserID)
	if err != nil || stored != refreshToken {
		return nil, errorz.Unauthorized
	}

	return s.issueTokens(ctx, claims.UserID)
}

func (s *AuthService) ParseToken(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errorz.Unauthorized
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errorz.Unauthorized
	}
	return &claims, nil
}

func (s *AuthService) issueTokens(ctx context.Context, userID int64) (*dto.TokenPair, error) {
	access, err := s.sign(userID, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	if err = s.sessions.Set(ctx, userID, refresh, s.refreshTTL); err != nil {
		return nil, err
	}
	return &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) sign(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			// unique per token so rotation always yields a new string
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
