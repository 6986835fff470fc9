package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/crypto"
)

const tokenIssuer = "sagestone"

// CredentialService hashes passwords with bcrypt and signs HS256 session tokens
type CredentialService struct {
	hasher *crypto.PasswordHasher
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

type CredentialServiceConfig struct {
	JWTSecret    string
	TokenExpiry  time.Duration
	PasswordCost int
}

func NewCredentialService(cfg CredentialServiceConfig) (*CredentialService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	expiry := cfg.TokenExpiry
	if expiry <= 0 {
		expiry = 7 * 24 * time.Hour
	}
	return &CredentialService{
		hasher: crypto.NewPasswordHasher(cfg.PasswordCost),
		secret: []byte(cfg.JWTSecret),
		expiry: expiry,
		now:    time.Now,
	}, nil
}

var _ domain.CredentialService = (*CredentialService)(nil)

func (s *CredentialService) HashPassword(password string) (string, error) {
	return s.hasher.Hash(password)
}

// VerifyPassword compares against a dummy digest when digest is empty so the
// cost is the same for unknown accounts
func (s *CredentialService) VerifyPassword(password, digest string) bool {
	return s.hasher.Verify(password, digest)
}

func (s *CredentialService) TokenExpiry() time.Duration {
	return s.expiry
}

// GenerateToken signs a token carrying the user id and email
func (s *CredentialService) GenerateToken(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry and returns the claims
func (s *CredentialService) ParseToken(token string) (*domain.TokenClaims, error) {
	claims := &domain.TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, &domain.ErrUnauthorized{Message: "Invalid or expired token"}
	}
	if !parsed.Valid || claims.UserID == "" {
		return nil, &domain.ErrUnauthorized{Message: "Invalid or expired token"}
	}
	return claims, nil
}
