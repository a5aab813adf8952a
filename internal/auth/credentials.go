// Package auth implements the credential service: password hashing and
// bearer-token issuance. It is constructed from an explicit Config so nothing
// in here reads process environment.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is returned for tokens failing signature, shape or expiry
// checks. Callers treat it as an ordinary unauthenticated request, not a fault.
var ErrInvalidToken = errors.New("invalid token")

const (
	DefaultBcryptCost = 10
	DefaultTokenTTL   = 7 * 24 * time.Hour

	tokenIssuer = "charity-api"
)

// Config carries the secrets and tunables for the credential service.
type Config struct {
	JWTSecret  string
	BcryptCost int
	TokenTTL   time.Duration
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Service hashes passwords and signs bearer tokens.
type Service struct {
	secret []byte
	cost   int
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg Config) *Service {
	cost := cfg.BcryptCost
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{secret: []byte(cfg.JWTSecret), cost: cost, ttl: ttl, now: now}
}

// HashPassword returns a salted bcrypt hash. Repeated calls on the same
// plaintext yield different hashes.
func (s *Service) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored hash. Malformed
// hashes verify as false rather than erroring.
func (s *Service) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs an HS256 token for the user, valid for the configured TTL.
func (s *Service) IssueToken(userID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken returns the user ID the token was issued for, or ErrInvalidToken.
func (s *Service) VerifyToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
