package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents JWT token claims issued by the external auth provider
type AuthClaims struct {
	Email                string `json:"email,omitempty" example:"jane.doe@example.com"`
	Name                 string `json:"name,omitempty" example:"Jane Doe"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// User returns the identity used in log lines: email when present, otherwise the subject
func (c *AuthClaims) User() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

// AuthService verifies bearer tokens. It never issues tokens outside of tests.
type AuthService struct {
	secret []byte
	issuer string
}

// NewAuthService creates a verifier for HS256 tokens signed with secret.
// When issuer is non-empty the iss claim must match it.
func NewAuthService(secret, issuer string) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &AuthService{secret: []byte(secret), issuer: issuer}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(30 * time.Second),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateJWT signs claims with the service secret. Used by tests and local tooling.
func (s *AuthService) GenerateJWT(subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
