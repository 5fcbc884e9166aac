package services

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minimumKeyBytes is the effective key material HMAC-SHA256 requires.
const minimumKeyBytes = 32

const defaultTokenLifetime = time.Hour

// TokenService issues and verifies signed, time-bounded identity
// tokens. The signing key is decoded once at construction and never
// mutated afterwards.
type TokenService struct {
	key      []byte
	lifetime time.Duration
	now      func() time.Time
}

func NewTokenService(secretBase64 string, lifetime time.Duration) (*TokenService, error) {
	key, err := base64.StdEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("decode signing secret: %w", err)
	}
	if len(key) < minimumKeyBytes {
		return nil, fmt.Errorf("signing secret too short: %d bytes, need at least %d", len(key), minimumKeyBytes)
	}
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}
	return &TokenService{
		key:      key,
		lifetime: lifetime,
		now:      time.Now,
	}, nil
}

func (service *TokenService) IssueToken(subject string, extraClaims map[string]any) (string, error) {
	now := service.now()

	claims := jwt.MapClaims{}
	for name, value := range extraClaims {
		claims[name] = value
	}
	claims["sub"] = subject
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(service.lifetime))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(service.key)
}

// VerifyToken fails closed: a bad signature, malformed token, subject
// mismatch or reached expiration all yield false.
func (service *TokenService) VerifyToken(tokenString string, expectedSubject string) bool {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	token, err := parser.Parse(tokenString, service.signingKey)
	if err != nil || !token.Valid {
		return false
	}
	subject, err := token.Claims.GetSubject()
	if err != nil {
		return false
	}
	return subject != "" && subject == expectedSubject
}

// ExtractSubject returns the token's subject after checking the
// signature. Expiration is deliberately not checked here so expired but
// well-formed tokens stay inspectable.
func (service *TokenService) ExtractSubject(tokenString string) (string, error) {
	claims, err := service.extractClaims(tokenString)
	if err != nil {
		return "", err
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return "", ErrTokenInvalid
	}
	return subject, nil
}

// ExtractClaim returns the named claim, or nil when the claim is not
// present. Like ExtractSubject it verifies the signature but not the
// expiration.
func (service *TokenService) ExtractClaim(tokenString string, name string) (any, error) {
	claims, err := service.extractClaims(tokenString)
	if err != nil {
		return nil, err
	}
	return claims[name], nil
}

func (service *TokenService) extractClaims(tokenString string) (jwt.MapClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	token, err := parser.Parse(tokenString, service.signingKey)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (service *TokenService) signingKey(*jwt.Token) (any, error) {
	return service.key, nil
}
