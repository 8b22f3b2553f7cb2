package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultCookieName is the cookie carrying the signed session identifier.
const DefaultCookieName = "session"

// Claims are the claims of a session token.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWT signs and verifies session identifiers.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	Exp        time.Duration // Default token lifetime
	CookieName string        // Cookie read by GetTokenFromRequest
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) { j.SecretKey = key }
}

// WithExpiration sets the default token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// WithCookieName sets the cookie name.
func WithCookieName(name string) Opt {
	return func(j *JWT) { j.CookieName = name }
}

// New creates a new JWT instance
func New(opts ...Opt) *JWT {
	j := &JWT{
		Exp:        24 * time.Hour,
		CookieName: DefaultCookieName,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token naming sessionID. A non-positive ttl uses the default lifetime.
func (j *JWT) Generate(ctx context.Context, sessionID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = j.Exp
	}
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses and verifies the token and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.SessionID == "" {
		return nil, errors.New("sid not found in token")
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token from the session cookie,
// falling back to an Authorization bearer header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(j.CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("session cookie and authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
