package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// CookieName is the browser cookie that carries the signed session ID.
// The backend bearer token itself never leaves the gateway.
const CookieName = "idocs_session"

// cookieClaims binds a session ID to the signing key. Only the ID travels
// in the cookie; role and token stay server-side in the Store.
type cookieClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// CookieCodec signs and verifies the session cookie value.
type CookieCodec struct {
	secret []byte
	issuer string
}

// NewCookieCodec creates a codec with the given HMAC secret.
func NewCookieCodec(secret, issuer string) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), issuer: issuer}
}

// Encode produces the signed cookie value for a session.
func (c *CookieCodec) Encode(s *Session) (string, error) {
	claims := &cookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
		SessionID: s.ID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("session.CookieCodec.Encode: %w", err)
	}
	return signed, nil
}

// Decode verifies a cookie value and returns the session ID it carries.
func (c *CookieCodec) Decode(value string) (string, error) {
	claims := &cookieClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return time.Now().UTC() }))
	if err != nil || !token.Valid || claims.SessionID == "" {
		return "", domain.ErrSessionExpired
	}
	return claims.SessionID, nil
}
