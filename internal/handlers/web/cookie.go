package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/KirkDiggler/joingate/internal/common/clock"
	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "joingate.sid"

// cookieCodec signs the session token into the cookie value so a forged or
// tampered cookie never reaches the session store
type cookieCodec struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func newCookieCodec(secret string, ttl time.Duration, clk clock.Clock) *cookieCodec {
	return &cookieCodec{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clk,
	}
}

// encode wraps token in an HS256 JWT, the token travels as the jti claim
func (c *cookieCodec) encode(token string) (string, error) {
	now := c.clock.Now()
	claims := jwt.RegisteredClaims{
		ID:        token,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}

	return signed, nil
}

// decode returns the session token carried by value
func (c *cookieCodec) decode(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}

	if claims.ID == "" {
		return "", ErrInvalidCookie
	}

	return claims.ID, nil
}

// read returns the session token from the request, empty when there is no
// usable cookie
func (c *cookieCodec) read(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	token, err := c.decode(cookie.Value)
	if err != nil {
		return ""
	}

	return token
}

// write sets the session cookie, refreshing its expiry
func (c *cookieCodec) write(w http.ResponseWriter, token string) error {
	value, err := c.encode(token)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	return nil
}

func (c *cookieCodec) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}
