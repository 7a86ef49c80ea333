// Package session issues and validates the admin console session token. The
// token is an HS256 JWT carried in an opaque httpOnly cookie; nothing outside
// this package inspects its encoding.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	gojose "github.com/go-jose/go-jose/v4"
	gojwt "github.com/go-jose/go-jose/v4/jwt"

	"github.com/Rom943/ecommerce-template/internal/domain"
)

// CookieName is the session cookie set on successful login.
const CookieName = "admin_token"

// ErrInvalidToken reports an expired, malformed or forged session token.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the JWT payload for an admin session.
type Claims struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role"`
}

// Manager signs and validates session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewManager creates a session manager. ttl controls both the token expiry
// and the cookie Max-Age; secure toggles the cookie Secure flag.
func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Issue signs a session token for the admin.
func (m *Manager) Issue(admin domain.Admin) (string, error) {
	signer, err := gojose.NewSigner(
		gojose.SigningKey{Algorithm: gojose.HS256, Key: m.secret},
		(&gojose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("new signer: %w", err)
	}

	now := time.Now().UTC()
	std := gojwt.Claims{
		Subject:  fmt.Sprintf("%d", admin.ID),
		IssuedAt: gojwt.NewNumericDate(now),
		Expiry:   gojwt.NewNumericDate(now.Add(m.ttl)),
	}
	custom := Claims{
		ID:        admin.ID,
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Role:      "admin",
	}

	token, err := gojwt.Signed(signer).Claims(std).Claims(custom).Serialize()
	if err != nil {
		return "", fmt.Errorf("serialize token: %w", err)
	}
	return token, nil
}

// Validate parses a session token and returns its claims.
func (m *Manager) Validate(token string) (*Claims, error) {
	parsed, err := gojwt.ParseSigned(token, []gojose.SignatureAlgorithm{gojose.HS256})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var std gojwt.Claims
	var custom Claims
	if err := parsed.Claims(m.secret, &std, &custom); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := std.Validate(gojwt.Expected{Time: time.Now()}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &custom, nil
}

// Cookie wraps a signed token in the session cookie.
func (m *Manager) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearCookie returns a cookie that deletes the session.
func (m *Manager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
