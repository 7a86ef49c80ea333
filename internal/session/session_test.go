package session_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rom943/ecommerce-template/internal/domain"
	"github.com/Rom943/ecommerce-template/internal/session"
)

func testAdmin() domain.Admin {
	return domain.Admin{
		ID:        42,
		Email:     "admin@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestIssueAndValidate(t *testing.T) {
	manager := session.NewManager("session-secret", time.Hour, false)

	token, err := manager.Issue(testAdmin())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.ID)
	require.Equal(t, "admin@example.com", claims.Email)
	require.Equal(t, "Ada", claims.FirstName)
	require.Equal(t, "admin", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := session.NewManager("secret-one", time.Hour, false).Issue(testAdmin())
	require.NoError(t, err)

	_, err = session.NewManager("secret-two", time.Hour, false).Validate(token)
	require.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := session.NewManager("session-secret", -time.Minute, false)

	token, err := manager.Issue(testAdmin())
	require.NoError(t, err)

	_, err = manager.Validate(token)
	require.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	manager := session.NewManager("session-secret", time.Hour, false)

	_, err := manager.Validate("not.a.token")
	require.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestCookieAttributes(t *testing.T) {
	manager := session.NewManager("session-secret", 2*time.Hour, true)

	cookie := manager.Cookie("token-value")
	require.Equal(t, session.CookieName, cookie.Name)
	require.Equal(t, "token-value", cookie.Value)
	require.Equal(t, int((2 * time.Hour).Seconds()), cookie.MaxAge)
	require.True(t, cookie.HttpOnly)
	require.True(t, cookie.Secure)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	cleared := manager.ClearCookie()
	require.Equal(t, session.CookieName, cleared.Name)
	require.Equal(t, -1, cleared.MaxAge)
	require.Empty(t, cleared.Value)
}
