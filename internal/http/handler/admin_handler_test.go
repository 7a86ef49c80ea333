package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/config"
	"github.com/Rom943/ecommerce-template/internal/domain"
	httphandler "github.com/Rom943/ecommerce-template/internal/http/handler"
	"github.com/Rom943/ecommerce-template/internal/http/middleware"
	"github.com/Rom943/ecommerce-template/internal/password"
	"github.com/Rom943/ecommerce-template/internal/service"
	"github.com/Rom943/ecommerce-template/internal/session"
	"github.com/Rom943/ecommerce-template/internal/throttle"
)

type memoryAdminRepo struct {
	byEmail map[string]domain.Admin
}

func (r *memoryAdminRepo) GetByEmail(_ context.Context, email string) (domain.Admin, error) {
	admin, ok := r.byEmail[email]
	if !ok {
		return domain.Admin{}, pgx.ErrNoRows
	}
	return admin, nil
}

func (r *memoryAdminRepo) GetByID(_ context.Context, id int64) (domain.Admin, error) {
	for _, admin := range r.byEmail {
		if admin.ID == id {
			return admin, nil
		}
	}
	return domain.Admin{}, pgx.ErrNoRows
}

func (r *memoryAdminRepo) Create(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	r.byEmail[admin.Email] = admin
	return admin, nil
}

// loginClient drives the login endpoint while carrying cookies between
// requests, the way a browser would.
type loginClient struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newLoginRouter(t *testing.T) *loginClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)
	repo := &memoryAdminRepo{byEmail: map[string]domain.Admin{
		"admin@example.com": {ID: 9, Email: "admin@example.com", PasswordHash: hash, FirstName: "Ada", LastName: "Lovelace"},
	}}

	cfg := config.Config{
		Environment:   "development",
		CookieSecret:  "cookie-secret",
		SessionSecret: "session-secret",
		ThrottleStore: "cookie",
	}

	sessions := session.NewManager(cfg.SessionSecret, time.Hour, false)
	authSvc := service.NewAdminAuthService(repo, sessions, throttle.NewMachine(nil), zap.NewNop())
	admin := httphandler.NewAdminHandler(cfg, authSvc, nil, nil, sessions, throttle.NewCodec(cfg.CookieSecret), nil)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})
	r.POST("/api/admin/login", admin.Login)
	r.POST("/api/admin/logout", admin.Logout)
	r.GET("/api/admin/verify", middleware.AdminAuth(sessions), admin.Verify)

	return &loginClient{t: t, router: r}
}

func (c *loginClient) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	// Merge response cookies into the jar, newest value wins.
	for _, fresh := range w.Result().Cookies() {
		replaced := false
		for i, existing := range c.cookies {
			if existing.Name == fresh.Name {
				c.cookies[i] = fresh
				replaced = true
				break
			}
		}
		if !replaced {
			c.cookies = append(c.cookies, fresh)
		}
	}

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func (c *loginClient) login(email, pw string) (*httptest.ResponseRecorder, map[string]any) {
	return c.do(http.MethodPost, "/api/admin/login", gin.H{"email": email, "password": pw})
}

func TestLoginSuccess(t *testing.T) {
	client := newLoginRouter(t)

	w, body := client.login("admin@example.com", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])

	admin := body["admin"].(map[string]any)
	require.Equal(t, "9", admin["id"])
	require.Equal(t, "admin@example.com", admin["email"])
	require.Equal(t, "Ada", admin["firstName"])

	var sessionCookie *http.Cookie
	for _, cookie := range client.cookies {
		if cookie.Name == session.CookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	require.True(t, sessionCookie.HttpOnly)
}

func TestLoginInvalidCredentials(t *testing.T) {
	client := newLoginRouter(t)

	w, body := client.login("admin@example.com", "wrong")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid credentials", body["message"])

	w, body = client.login("ghost@example.com", "whatever")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid credentials", body["message"])
}

func TestLoginLockoutAfterThreeFailures(t *testing.T) {
	client := newLoginRouter(t)

	for i := 0; i < 3; i++ {
		w, _ := client.login("admin@example.com", "wrong")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// The correct password is rejected while the lockout holds.
	w, body := client.login("admin@example.com", "correct-horse")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Contains(t, body["message"], "Too many failed login attempts")
	require.Contains(t, body["message"], "10 minute(s)")
	require.NotZero(t, body["lockedUntil"])
}

func TestLoginLockoutSurvivesCookieReplay(t *testing.T) {
	client := newLoginRouter(t)

	for i := 0; i < 3; i++ {
		client.login("admin@example.com", "wrong")
	}

	// Clearing the throttle cookie resets the counter: the cookie store
	// trades that off for statelessness.
	identity := throttle.SanitizeIdentity("admin@example.com")
	var kept []*http.Cookie
	for _, cookie := range client.cookies {
		if cookie.Name != throttle.CookieName(identity) {
			kept = append(kept, cookie)
		}
	}
	client.cookies = kept

	w, _ := client.login("admin@example.com", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLoginTamperedThrottleCookieFailsOpen(t *testing.T) {
	client := newLoginRouter(t)

	identity := throttle.SanitizeIdentity("admin@example.com")
	client.cookies = append(client.cookies, &http.Cookie{
		Name:  throttle.CookieName(identity),
		Value: "deadbeef:not-valid-ciphertext",
	})

	w, _ := client.login("admin@example.com", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code, "a corrupted throttle cookie behaves like no cookie")
}

func TestLoginMissingFields(t *testing.T) {
	client := newLoginRouter(t)

	w, _ := client.do(http.MethodPost, "/api/admin/login", gin.H{"email": "admin@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongMethod(t *testing.T) {
	client := newLoginRouter(t)

	w, body := client.do(http.MethodGet, "/api/admin/login", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Equal(t, "Method not allowed", body["message"])
}

func TestVerifyRequiresSession(t *testing.T) {
	client := newLoginRouter(t)

	w, _ := client.do(http.MethodGet, "/api/admin/verify", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	client.login("admin@example.com", "correct-horse")

	w, body := client.do(http.MethodGet, "/api/admin/verify", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["authenticated"])
}

func TestLogoutClearsSession(t *testing.T) {
	client := newLoginRouter(t)
	client.login("admin@example.com", "correct-horse")

	w, body := client.do(http.MethodPost, "/api/admin/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])

	w, _ = client.do(http.MethodGet, "/api/admin/verify", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
