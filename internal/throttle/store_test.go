package throttle_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Rom943/ecommerce-template/internal/throttle"
)

func TestCookieStoreRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	codec := throttle.NewCodec("a-cookie-secret")
	identity := throttle.SanitizeIdentity("admin@example.com")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)

	store := throttle.NewCookieStore(c, codec, false)
	rec := throttle.Record{Attempts: 2, TimeoutLevel: 1, TimeoutUntil: 12345}
	require.NoError(t, store.Save(context.Background(), identity, rec))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	require.Equal(t, throttle.CookieName(identity), cookie.Name)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, int(throttle.RecordTTL.Seconds()), cookie.MaxAge)

	// A follow-up request carrying the cookie reads the same record.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
	c2.Request.AddCookie(cookie)

	loaded := throttle.NewCookieStore(c2, codec, false).Load(context.Background(), identity)
	require.Equal(t, rec, loaded)
}

func TestCookieStoreMissingCookieIsClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)

	store := throttle.NewCookieStore(c, throttle.NewCodec("a-cookie-secret"), false)
	require.Equal(t, throttle.Record{}, store.Load(context.Background(), "admin_example_com"))
}

func TestCookieStoreTamperedCookieIsClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	identity := "admin_example_com"

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
	c.Request.AddCookie(&http.Cookie{Name: throttle.CookieName(identity), Value: "deadbeef:deadbeef"})

	store := throttle.NewCookieStore(c, throttle.NewCodec("a-cookie-secret"), false)
	require.Equal(t, throttle.Record{}, store.Load(context.Background(), identity))
}
