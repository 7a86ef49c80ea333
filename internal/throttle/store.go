package throttle

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RecordTTL is how long a throttle record survives in its storage medium,
// independent of the lockout level.
const RecordTTL = 24 * time.Hour

// Store persists throttle records per identity. Load fails open: a missing
// or unreadable record is the Clear state, never an error the caller sees.
type Store interface {
	Load(ctx context.Context, identity string) Record
	Save(ctx context.Context, identity string, rec Record) error
}

// CookieStore keeps the record in an encrypted client-side cookie, one per
// sanitized identity. It is request-scoped: the client is the sole transport,
// so each request performs a single read-modify-write with no shared state.
type CookieStore struct {
	c      *gin.Context
	codec  *Codec
	secure bool
}

var _ Store = (*CookieStore)(nil)

// NewCookieStore binds a store to one request.
func NewCookieStore(c *gin.Context, codec *Codec, secure bool) *CookieStore {
	return &CookieStore{c: c, codec: codec, secure: secure}
}

// Load reads and decrypts the identity's throttle cookie.
func (s *CookieStore) Load(_ context.Context, identity string) Record {
	value, err := s.c.Cookie(CookieName(identity))
	if err != nil {
		return Record{}
	}
	rec, _ := s.codec.Decrypt(value)
	return rec
}

// Save encrypts the record and sets the response cookie with a fixed 24-hour
// expiry regardless of the lockout level.
func (s *CookieStore) Save(_ context.Context, identity string, rec Record) error {
	value, err := s.codec.Encrypt(rec)
	if err != nil {
		return err
	}
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     CookieName(identity),
		Value:    value,
		Path:     "/",
		MaxAge:   int(RecordTTL / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}
