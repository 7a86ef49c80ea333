package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/domain"
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

// memoryStore keeps throttle records in a map, standing in for the cookie or
// Redis store.
type memoryStore struct {
	records map[string]throttle.Record
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[string]throttle.Record)}
}

func (s *memoryStore) Load(_ context.Context, identity string) throttle.Record {
	return s.records[identity]
}

func (s *memoryStore) Save(_ context.Context, identity string, rec throttle.Record) error {
	s.records[identity] = rec
	return nil
}

type authFixture struct {
	svc      *service.AdminAuthService
	store    *memoryStore
	sessions *session.Manager
	clock    *time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	repo := &memoryAdminRepo{byEmail: map[string]domain.Admin{
		"admin@example.com": {ID: 1, Email: "admin@example.com", PasswordHash: hash, FirstName: "Ada"},
	}}

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	machine := throttle.NewMachine(func() time.Time { return clock })
	sessions := session.NewManager("session-secret", time.Hour, false)

	return &authFixture{
		svc:      service.NewAdminAuthService(repo, sessions, machine, zap.NewNop()),
		store:    newMemoryStore(),
		sessions: sessions,
		clock:    &clock,
	}
}

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture(t)

	admin, token, err := f.svc.Login(context.Background(), f.store, "admin@example.com", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, int64(1), admin.ID)

	claims, err := f.sessions.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", claims.Email)
}

func TestLoginNormalizesEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.svc.Login(context.Background(), f.store, "  Admin@Example.COM ", "correct-horse")
	require.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.svc.Login(context.Background(), f.store, "admin@example.com", "wrong")
	var authErr *service.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, 401, authErr.Status)
	require.Equal(t, "Invalid credentials", authErr.Message)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.svc.Login(context.Background(), f.store, "ghost@example.com", "whatever")
	var authErr *service.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, 401, authErr.Status)
	require.Equal(t, "Invalid credentials", authErr.Message, "unknown email and wrong password are indistinguishable")

	// Failures against unknown identities still count toward their lockout.
	identity := throttle.SanitizeIdentity("ghost@example.com")
	require.Equal(t, 1, f.store.records[identity].Attempts)
}

func TestLoginMissingFields(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.svc.Login(context.Background(), f.store, "", "pw")
	var authErr *service.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, 400, authErr.Status)
}

func TestThirdFailureLocksOut(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := f.svc.Login(ctx, f.store, "admin@example.com", "wrong")
		var authErr *service.AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, 401, authErr.Status)
	}

	// The fourth attempt hits the lockout gate, even with the right password.
	_, _, err := f.svc.Login(ctx, f.store, "admin@example.com", "correct-horse")
	var authErr *service.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, 429, authErr.Status)
	require.Contains(t, authErr.Message, "10 minute(s)")
	require.NotZero(t, authErr.LockedUntil)

	// The rejected attempt does not advance the counters.
	identity := throttle.SanitizeIdentity("admin@example.com")
	rec := f.store.records[identity]
	require.Equal(t, 0, rec.Attempts)
	require.Equal(t, 1, rec.TimeoutLevel)
}

func TestLockoutExpiresAndLoginSucceeds(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, _ = f.svc.Login(ctx, f.store, "admin@example.com", "wrong")
	}

	*f.clock = f.clock.Add(11 * time.Minute)

	_, token, err := f.svc.Login(ctx, f.store, "admin@example.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Success clears attempts but keeps the escalation level.
	identity := throttle.SanitizeIdentity("admin@example.com")
	rec := f.store.records[identity]
	require.Equal(t, 0, rec.Attempts)
	require.Equal(t, 1, rec.TimeoutLevel)
}

func TestVerify(t *testing.T) {
	f := newAuthFixture(t)

	_, token, err := f.svc.Login(context.Background(), f.store, "admin@example.com", "correct-horse")
	require.NoError(t, err)

	claims, err := f.svc.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.ID)

	_, err = f.svc.Verify(context.Background(), "garbage")
	var authErr *service.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, 401, authErr.Status)
}
