package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/domain"
	pw "github.com/Rom943/ecommerce-template/internal/password"
	"github.com/Rom943/ecommerce-template/internal/repository"
	"github.com/Rom943/ecommerce-template/internal/session"
	"github.com/Rom943/ecommerce-template/internal/throttle"
)

// AdminAuthService authenticates back-office admins behind the login
// throttle. The throttle gate runs before any credential work so a locked
// identity never reaches the password check.
type AdminAuthService struct {
	admins   repository.AdminRepository
	sessions *session.Manager
	machine  *throttle.Machine
	logger   *zap.Logger
	tracer   trace.Tracer
}

// NewAdminAuthService wires dependencies.
func NewAdminAuthService(admins repository.AdminRepository, sessions *session.Manager, machine *throttle.Machine, logger *zap.Logger) *AdminAuthService {
	return &AdminAuthService{
		admins:   admins,
		sessions: sessions,
		machine:  machine,
		logger:   logger,
		tracer:   otel.Tracer("github.com/Rom943/ecommerce-template/internal/service"),
	}
}

// Login evaluates one login attempt. The throttle record lives in the
// supplied store, keyed by the sanitized email; every outcome rewrites it in
// a single read-modify-write.
func (s *AdminAuthService) Login(ctx context.Context, store throttle.Store, email, password string) (domain.Admin, string, error) {
	ctx, span := s.startSpan(ctx, "AdminAuthService.Login")
	defer span.End()

	if strings.TrimSpace(email) == "" || password == "" {
		return domain.Admin{}, "", newAuthError(http.StatusBadRequest, "Email and password are required")
	}

	identity := throttle.SanitizeIdentity(email)
	rec := store.Load(ctx, identity)

	if remaining, locked := s.machine.Check(rec); locked {
		minutes := throttle.RemainingMinutes(remaining)
		s.audit("admin.login.locked", "identity", identity, "level", rec.TimeoutLevel)
		return domain.Admin{}, "", &AuthError{
			Status:      http.StatusTooManyRequests,
			Message:     fmt.Sprintf("Too many failed login attempts. Please try again in %d minute(s).", minutes),
			LockedUntil: rec.TimeoutUntil,
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	admin, err := s.admins.GetByEmail(ctx, normalized)
	if err != nil {
		span.RecordError(err)
		return domain.Admin{}, "", s.failAttempt(ctx, store, identity, rec)
	}

	valid, err := pw.Verify(password, admin.PasswordHash)
	if err != nil || !valid {
		return domain.Admin{}, "", s.failAttempt(ctx, store, identity, rec)
	}

	rec = s.machine.Succeed(rec)
	if err := store.Save(ctx, identity, rec); err != nil {
		s.logger.Warn("failed to persist throttle record", zap.String("identity", identity), zap.Error(err))
	}

	token, err := s.sessions.Issue(admin)
	if err != nil {
		span.RecordError(err)
		return domain.Admin{}, "", fmt.Errorf("issue session: %w", err)
	}

	s.audit("admin.login.success", "admin_id", admin.ID)
	return admin, token, nil
}

// failAttempt advances the throttle machine for one failure and reports the
// generic credential error, never which of email or password was wrong.
func (s *AdminAuthService) failAttempt(ctx context.Context, store throttle.Store, identity string, rec throttle.Record) error {
	rec = s.machine.Fail(rec)
	if err := store.Save(ctx, identity, rec); err != nil {
		s.logger.Warn("failed to persist throttle record", zap.String("identity", identity), zap.Error(err))
	}
	s.audit("admin.login.failure", "identity", identity, "level", rec.TimeoutLevel)
	return newAuthError(http.StatusUnauthorized, "Invalid credentials")
}

// Verify validates a session token and returns its claims.
func (s *AdminAuthService) Verify(ctx context.Context, token string) (*session.Claims, error) {
	_, span := s.startSpan(ctx, "AdminAuthService.Verify")
	defer span.End()

	claims, err := s.sessions.Validate(token)
	if err != nil {
		span.RecordError(err)
		return nil, newAuthError(http.StatusUnauthorized, "Invalid or expired session")
	}
	return claims, nil
}

func (s *AdminAuthService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name)
}

func (s *AdminAuthService) audit(event string, kv ...any) {
	fields := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		fields = append(fields, zap.Any(key, kv[i+1]))
	}
	s.logger.Info(event, fields...)
}
