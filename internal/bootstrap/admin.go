package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/config"
	"github.com/Rom943/ecommerce-template/internal/domain"
	"github.com/Rom943/ecommerce-template/internal/password"
	"github.com/Rom943/ecommerce-template/internal/repository"
)

// EnsureAdmin creates the configured back-office admin account if missing.
func EnsureAdmin(lc fx.Lifecycle, cfg config.Config, admins repository.AdminRepository, node *snowflake.Node, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return ensureAdmin(ctx, cfg, admins, node, logger)
		},
	})
}

func ensureAdmin(ctx context.Context, cfg config.Config, admins repository.AdminRepository, node *snowflake.Node, logger *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || strings.TrimSpace(cfg.AdminPassword) == "" {
		return fmt.Errorf("admin bootstrap missing required config")
	}

	if _, err := admins.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("bootstrap lookup admin: %w", err)
	}

	hashed, err := password.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap hash password: %w", err)
	}

	admin := domain.Admin{
		ID:           node.Generate().Int64(),
		Email:        email,
		PasswordHash: hashed,
		FirstName:    "Admin",
	}

	created, err := admins.Create(ctx, admin)
	if err != nil {
		return fmt.Errorf("bootstrap create admin: %w", err)
	}

	if logger != nil {
		logger.Info("bootstrap admin created",
			zap.String("email", created.Email),
			zap.Int64("admin_id", created.ID),
		)
	}
	return nil
}
