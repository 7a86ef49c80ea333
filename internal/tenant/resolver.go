package tenant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/domain"
	"github.com/Rom943/ecommerce-template/internal/repository"
)

// Context stores resolved tenant metadata used throughout the request
// lifecycle. Layout is the tenant's default layout bundle and is immutable
// while the request is served.
type Context struct {
	Tenant domain.Tenant
	Layout string
}

// Resolver loads tenant metadata from the repository.
type Resolver struct {
	repo          repository.TenantRepository
	defaultLayout string
}

// NewResolver creates a tenant resolver. defaultLayout backs tenants with no
// layout assigned.
func NewResolver(repo repository.TenantRepository, defaultLayout string) *Resolver {
	return &Resolver{repo: repo, defaultLayout: defaultLayout}
}

// Resolve loads tenant information from the request host.
func (r *Resolver) Resolve(ctx context.Context, host string) (*Context, error) {
	cleaned := strings.ToLower(strings.TrimSpace(host))
	if cleaned == "" {
		zap.L().Warn("tenant resolver received empty host")
		return nil, fmt.Errorf("resolve tenant: empty host")
	}

	row, err := r.repo.GetByHost(ctx, cleaned)
	if err != nil {
		zap.L().Error("failed to resolve tenant", zap.String("host", cleaned), zap.Error(err))
		return nil, fmt.Errorf("resolve tenant: %w", err)
	}

	return r.buildContext(row), nil
}

// ResolveBySlug loads tenant information using the tenant slug header.
func (r *Resolver) ResolveBySlug(ctx context.Context, slug string) (*Context, error) {
	cleaned := strings.ToLower(strings.TrimSpace(slug))
	if cleaned == "" {
		zap.L().Warn("tenant resolver received empty slug")
		return nil, fmt.Errorf("resolve tenant: empty slug")
	}

	row, err := r.repo.GetBySlug(ctx, cleaned)
	if err != nil {
		zap.L().Error("failed to resolve tenant by slug", zap.String("slug", cleaned), zap.Error(err))
		return nil, fmt.Errorf("resolve tenant by slug: %w", err)
	}

	return r.buildContext(row), nil
}

func (r *Resolver) buildContext(row domain.Tenant) *Context {
	layout := row.Layout
	if layout == "" {
		layout = r.defaultLayout
	}
	zap.L().Debug("tenant context resolved", zap.String("host", row.Host), zap.Int64("tenant_id", row.ID), zap.String("layout", layout))
	return &Context{Tenant: row, Layout: layout}
}
