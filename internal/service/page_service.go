package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/adapter/cache"
	"github.com/Rom943/ecommerce-template/internal/composition"
	"github.com/Rom943/ecommerce-template/internal/repository"
	"github.com/Rom943/ecommerce-template/internal/tenant"
)

// PageService loads a tenant's page configuration and renders it through the
// composition engine.
type PageService struct {
	pages  repository.PageRepository
	cache  *cache.PageCache
	engine *composition.Engine
	logger *zap.Logger
	tracer trace.Tracer
}

// NewPageService wires dependencies. cache may be nil, in which case every
// render reads the repository.
func NewPageService(pages repository.PageRepository, pageCache *cache.PageCache, engine *composition.Engine, logger *zap.Logger) *PageService {
	return &PageService{
		pages:  pages,
		cache:  pageCache,
		engine: engine,
		logger: logger,
		tracer: otel.Tracer("github.com/Rom943/ecommerce-template/internal/service"),
	}
}

// Render produces the page markup for one storefront request.
func (s *PageService) Render(ctx context.Context, tc *tenant.Context, slug string, vp composition.Viewport) (string, error) {
	ctx, span := s.tracer.Start(ctx, "PageService.Render")
	defer span.End()

	raw := s.loadConfig(ctx, tc.Tenant.ID, slug)
	if raw == nil {
		page, err := s.pages.GetBySlug(ctx, tc.Tenant.ID, slug)
		if err != nil {
			span.RecordError(err)
			return "", fmt.Errorf("load page %q: %w", slug, err)
		}
		raw = page.Config
		if s.cache != nil {
			if err := s.cache.Set(ctx, tc.Tenant.ID, slug, raw); err != nil {
				s.logger.Warn("page cache write failed", zap.String("slug", slug), zap.Error(err))
			}
		}
	}

	config, err := composition.ParsePageConfig(raw)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	html, err := s.engine.RenderPage(ctx, tc.Layout, config, vp)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return html, nil
}

func (s *PageService) loadConfig(ctx context.Context, tenantID int64, slug string) []byte {
	if s.cache == nil {
		return nil
	}
	return s.cache.Get(ctx, tenantID, slug)
}
