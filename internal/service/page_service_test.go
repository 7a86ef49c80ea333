package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/composition"
	"github.com/Rom943/ecommerce-template/internal/domain"
	"github.com/Rom943/ecommerce-template/internal/layout"
	"github.com/Rom943/ecommerce-template/internal/layouts/fitness"
	"github.com/Rom943/ecommerce-template/internal/service"
	"github.com/Rom943/ecommerce-template/internal/tenant"
)

type memoryPageRepo struct {
	pages map[string]domain.Page
	calls int
}

func pageRepoKey(tenantID int64, slug string) string {
	return fmt.Sprintf("%d/%s", tenantID, slug)
}

func (r *memoryPageRepo) GetBySlug(_ context.Context, tenantID int64, slug string) (domain.Page, error) {
	r.calls++
	page, ok := r.pages[pageRepoKey(tenantID, slug)]
	if !ok {
		return domain.Page{}, pgx.ErrNoRows
	}
	return page, nil
}

func newPageService(t *testing.T, repo *memoryPageRepo) *service.PageService {
	t.Helper()
	reg := layout.NewRegistry()
	require.NoError(t, fitness.Register(reg))
	engine := composition.NewEngine(reg, zap.NewNop())
	return service.NewPageService(repo, nil, engine, zap.NewNop())
}

func testTenantContext() *tenant.Context {
	return &tenant.Context{
		Tenant: domain.Tenant{ID: 7, Host: "shop.example.com", Layout: fitness.Name},
		Layout: fitness.Name,
	}
}

func TestRenderPageFromRepository(t *testing.T) {
	repo := &memoryPageRepo{pages: map[string]domain.Page{
		pageRepoKey(7, "home"): {
			ID:       1,
			TenantID: 7,
			Slug:     "home",
			Config:   []byte(`{"footer": {"linksSection": {"title": "Links", "links": [{"name": "About", "url": "/about"}]}}}`),
		},
	}}
	svc := newPageService(t, repo)

	html, err := svc.Render(context.Background(), testTenantContext(), "home", composition.Viewport{})
	require.NoError(t, err)
	require.Contains(t, html, "fit-footer")
	require.Contains(t, html, "About")
}

func TestRenderMissingPage(t *testing.T) {
	repo := &memoryPageRepo{pages: map[string]domain.Page{}}
	svc := newPageService(t, repo)

	_, err := svc.Render(context.Background(), testTenantContext(), "ghost", composition.Viewport{})
	require.Error(t, err)
}

func TestRenderMalformedConfig(t *testing.T) {
	repo := &memoryPageRepo{pages: map[string]domain.Page{
		pageRepoKey(7, "home"): {ID: 1, TenantID: 7, Slug: "home", Config: []byte(`{`)},
	}}
	svc := newPageService(t, repo)

	_, err := svc.Render(context.Background(), testTenantContext(), "home", composition.Viewport{})
	require.Error(t, err, "a malformed page document fails loudly")
}

func TestRenderEmptyConfig(t *testing.T) {
	repo := &memoryPageRepo{pages: map[string]domain.Page{
		pageRepoKey(7, "home"): {ID: 1, TenantID: 7, Slug: "home", Config: []byte(`{}`)},
	}}
	svc := newPageService(t, repo)

	_, err := svc.Render(context.Background(), testTenantContext(), "home", composition.Viewport{})
	require.ErrorIs(t, err, composition.ErrEmptyPageConfig)
}
