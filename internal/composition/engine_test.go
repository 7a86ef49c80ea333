package composition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/composition"
	"github.com/Rom943/ecommerce-template/internal/layout"
	"github.com/Rom943/ecommerce-template/internal/layouts/art"
	"github.com/Rom943/ecommerce-template/internal/layouts/fitness"
)

func testRegistry(t *testing.T) *layout.Registry {
	t.Helper()
	reg := layout.NewRegistry()
	require.NoError(t, fitness.Register(reg))
	require.NoError(t, art.Register(reg))
	require.NoError(t, reg.VerifyAll())
	return reg
}

func testPage() *composition.PageConfig {
	return &composition.PageConfig{
		Header: &composition.HeaderConfig{
			BackgroundColor: "#101010",
			NavMenu: composition.NavMenuConfig{
				NavLinks: []composition.NavEntry{
					{Main: composition.NavLink{Link: "", Title: "Home"}},
					{
						Main: composition.NavLink{Link: "shop", Title: "Shop"},
						Sub: []composition.NavLink{
							{Link: "shop/gear", Title: "Gear", Sub: []composition.NavLink{
								{Link: "shop/gear/mats", Title: "Mats"},
							}},
						},
					},
				},
			},
			SiteLogo: composition.SiteLogoConfig{LogoURL: "/logo.png"},
		},
		HeroCarusel: &composition.HeroCaruselConfig{
			HeroSlides: []composition.HeroSlide{
				{BackgroundURL: "/hero.jpg", Title: "New season", Description: "Gear up"},
			},
		},
		Footer: &composition.FooterConfig{
			TextColor: "#eee",
			LinksSection: &composition.FooterSection{
				Title: "Links",
				Links: []composition.FooterLink{{Name: "About", URL: "/about"}},
			},
		},
	}
}

func TestRenderPageComposesSlots(t *testing.T) {
	engine := composition.NewEngine(testRegistry(t), zap.NewNop())

	html, err := engine.RenderPage(context.Background(), fitness.Name, testPage(), composition.Viewport{Width: 1280})
	require.NoError(t, err)

	require.Contains(t, html, `class="fit-header"`)
	require.Contains(t, html, `class="fit-nav"`, "desktop nav at 1280px")
	require.Contains(t, html, `class="fit-logo"`)
	require.Contains(t, html, `class="fit-hero"`)
	require.Contains(t, html, "New season")
	require.Contains(t, html, `class="fit-footer"`)
	require.Contains(t, html, "About")

	// Recursive nav depth reaches the third level.
	require.Contains(t, html, "Mats")
}

func TestRenderPageMobileNav(t *testing.T) {
	engine := composition.NewEngine(testRegistry(t), zap.NewNop())

	html, err := engine.RenderPage(context.Background(), fitness.Name, testPage(), composition.Viewport{Width: 390})
	require.NoError(t, err)
	require.Contains(t, html, `class="fit-nav-mobile"`)
	require.NotContains(t, html, "fit-nav-main", "desktop nav is absent on mobile widths")
}

func TestRenderPageUnknownWidthDefaultsToDesktop(t *testing.T) {
	engine := composition.NewEngine(testRegistry(t), zap.NewNop())

	html, err := engine.RenderPage(context.Background(), fitness.Name, testPage(), composition.Viewport{})
	require.NoError(t, err)
	require.Contains(t, html, `class="fit-nav"`)
	require.NotContains(t, html, "fit-nav-mobile")
}

func TestRenderPageSlotOverride(t *testing.T) {
	engine := composition.NewEngine(testRegistry(t), zap.NewNop())

	page := testPage()
	page.HeroCarusel.CustomLayout = art.Name

	html, err := engine.RenderPage(context.Background(), fitness.Name, page, composition.Viewport{Width: 1280})
	require.NoError(t, err)
	require.Contains(t, html, `class="fit-header"`, "non-overridden slots keep the default layout")
	require.Contains(t, html, "art-hero", "overridden slot renders the other bundle")
}

func TestRenderPageHeaderLayoutPropagates(t *testing.T) {
	engine := composition.NewEngine(testRegistry(t), zap.NewNop())

	page := testPage()
	page.Header.CustomLayout = art.Name

	html, err := engine.RenderPage(context.Background(), fitness.Name, page, composition.Viewport{Width: 1280})
	require.NoError(t, err)

	// The header override cascades to the slots nested inside it.
	require.Contains(t, html, "art-header")
	require.Contains(t, html, "art-nav")
	require.NotContains(t, html, "fit-nav")
}

func TestRenderPageUnknownOverrideFails(t *testing.T) {
	engine := composition.NewEngine(testRegistry(t), zap.NewNop())

	page := testPage()
	page.HeroCarusel.CustomLayout = "brutalist"

	_, err := engine.RenderPage(context.Background(), fitness.Name, page, composition.Viewport{Width: 1280})
	require.ErrorIs(t, err, layout.ErrUnknownLayout)
}

func TestRenderPageEmptySlidesRenderNothing(t *testing.T) {
	engine := composition.NewEngine(testRegistry(t), zap.NewNop())

	page := &composition.PageConfig{
		HeroCarusel: &composition.HeroCaruselConfig{HeroSlides: nil},
	}

	html, err := engine.RenderPage(context.Background(), fitness.Name, page, composition.Viewport{})
	require.NoError(t, err)
	require.Empty(t, html, "a carousel with no slides renders empty, not an error")
}

func TestRenderPageNilConfig(t *testing.T) {
	engine := composition.NewEngine(testRegistry(t), zap.NewNop())

	_, err := engine.RenderPage(context.Background(), fitness.Name, nil, composition.Viewport{})
	require.ErrorIs(t, err, composition.ErrEmptyPageConfig)
}
