// Package composition walks a page configuration tree and renders each slot
// with the component the layout registry resolves for it. Propagation is
// top-down only: a slot sees its own subtree and nothing else.
package composition

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/layout"
)

// Viewport carries the client viewport measurement for one render. It is
// computed once per render tree; components never sample it themselves.
type Viewport struct {
	Width int
}

// Engine composes storefront pages from slot configurations.
type Engine struct {
	registry *layout.Registry
	logger   *zap.Logger
}

// NewEngine creates a composition engine over the given registry.
func NewEngine(registry *layout.Registry, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.L()
	}
	return &Engine{registry: registry, logger: logger}
}

// RenderPage renders the full page for defaultLayout. Slot order follows the
// original storefront: header, hero, product carousel, category carousel,
// product grid, footer. Absent subtrees are skipped; resolution failures
// abort the render.
func (e *Engine) RenderPage(ctx context.Context, defaultLayout string, page *PageConfig, vp Viewport) (string, error) {
	if page == nil {
		return "", fmt.Errorf("render page: %w", ErrEmptyPageConfig)
	}

	var sb strings.Builder

	if page.Header != nil {
		html, err := e.renderHeader(ctx, defaultLayout, page.Header, vp)
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	if page.HeroCarusel != nil {
		html, err := e.renderSlot(ctx, layout.SlotHeroCarusel, defaultLayout, page.HeroCarusel.CustomLayout, HeroCaruselProps{
			Slides:           page.HeroCarusel.HeroSlides,
			AutoPlay:         page.HeroCarusel.AutoPlay,
			AutoPlayInterval: page.HeroCarusel.AutoPlayInterval,
		})
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	if page.ProductCarusel != nil {
		html, err := e.renderSlot(ctx, layout.SlotProductCarusel, defaultLayout, page.ProductCarusel.CustomLayout, ProductCaruselProps{
			Title:                  page.ProductCarusel.Title,
			DiscountBadgeColor:     page.ProductCarusel.DiscountBadgeColor,
			DiscountBadgeTextColor: page.ProductCarusel.DiscountBadgeTextColor,
			ProductCards:           page.ProductCarusel.ProductCards,
		})
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	if page.CategoryCarusel != nil {
		html, err := e.renderSlot(ctx, layout.SlotCategorieCarusel, defaultLayout, page.CategoryCarusel.CustomLayout, CategorieCaruselProps{
			Title:  page.CategoryCarusel.Title,
			Slides: page.CategoryCarusel.CategorySlides,
		})
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	if page.ProductGrid != nil {
		html, err := e.renderSlot(ctx, layout.SlotProductGrid, defaultLayout, page.ProductGrid.CustomLayout, ProductGridProps{
			Title:                  page.ProductGrid.Title,
			DiscountBadgeColor:     page.ProductGrid.DiscountBadgeColor,
			DiscountBadgeTextColor: page.ProductGrid.DiscountBadgeTextColor,
			ProductCards:           page.ProductGrid.ProductCards,
		})
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	if page.Footer != nil {
		html, err := e.renderFooter(ctx, defaultLayout, page.Footer)
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}

	return sb.String(), nil
}

// renderHeader composes the header and the slots nested inside it. The
// header's effective layout is propagated as the default for its children;
// each child may still carry its own override.
func (e *Engine) renderHeader(ctx context.Context, defaultLayout string, header *HeaderConfig, vp Viewport) (string, error) {
	childLayout := defaultLayout
	if header.CustomLayout != "" {
		childLayout = header.CustomLayout
	}

	navSlot := layout.NavSlotForWidth(vp.Width)
	navHTML, err := e.renderSlot(ctx, navSlot, childLayout, header.NavMenu.CustomLayout, NavMenuProps{
		Links:                  header.NavMenu.NavLinks,
		Direction:              header.NavMenu.Direction,
		FontColor:              header.NavMenu.FontColor,
		SubMenuBackgroundColor: header.NavMenu.SubMenuBackgroundColor,
	})
	if err != nil {
		return "", err
	}

	logoHTML, err := e.renderSlot(ctx, layout.SlotSiteLogo, childLayout, "", SiteLogoProps{LogoURL: header.SiteLogo.LogoURL})
	if err != nil {
		return "", err
	}

	cartHTML, err := e.renderSlot(ctx, layout.SlotCart, childLayout, header.Cart.CustomLayout, CartProps{})
	if err != nil {
		return "", err
	}

	var searchHTML string
	if header.SearchBar != nil {
		searchHTML, err = e.renderSlot(ctx, layout.SlotSearchBar, childLayout, header.SearchBar.CustomLayout, SearchBarProps{})
		if err != nil {
			return "", err
		}
	}

	return e.renderSlot(ctx, layout.SlotHeader, defaultLayout, header.CustomLayout, HeaderProps{
		BackgroundColor: header.BackgroundColor,
		Position:        header.Position,
		NavMenu:         template.HTML(navHTML),
		SiteLogo:        template.HTML(logoHTML),
		Cart:            template.HTML(cartHTML),
		SearchBar:       template.HTML(searchHTML),
	})
}

func (e *Engine) renderFooter(ctx context.Context, defaultLayout string, footer *FooterConfig) (string, error) {
	var sections []FooterSection
	for _, section := range []*FooterSection{footer.SocialSection, footer.LinksSection, footer.ContactSection, footer.CategorySection} {
		if section != nil {
			sections = append(sections, *section)
		}
	}
	return e.renderSlot(ctx, layout.SlotFooter, defaultLayout, footer.CustomLayout, FooterProps{
		BackgroundColor: footer.BackgroundColor,
		TextColor:       footer.TextColor,
		FontSize:        footer.FontSize,
		SiteLogoURL:     footer.SiteLogoURL,
		SiteLogoAltText: footer.SiteLogoAltText,
		Sections:        sections,
	})
}

func (e *Engine) renderSlot(ctx context.Context, slot layout.Slot, defaultLayout, override string, props any) (string, error) {
	component, err := e.registry.Resolve(slot, defaultLayout, override)
	if err != nil {
		e.logger.Error("slot resolution failed",
			zap.String("slot", slot.Path()),
			zap.String("layout", defaultLayout),
			zap.String("override", override),
			zap.Error(err))
		return "", err
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf, props); err != nil {
		return "", fmt.Errorf("render %s: %w", slot.Path(), err)
	}
	return buf.String(), nil
}
