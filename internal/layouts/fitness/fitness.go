// Package fitness is the "fitness" layout bundle. It registers an
// implementation for every slot the composition engine can request.
package fitness

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/Rom943/ecommerce-template/internal/composition"
	"github.com/Rom943/ecommerce-template/internal/layout"
)

// Name is the registry name of this bundle.
const Name = "fitness"

// Register adds every fitness slot implementation to the registry.
func Register(reg *layout.Registry) error {
	slots := map[layout.Slot]layout.Factory{
		layout.SlotHeader:           factory[composition.HeaderProps](headerTmpl),
		layout.SlotFooter:           factory[composition.FooterProps](footerTmpl),
		layout.SlotNavMenu:          factory[composition.NavMenuProps](navMenuTmpl),
		layout.SlotNavMenuMobile:    factory[composition.NavMenuProps](navMenuMobileTmpl),
		layout.SlotHeroCarusel:      factory[composition.HeroCaruselProps](heroCaruselTmpl),
		layout.SlotCategorieCarusel: factory[composition.CategorieCaruselProps](categorieCaruselTmpl),
		layout.SlotProductCarusel:   factory[composition.ProductCaruselProps](productCaruselTmpl),
		layout.SlotProductGrid:      factory[composition.ProductGridProps](productGridTmpl),
		layout.SlotCart:             factory[composition.CartProps](cartTmpl),
		layout.SlotSearchBar:        factory[composition.SearchBarProps](searchBarTmpl),
		layout.SlotSiteLogo:         factory[composition.SiteLogoProps](siteLogoTmpl),
	}
	for slot, f := range slots {
		if err := reg.Register(Name, slot, f); err != nil {
			return fmt.Errorf("fitness bundle: %w", err)
		}
	}
	return nil
}

// factory builds a lazily parsed template component that only accepts props
// of type T. A props type mismatch is a wiring bug surfaced as an error.
func factory[T any](text string) layout.Factory {
	return func() (layout.Component, error) {
		tmpl, err := template.New("fitness").Parse(text)
		if err != nil {
			return nil, err
		}
		return layout.ComponentFunc(func(_ context.Context, w io.Writer, props any) error {
			typed, ok := props.(T)
			if !ok {
				return fmt.Errorf("fitness: unexpected props type %T", props)
			}
			return tmpl.Execute(w, typed)
		}), nil
	}
}

const headerTmpl = `<header class="fit-header" style="position:{{if .Position}}{{.Position}}{{else}}static{{end}};{{if .BackgroundColor}}background-color:{{.BackgroundColor}};{{end}}">
<div class="fit-header-logo">{{.SiteLogo}}</div>
{{.NavMenu}}
<div class="fit-header-tools">{{.SearchBar}}{{.Cart}}</div>
</header>`

// The sub-links template recurses, so any nav depth renders the same way.
const navMenuTmpl = `{{define "fitSubLinks"}}{{range .}}<li class="fit-nav-sub-item"><a href="/{{.Link}}">{{.Title}}</a>{{if .Sub}}<ul class="fit-nav-sub">{{template "fitSubLinks" .Sub}}</ul>{{end}}</li>{{end}}{{end}}{{if .Links}}<nav class="fit-nav" dir="{{if .Direction}}{{.Direction}}{{else}}ltr{{end}}"{{if .FontColor}} style="color:{{.FontColor}}"{{end}}><ul class="fit-nav-main">{{range .Links}}<li class="fit-nav-item"><a href="/{{.Main.Link}}">{{.Main.Title}}</a>{{if .Sub}} <span class="fit-nav-caret">&#9660;</span><ul class="fit-nav-sub"{{if $.SubMenuBackgroundColor}} style="background-color:{{$.SubMenuBackgroundColor}}"{{end}}>{{template "fitSubLinks" .Sub}}</ul>{{end}}</li>{{end}}</ul></nav>{{end}}`

const navMenuMobileTmpl = `{{define "fitMobileSubLinks"}}{{range .}}<li><a href="/{{.Link}}">{{.Title}}</a>{{if .Sub}}<ul>{{template "fitMobileSubLinks" .Sub}}</ul>{{end}}</li>{{end}}{{end}}{{if .Links}}<nav class="fit-nav-mobile" dir="{{if .Direction}}{{.Direction}}{{else}}ltr{{end}}"><button class="fit-nav-burger" aria-label="menu">&#9776;</button><ul class="fit-nav-drawer">{{range .Links}}<li><a href="/{{.Main.Link}}">{{.Main.Title}}</a>{{if .Sub}}<ul>{{template "fitMobileSubLinks" .Sub}}</ul>{{end}}</li>{{end}}</ul></nav>{{end}}`

const heroCaruselTmpl = `{{if .Slides}}<section class="fit-hero" data-autoplay="{{.AutoPlay}}" data-interval="{{.AutoPlayInterval}}">
{{range $i, $slide := .Slides}}<div class="fit-hero-slide{{if eq $i $.CurrentIndex}} active{{end}}"{{if ne $slide.BackgroundType "video"}} style="background-image:url('{{$slide.BackgroundURL}}')"{{end}}>
{{if eq $slide.BackgroundType "video"}}<video autoplay loop muted src="{{$slide.BackgroundURL}}"></video>{{end}}
<div class="fit-hero-content"><h1>{{$slide.Title}}</h1><p>{{$slide.Description}}</p>{{if $slide.ButtonText}}<a class="fit-hero-button" href="{{$slide.ButtonLink}}">{{$slide.ButtonText}}</a>{{end}}</div>
</div>{{end}}
<div class="fit-hero-indicators">{{range $i, $slide := .Slides}}<span class="fit-hero-dot{{if eq $i $.CurrentIndex}} active{{end}}"></span>{{end}}</div>
</section>{{end}}`

const categorieCaruselTmpl = `{{if .Slides}}<section class="fit-categories">{{if .Title}}<h2>{{.Title}}</h2>{{end}}<div class="fit-categories-track">{{range .Slides}}<a class="fit-category-card" href="/{{.Link}}"><img src="{{.ImageURL}}" alt="{{.Title}}"><h3>{{.Title}}</h3>{{if .Description}}<p>{{.Description}}</p>{{end}}</a>{{end}}</div></section>{{end}}`

const productCaruselTmpl = `{{if .ProductCards}}<section class="fit-products">{{if .Title}}<h2>{{.Title}}</h2>{{end}}<div class="fit-products-track">{{range .ProductCards}}<a class="fit-product-card" href="{{.Link}}" data-product-id="{{.ProductID}}">{{if .ImageURLs}}<img src="{{index .ImageURLs 0}}" alt="{{.Title}}">{{end}}{{if .Discount}}<span class="fit-discount-badge" style="{{if $.DiscountBadgeColor}}background-color:{{$.DiscountBadgeColor}};{{end}}{{if $.DiscountBadgeTextColor}}color:{{$.DiscountBadgeTextColor}};{{end}}">-{{.Discount}}%</span>{{end}}<h3>{{.Title}}</h3><span class="fit-price">{{printf "%.2f" .Price}}</span></a>{{end}}</div></section>{{end}}`

const productGridTmpl = `{{if .ProductCards}}<section class="fit-grid">{{if .Title}}<h2>{{.Title}}</h2>{{end}}<div class="fit-grid-items">{{range .ProductCards}}<a class="fit-grid-card" href="{{.Link}}" data-product-id="{{.ProductID}}">{{if .ImageURLs}}<img src="{{index .ImageURLs 0}}" alt="{{.Title}}">{{end}}{{if .Discount}}<span class="fit-discount-badge" style="{{if $.DiscountBadgeColor}}background-color:{{$.DiscountBadgeColor}};{{end}}{{if $.DiscountBadgeTextColor}}color:{{$.DiscountBadgeTextColor}};{{end}}">-{{.Discount}}%</span>{{end}}<h3>{{.Title}}</h3><span class="fit-price">{{printf "%.2f" .Price}}</span></a>{{end}}</div></section>{{end}}`

const cartTmpl = `<button class="fit-cart" aria-label="cart">&#128722;<span class="fit-cart-count"></span></button>`

const searchBarTmpl = `<form class="fit-search" action="/search" method="get"><input type="search" name="q" placeholder="Search"><button type="submit">&#128269;</button></form>`

const siteLogoTmpl = `{{if .LogoURL}}<a class="fit-logo" href="/"><img src="{{.LogoURL}}" alt="logo"></a>{{end}}`

const footerTmpl = `<footer class="fit-footer" style="{{if .BackgroundColor}}background-color:{{.BackgroundColor}};{{end}}{{if .TextColor}}color:{{.TextColor}};{{end}}{{if .FontSize}}font-size:{{.FontSize}};{{end}}">
{{if .SiteLogoURL}}<img class="fit-footer-logo" src="{{.SiteLogoURL}}" alt="{{.SiteLogoAltText}}">{{end}}
<div class="fit-footer-sections">{{range .Sections}}<div class="fit-footer-section"><h4>{{.Title}}</h4><ul>{{range .Links}}<li><a href="{{.URL}}">{{if .Icon}}<i class="{{.Icon}}"></i> {{end}}{{.Name}}</a></li>{{end}}</ul></div>{{end}}</div>
</footer>`
