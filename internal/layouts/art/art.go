// Package art is the "art" layout bundle.
package art

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/Rom943/ecommerce-template/internal/composition"
	"github.com/Rom943/ecommerce-template/internal/layout"
)

const Name = "art"

// Register adds every art slot implementation to the registry.
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
			return fmt.Errorf("art bundle: %w", err)
		}
	}
	return nil
}

func factory[T any](text string) layout.Factory {
	return func() (layout.Component, error) {
		tmpl, err := template.New("art").Parse(text)
		if err != nil {
			return nil, err
		}
		return layout.ComponentFunc(func(_ context.Context, w io.Writer, props any) error {
			typed, ok := props.(T)
			if !ok {
				return fmt.Errorf("art: unexpected props type %T", props)
			}
			return tmpl.Execute(w, typed)
		}), nil
	}
}

const headerTmpl = `<header class="art-header"{{if .BackgroundColor}} style="background-color:{{.BackgroundColor}}"{{end}}>
{{.SiteLogo}}
<div class="art-header-center">{{.NavMenu}}</div>
<div class="art-header-right">{{.SearchBar}}{{.Cart}}</div>
</header>`

const navMenuTmpl = `{{define "artSubLinks"}}{{range .}}<li><a href="/{{.Link}}">{{.Title}}</a>{{if .Sub}}<ul class="art-nav-nested">{{template "artSubLinks" .Sub}}</ul>{{end}}</li>{{end}}{{end}}{{if .Links}}<nav class="art-nav" dir="{{if .Direction}}{{.Direction}}{{else}}ltr{{end}}"{{if .FontColor}} style="color:{{.FontColor}}"{{end}}>{{range .Links}}<div class="art-nav-group"><a class="art-nav-main" href="/{{.Main.Link}}">{{.Main.Title}}</a>{{if .Sub}}<ul class="art-nav-dropdown"{{if $.SubMenuBackgroundColor}} style="background-color:{{$.SubMenuBackgroundColor}}"{{end}}>{{template "artSubLinks" .Sub}}</ul>{{end}}</div>{{end}}</nav>{{end}}`

const navMenuMobileTmpl = `{{define "artMobileSub"}}{{range .}}<li><a href="/{{.Link}}">{{.Title}}</a>{{if .Sub}}<ul>{{template "artMobileSub" .Sub}}</ul>{{end}}</li>{{end}}{{end}}{{if .Links}}<nav class="art-nav-mobile"><details><summary>&#9776;</summary><ul>{{range .Links}}<li><a href="/{{.Main.Link}}">{{.Main.Title}}</a>{{if .Sub}}<ul>{{template "artMobileSub" .Sub}}</ul>{{end}}</li>{{end}}</ul></details></nav>{{end}}`

const heroCaruselTmpl = `{{if .Slides}}<section class="art-hero" data-autoplay="{{.AutoPlay}}" data-interval="{{.AutoPlayInterval}}">{{range $i, $slide := .Slides}}<figure class="art-hero-frame{{if eq $i $.CurrentIndex}} shown{{end}}">{{if eq $slide.BackgroundType "video"}}<video autoplay loop muted src="{{$slide.BackgroundURL}}"></video>{{else}}<img src="{{$slide.BackgroundURL}}" alt="{{$slide.Title}}">{{end}}<figcaption><h1>{{$slide.Title}}</h1><p>{{$slide.Description}}</p>{{if $slide.ButtonText}}<a href="{{$slide.ButtonLink}}">{{$slide.ButtonText}}</a>{{end}}</figcaption></figure>{{end}}</section>{{end}}`

const categorieCaruselTmpl = `{{if .Slides}}<section class="art-collections">{{if .Title}}<h2>{{.Title}}</h2>{{end}}{{range .Slides}}<a class="art-collection" href="/{{.Link}}"><img src="{{.ImageURL}}" alt="{{.Title}}"><span>{{.Title}}</span></a>{{end}}</section>{{end}}`

const productCaruselTmpl = `{{if .ProductCards}}<section class="art-works">{{if .Title}}<h2>{{.Title}}</h2>{{end}}{{range .ProductCards}}<a class="art-work" href="{{.Link}}" data-product-id="{{.ProductID}}">{{if .ImageURLs}}<img src="{{index .ImageURLs 0}}" alt="{{.Title}}">{{end}}{{if .Discount}}<em class="art-discount"{{if $.DiscountBadgeColor}} style="background-color:{{$.DiscountBadgeColor}}{{if $.DiscountBadgeTextColor}};color:{{$.DiscountBadgeTextColor}}{{end}}"{{end}}>-{{.Discount}}%</em>{{end}}<span class="art-work-title">{{.Title}}</span><span class="art-work-price">{{printf "%.2f" .Price}}</span></a>{{end}}</section>{{end}}`

const productGridTmpl = `{{if .ProductCards}}<section class="art-gallery">{{if .Title}}<h2>{{.Title}}</h2>{{end}}<div class="art-gallery-grid">{{range .ProductCards}}<a class="art-gallery-item" href="{{.Link}}" data-product-id="{{.ProductID}}">{{if .ImageURLs}}<img src="{{index .ImageURLs 0}}" alt="{{.Title}}">{{end}}{{if .Discount}}<em class="art-discount"{{if $.DiscountBadgeColor}} style="background-color:{{$.DiscountBadgeColor}}{{if $.DiscountBadgeTextColor}};color:{{$.DiscountBadgeTextColor}}{{end}}"{{end}}>-{{.Discount}}%</em>{{end}}<span>{{.Title}}</span><span class="art-gallery-price">{{printf "%.2f" .Price}}</span></a>{{end}}</div></section>{{end}}`

const cartTmpl = `<a class="art-cart" href="/check_out" aria-label="cart">&#128722;</a>`

const searchBarTmpl = `<form class="art-search" action="/search" method="get"><input type="search" name="q" placeholder="Search the gallery"></form>`

const siteLogoTmpl = `{{if .LogoURL}}<a class="art-logo" href="/"><img src="{{.LogoURL}}" alt="logo"></a>{{end}}`

const footerTmpl = `<footer class="art-footer"{{if or .BackgroundColor .TextColor}} style="{{if .BackgroundColor}}background-color:{{.BackgroundColor}};{{end}}{{if .TextColor}}color:{{.TextColor}};{{end}}"{{end}}>{{if .SiteLogoURL}}<img src="{{.SiteLogoURL}}" alt="{{.SiteLogoAltText}}">{{end}}{{range .Sections}}<section><h4>{{.Title}}</h4>{{range .Links}}<a href="{{.URL}}">{{.Name}}</a>{{end}}</section>{{end}}</footer>`
