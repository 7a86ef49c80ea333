package composition

import "html/template"

// Props passed to bundle components. Each component receives exactly the
// configuration subtree for its slot; nested slot markup is rendered by the
// engine and handed down already composed.

// NavMenuProps is the payload for the nav_menu and nav_menu_mobile slots.
type NavMenuProps struct {
	Links                  []NavEntry
	Direction              string
	FontColor              string
	SubMenuBackgroundColor string
}

// SiteLogoProps is the payload for the site_logo slot.
type SiteLogoProps struct {
	LogoURL string
}

// CartProps is the payload for the cart slot.
type CartProps struct{}

// SearchBarProps is the payload for the search_bar slot.
type SearchBarProps struct{}

// HeaderProps is the payload for the header slot. NavMenu, SiteLogo, Cart
// and SearchBar carry the pre-rendered markup of the nested slots.
type HeaderProps struct {
	BackgroundColor string
	Position        string
	NavMenu         template.HTML
	SiteLogo        template.HTML
	Cart            template.HTML
	SearchBar       template.HTML
}

// HeroCaruselProps is the payload for the hero_carusel slot. CurrentIndex is
// the slide rendered active server-side; client hydration takes over from
// there.
type HeroCaruselProps struct {
	Slides           []HeroSlide
	AutoPlay         bool
	AutoPlayInterval int
	CurrentIndex     int
}

// CategorieCaruselProps is the payload for the categorie_carusel slot.
type CategorieCaruselProps struct {
	Title  string
	Slides []CategorieSlide
}

// ProductCaruselProps is the payload for the product_carusel slot.
type ProductCaruselProps struct {
	Title                  string
	DiscountBadgeColor     string
	DiscountBadgeTextColor string
	ProductCards           []ProductCard
}

// ProductGridProps is the payload for the product_grid slot.
type ProductGridProps struct {
	Title                  string
	DiscountBadgeColor     string
	DiscountBadgeTextColor string
	ProductCards           []ProductCard
}

// FooterProps is the payload for the footer slot.
type FooterProps struct {
	BackgroundColor string
	TextColor       string
	FontSize        string
	SiteLogoURL     string
	SiteLogoAltText string
	Sections        []FooterSection
}
