package composition

import (
	"encoding/json"
	"errors"
	"fmt"
)

// NavLink is one node of the navigation tree. Depth is not fixed: a node
// without Sub entries is a leaf, and nesting recurses to any depth.
type NavLink struct {
	Link  string    `json:"link"`
	Title string    `json:"title"`
	Sub   []NavLink `json:"sub,omitempty"`
}

// NavEntry pairs a main link with its optional sub tree, matching the
// original navLinks wire shape.
type NavEntry struct {
	Main NavLink   `json:"main"`
	Sub  []NavLink `json:"sub,omitempty"`
}

// NavMenuConfig configures the nav menu slot nested inside the header.
type NavMenuConfig struct {
	CustomLayout           string     `json:"customLayout,omitempty"`
	Direction              string     `json:"direction,omitempty"`
	FontColor              string     `json:"fontColor,omitempty"`
	SubMenuBackgroundColor string     `json:"subMenuBackgroundColor,omitempty"`
	NavLinks               []NavEntry `json:"navLinks"`
}

// SiteLogoConfig configures the site logo slot.
type SiteLogoConfig struct {
	LogoURL string `json:"logoUrl"`
}

// CartConfig configures the cart slot.
type CartConfig struct {
	CustomLayout string `json:"customLayout,omitempty"`
}

// SearchBarConfig configures the search bar slot.
type SearchBarConfig struct {
	CustomLayout string `json:"customLayout,omitempty"`
}

// HeaderConfig holds the header subtree, including the slots the header
// itself composes.
type HeaderConfig struct {
	CustomLayout    string           `json:"customLayout,omitempty"`
	BackgroundColor string           `json:"backgroundColor,omitempty"`
	Position        string           `json:"position,omitempty"`
	NavMenu         NavMenuConfig    `json:"navMenu"`
	SiteLogo        SiteLogoConfig   `json:"siteLogo"`
	Cart            CartConfig       `json:"cart"`
	SearchBar       *SearchBarConfig `json:"searchBar,omitempty"`
}

// HeroSlide is one slide of the hero carousel.
type HeroSlide struct {
	BackgroundURL  string `json:"backgroundUrl"`
	BackgroundType string `json:"backgroundType,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ButtonText     string `json:"buttonText,omitempty"`
	ButtonLink     string `json:"buttonLink,omitempty"`
}

// HeroCaruselConfig configures the hero carousel slot.
type HeroCaruselConfig struct {
	CustomLayout     string      `json:"customLayout,omitempty"`
	HeroSlides       []HeroSlide `json:"heroSlides"`
	AutoPlay         bool        `json:"autoPlay,omitempty"`
	AutoPlayInterval int         `json:"autoPlayInterval,omitempty"`
}

// CategorieSlide is one tile of the category carousel.
type CategorieSlide struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl"`
	Link        string `json:"link"`
}

// CategorieCaruselConfig configures the category carousel slot.
type CategorieCaruselConfig struct {
	CustomLayout   string           `json:"customLayout,omitempty"`
	Title          string           `json:"title,omitempty"`
	CategorySlides []CategorieSlide `json:"categorySlides"`
}

// ProductCard is the presentation payload for one product tile.
type ProductCard struct {
	ProductID         string         `json:"productId"`
	Title             string         `json:"title"`
	Price             float64        `json:"price"`
	Discount          float64        `json:"discount,omitempty"`
	Link              string         `json:"link"`
	ImageURLs         []string       `json:"imageUrls"`
	ProductAttributes map[string]any `json:"productAttributes,omitempty"`
}

// ProductCaruselConfig configures the product carousel slot.
type ProductCaruselConfig struct {
	CustomLayout           string        `json:"customLayout,omitempty"`
	Title                  string        `json:"title,omitempty"`
	DiscountBadgeColor     string        `json:"discountBadgeColor,omitempty"`
	DiscountBadgeTextColor string        `json:"discountBadgeTextColor,omitempty"`
	ProductCards           []ProductCard `json:"productCards"`
}

// ProductGridConfig configures the product grid slot.
type ProductGridConfig struct {
	CustomLayout           string        `json:"customLayout,omitempty"`
	Title                  string        `json:"title,omitempty"`
	DiscountBadgeColor     string        `json:"discountBadgeColor,omitempty"`
	DiscountBadgeTextColor string        `json:"discountBadgeTextColor,omitempty"`
	ProductCards           []ProductCard `json:"productCards"`
}

// FooterLink is one entry in a footer section.
type FooterLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

// FooterSection groups footer links under a title.
type FooterSection struct {
	Title           string       `json:"title"`
	Links           []FooterLink `json:"links"`
	BackgroundColor string       `json:"backgroundColor,omitempty"`
	TextColor       string       `json:"textColor,omitempty"`
	FontSize        string       `json:"fontSize,omitempty"`
}

// FooterConfig configures the footer slot.
type FooterConfig struct {
	CustomLayout    string         `json:"customLayout,omitempty"`
	BackgroundColor string         `json:"backgroundColor,omitempty"`
	TextColor       string         `json:"textColor,omitempty"`
	FontSize        string         `json:"fontSize,omitempty"`
	SiteLogoURL     string         `json:"siteLogoUrl,omitempty"`
	SiteLogoAltText string         `json:"siteLogoAltText,omitempty"`
	SocialSection   *FooterSection `json:"socialSection,omitempty"`
	LinksSection    *FooterSection `json:"linksSection,omitempty"`
	ContactSection  *FooterSection `json:"contactSection,omitempty"`
	CategorySection *FooterSection `json:"categorySection,omitempty"`
}

// PageConfig is the full configuration tree for one storefront page. It is
// pure data: presentation parameters and content, never behaviour.
type PageConfig struct {
	Header          *HeaderConfig           `json:"header,omitempty"`
	HeroCarusel     *HeroCaruselConfig      `json:"heroCarusel,omitempty"`
	CategoryCarusel *CategorieCaruselConfig `json:"categoryCarusel,omitempty"`
	ProductCarusel  *ProductCaruselConfig   `json:"productCarusel,omitempty"`
	ProductGrid     *ProductGridConfig      `json:"productGrid,omitempty"`
	Footer          *FooterConfig           `json:"footer,omitempty"`
}

// ErrEmptyPageConfig reports a page document with no renderable slots.
var ErrEmptyPageConfig = errors.New("page config has no slots")

// ParsePageConfig decodes and validates a stored page document. A malformed
// tree is a deployment defect and fails loudly rather than defaulting to an
// empty render.
func ParsePageConfig(raw []byte) (*PageConfig, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("parse page config: %w", ErrEmptyPageConfig)
	}
	var page PageConfig
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("parse page config: %w", err)
	}
	if page.Header == nil && page.HeroCarusel == nil && page.CategoryCarusel == nil &&
		page.ProductCarusel == nil && page.ProductGrid == nil && page.Footer == nil {
		return nil, fmt.Errorf("parse page config: %w", ErrEmptyPageConfig)
	}
	return &page, nil
}
