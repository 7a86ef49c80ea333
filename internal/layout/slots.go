package layout

// Slot identifies an abstract UI responsibility a layout bundle must fill.
type Slot string

const (
	SlotHeader           Slot = "header"
	SlotFooter           Slot = "footer"
	SlotNavMenu          Slot = "nav_menu"
	SlotNavMenuMobile    Slot = "nav_menu_mobile"
	SlotHeroCarusel      Slot = "hero_carusel"
	SlotCategorieCarusel Slot = "categorie_carusel"
	SlotProductCarusel   Slot = "product_carusel"
	SlotProductGrid      Slot = "product_grid"
	SlotCart             Slot = "cart"
	SlotSearchBar        Slot = "search_bar"
	SlotSiteLogo         Slot = "site_logo"
)

// RequiredSlots lists every slot a complete bundle must register.
func RequiredSlots() []Slot {
	return []Slot{
		SlotHeader,
		SlotFooter,
		SlotNavMenu,
		SlotNavMenuMobile,
		SlotHeroCarusel,
		SlotCategorieCarusel,
		SlotProductCarusel,
		SlotProductGrid,
		SlotCart,
		SlotSearchBar,
		SlotSiteLogo,
	}
}

// Path returns the stable logical lookup path for the slot. This is a public
// contract value, not a source file location.
func (s Slot) Path() string {
	switch s {
	case SlotHeader:
		return "components/header/Header"
	case SlotFooter:
		return "components/footer/Footer"
	case SlotNavMenu:
		return "components/nav_menu/NavMenu"
	case SlotNavMenuMobile:
		return "components/nav_menu_mobile/NavMenuMobile"
	case SlotHeroCarusel:
		return "components/hero_carusel/HeroCarusel"
	case SlotCategorieCarusel:
		return "components/categorie_carusel/CategorieCarusel"
	case SlotProductCarusel:
		return "components/product_carusel/ProductCarusel"
	case SlotProductGrid:
		return "components/product_grid/ProductGrid"
	case SlotCart:
		return "components/cart/Cart"
	case SlotSearchBar:
		return "components/search_bar/SearchBar"
	case SlotSiteLogo:
		return "components/site_logo/SiteLogo"
	}
	return string(s)
}

// MobileBreakpoint is the viewport width, in pixels, at or below which the
// mobile nav menu variant is rendered.
const MobileBreakpoint = 800

// NavSlotForWidth selects the nav menu variant for a measured viewport width.
// Width 0 means the client has not reported a width yet; the desktop variant
// is the deterministic server-side default so navigation never disappears
// before hydration.
func NavSlotForWidth(width int) Slot {
	if width > 0 && width <= MobileBreakpoint {
		return SlotNavMenuMobile
	}
	return SlotNavMenu
}
