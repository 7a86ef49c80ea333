package domain

import "time"

// Product is a sellable catalog item managed from the admin console.
type Product struct {
	ID            int64     `json:"id,string"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discountPrice,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	GalleryURLs   []string  `json:"galleryUrls"`
	CategoryID    *int64    `json:"categoryId,string,omitempty"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Category groups products and backs the category carousels and archives.
type Category struct {
	ID          int64     `json:"id,string"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	ParentID    *int64    `json:"parentId,string,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Media is a record of an asset held by the external media host. The binary
// itself never passes through this service.
type Media struct {
	ID        int64     `json:"id,string"`
	PublicID  string    `json:"publicId"`
	URL       string    `json:"url"`
	Format    string    `json:"format"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Bytes     int64     `json:"bytes"`
	Folder    string    `json:"folder"`
	CreatedAt time.Time `json:"createdAt"`
}
