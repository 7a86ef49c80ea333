package domain

import "time"

// Tenant maps a storefront host name to the layout bundle that renders it.
type Tenant struct {
	ID        int64
	Host      string
	Name      string
	Slug      string
	Layout    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Page stores the configuration tree for one storefront page of a tenant.
// Config is the raw JSON document consumed by the composition engine.
type Page struct {
	ID        int64
	TenantID  int64
	Slug      string
	Title     string
	Config    []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
