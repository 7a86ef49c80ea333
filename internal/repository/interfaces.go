package repository

import (
	"context"

	"github.com/Rom943/ecommerce-template/internal/domain"
)

// TenantRepository resolves storefront tenants.
type TenantRepository interface {
	GetByHost(ctx context.Context, host string) (domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (domain.Tenant, error)
}

// PageRepository loads page configuration documents.
type PageRepository interface {
	GetBySlug(ctx context.Context, tenantID int64, slug string) (domain.Page, error)
}

// AdminRepository exposes persistence for back-office accounts.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.Admin, error)
	GetByID(ctx context.Context, id int64) (domain.Admin, error)
	Create(ctx context.Context, admin domain.Admin) (domain.Admin, error)
}

// ProductRepository exposes catalog product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (domain.Product, error)
	List(ctx context.Context, categoryID *int64) ([]domain.Product, error)
}

// CategoryRepository exposes catalog category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	Update(ctx context.Context, category domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// MediaRepository tracks assets held by the external media host.
type MediaRepository interface {
	Create(ctx context.Context, media domain.Media) (domain.Media, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (domain.Media, error)
	List(ctx context.Context, folder string) ([]domain.Media, error)
}
