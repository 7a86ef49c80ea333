package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rom943/ecommerce-template/internal/domain"
)

// Compile-time interface assertions.
var (
	_ TenantRepository   = (*PostgresTenantRepo)(nil)
	_ PageRepository     = (*PostgresPageRepo)(nil)
	_ AdminRepository    = (*PostgresAdminRepo)(nil)
	_ ProductRepository  = (*PostgresProductRepo)(nil)
	_ CategoryRepository = (*PostgresCategoryRepo)(nil)
	_ MediaRepository    = (*PostgresMediaRepo)(nil)
)

// PostgresTenantRepo implements TenantRepository over pgx.
type PostgresTenantRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresTenantRepo(pool *pgxpool.Pool) *PostgresTenantRepo {
	return &PostgresTenantRepo{pool: pool}
}

const tenantColumns = `id, host, name, slug, layout, status, created_at, updated_at`

func (r *PostgresTenantRepo) GetByHost(ctx context.Context, host string) (domain.Tenant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE host = $1`, host)
	var t domain.Tenant
	if err := row.Scan(&t.ID, &t.Host, &t.Name, &t.Slug, &t.Layout, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.Tenant{}, fmt.Errorf("get tenant by host: %w", err)
	}
	return t, nil
}

func (r *PostgresTenantRepo) GetBySlug(ctx context.Context, slug string) (domain.Tenant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE slug = $1`, slug)
	var t domain.Tenant
	if err := row.Scan(&t.ID, &t.Host, &t.Name, &t.Slug, &t.Layout, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.Tenant{}, fmt.Errorf("get tenant by slug: %w", err)
	}
	return t, nil
}

// PostgresPageRepo implements PageRepository over pgx.
type PostgresPageRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresPageRepo(pool *pgxpool.Pool) *PostgresPageRepo {
	return &PostgresPageRepo{pool: pool}
}

func (r *PostgresPageRepo) GetBySlug(ctx context.Context, tenantID int64, slug string) (domain.Page, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, tenant_id, slug, title, config, created_at, updated_at FROM pages WHERE tenant_id = $1 AND slug = $2`,
		tenantID, slug)
	var p domain.Page
	if err := row.Scan(&p.ID, &p.TenantID, &p.Slug, &p.Title, &p.Config, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Page{}, fmt.Errorf("get page: %w", err)
	}
	return p, nil
}

// PostgresAdminRepo implements AdminRepository over pgx.
type PostgresAdminRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresAdminRepo(pool *pgxpool.Pool) *PostgresAdminRepo {
	return &PostgresAdminRepo{pool: pool}
}

const adminColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

func (r *PostgresAdminRepo) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
	var a domain.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Admin{}, fmt.Errorf("get admin by email: %w", err)
	}
	return a, nil
}

func (r *PostgresAdminRepo) GetByID(ctx context.Context, id int64) (domain.Admin, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
	var a domain.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	return a, nil
}

func (r *PostgresAdminRepo) Create(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admins (id, email, password_hash, first_name, last_name) VALUES ($1, $2, $3, $4, $5)`,
		admin.ID, admin.Email, admin.PasswordHash, admin.FirstName, admin.LastName)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("create admin: %w", err)
	}
	return r.GetByID(ctx, admin.ID)
}

// PostgresProductRepo implements ProductRepository over pgx.
type PostgresProductRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresProductRepo(pool *pgxpool.Pool) *PostgresProductRepo {
	return &PostgresProductRepo{pool: pool}
}

const productColumns = `id, title, slug, description, price, discount_price, image_url, gallery_urls, category_id, published, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Price, &p.DiscountPrice,
		&p.ImageURL, &p.GalleryURLs, &p.CategoryID, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepo) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO products (id, title, slug, description, price, discount_price, image_url, gallery_urls, category_id, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.Title, product.Slug, product.Description, product.Price,
		product.DiscountPrice, product.ImageURL, product.GalleryURLs, product.CategoryID, product.Published)
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return r.GetByID(ctx, product.ID)
}

func (r *PostgresProductRepo) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	_, err := r.pool.Exec(ctx,
		`UPDATE products SET title = $2, slug = $3, description = $4, price = $5, discount_price = $6,
		 image_url = $7, gallery_urls = $8, category_id = $9, published = $10, updated_at = now()
		 WHERE id = $1`,
		product.ID, product.Title, product.Slug, product.Description, product.Price,
		product.DiscountPrice, product.ImageURL, product.GalleryURLs, product.CategoryID, product.Published)
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	return r.GetByID(ctx, product.ID)
}

func (r *PostgresProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *PostgresProductRepo) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepo) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug))
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product by slug: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepo) List(ctx context.Context, categoryID *int64) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	args := []any{}
	if categoryID != nil {
		query = `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY created_at DESC`
		args = append(args, *categoryID)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// PostgresCategoryRepo implements CategoryRepository over pgx.
type PostgresCategoryRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresCategoryRepo(pool *pgxpool.Pool) *PostgresCategoryRepo {
	return &PostgresCategoryRepo{pool: pool}
}

const categoryColumns = `id, title, slug, description, image_url, parent_id, created_at, updated_at`

func scanCategory(row interface{ Scan(dest ...any) error }) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Title, &c.Slug, &c.Description, &c.ImageURL, &c.ParentID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *PostgresCategoryRepo) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO categories (id, title, slug, description, image_url, parent_id) VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.Title, category.Slug, category.Description, category.ImageURL, category.ParentID)
	if err != nil {
		return domain.Category{}, fmt.Errorf("create category: %w", err)
	}
	return r.GetByID(ctx, category.ID)
}

func (r *PostgresCategoryRepo) Update(ctx context.Context, category domain.Category) (domain.Category, error) {
	_, err := r.pool.Exec(ctx,
		`UPDATE categories SET title = $2, slug = $3, description = $4, image_url = $5, parent_id = $6, updated_at = now() WHERE id = $1`,
		category.ID, category.Title, category.Slug, category.Description, category.ImageURL, category.ParentID)
	if err != nil {
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}
	return r.GetByID(ctx, category.ID)
}

func (r *PostgresCategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *PostgresCategoryRepo) GetByID(ctx context.Context, id int64) (domain.Category, error) {
	c, err := scanCategory(r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		return domain.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (r *PostgresCategoryRepo) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	c, err := scanCategory(r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug))
	if err != nil {
		return domain.Category{}, fmt.Errorf("get category by slug: %w", err)
	}
	return c, nil
}

func (r *PostgresCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// PostgresMediaRepo implements MediaRepository over pgx.
type PostgresMediaRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresMediaRepo(pool *pgxpool.Pool) *PostgresMediaRepo {
	return &PostgresMediaRepo{pool: pool}
}

const mediaColumns = `id, public_id, url, format, width, height, bytes, folder, created_at`

func scanMedia(row interface{ Scan(dest ...any) error }) (domain.Media, error) {
	var m domain.Media
	err := row.Scan(&m.ID, &m.PublicID, &m.URL, &m.Format, &m.Width, &m.Height, &m.Bytes, &m.Folder, &m.CreatedAt)
	return m, err
}

func (r *PostgresMediaRepo) Create(ctx context.Context, media domain.Media) (domain.Media, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO media (id, public_id, url, format, width, height, bytes, folder) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		media.ID, media.PublicID, media.URL, media.Format, media.Width, media.Height, media.Bytes, media.Folder)
	if err != nil {
		return domain.Media{}, fmt.Errorf("create media: %w", err)
	}
	return r.GetByID(ctx, media.ID)
}

func (r *PostgresMediaRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM media WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

func (r *PostgresMediaRepo) GetByID(ctx context.Context, id int64) (domain.Media, error) {
	m, err := scanMedia(r.pool.QueryRow(ctx, `SELECT `+mediaColumns+` FROM media WHERE id = $1`, id))
	if err != nil {
		return domain.Media{}, fmt.Errorf("get media: %w", err)
	}
	return m, nil
}

func (r *PostgresMediaRepo) List(ctx context.Context, folder string) ([]domain.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media ORDER BY created_at DESC`
	args := []any{}
	if folder != "" {
		query = `SELECT ` + mediaColumns + ` FROM media WHERE folder = $1 ORDER BY created_at DESC`
		args = append(args, folder)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []domain.Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return items, nil
}
