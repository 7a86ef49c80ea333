package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/domain"
	"github.com/Rom943/ecommerce-template/internal/repository"
)

// ProductInput carries admin-submitted product fields.
type ProductInput struct {
	Title         string   `json:"title" binding:"required"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required"`
	DiscountPrice *float64 `json:"discountPrice"`
	ImageURL      string   `json:"imageUrl"`
	GalleryURLs   []string `json:"galleryUrls"`
	CategoryID    *int64   `json:"categoryId,string"`
	Published     bool     `json:"published"`
}

// CategoryInput carries admin-submitted category fields.
type CategoryInput struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ParentID    *int64 `json:"parentId,string"`
}

// CatalogService implements the product and category CRUD behind the admin
// console.
type CatalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	node       *snowflake.Node
	logger     *zap.Logger
	tracer     trace.Tracer
}

// NewCatalogService wires dependencies.
func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository, node *snowflake.Node, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		node:       node,
		logger:     logger,
		tracer:     otel.Tracer("github.com/Rom943/ecommerce-template/internal/service"),
	}
}

// CreateProduct persists a new product.
func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateProduct")
	defer span.End()

	product := domain.Product{
		ID:            s.node.Generate().Int64(),
		Title:         strings.TrimSpace(input.Title),
		Slug:          slugOrDerive(input.Slug, input.Title),
		Description:   input.Description,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		ImageURL:      input.ImageURL,
		GalleryURLs:   input.GalleryURLs,
		CategoryID:    input.CategoryID,
		Published:     input.Published,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		span.RecordError(err)
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	s.logger.Info("product created", zap.Int64("product_id", created.ID), zap.String("slug", created.Slug))
	return created, nil
}

// UpdateProduct applies admin edits to an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, input ProductInput) (domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdateProduct")
	defer span.End()

	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Slug = slugOrDerive(input.Slug, input.Title)
	existing.Description = input.Description
	existing.Price = input.Price
	existing.DiscountPrice = input.DiscountPrice
	existing.ImageURL = input.ImageURL
	existing.GalleryURLs = input.GalleryURLs
	existing.CategoryID = input.CategoryID
	existing.Published = input.Published

	updated, err := s.products.Update(ctx, existing)
	if err != nil {
		span.RecordError(err)
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "CatalogService.DeleteProduct")
	defer span.End()

	if err := s.products.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}
	s.logger.Info("product deleted", zap.Int64("product_id", id))
	return nil
}

// GetProduct loads one product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListProducts lists products, optionally filtered by category.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID *int64) ([]domain.Product, error) {
	return s.products.List(ctx, categoryID)
}

// CreateCategory persists a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, input CategoryInput) (domain.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateCategory")
	defer span.End()

	category := domain.Category{
		ID:          s.node.Generate().Int64(),
		Title:       strings.TrimSpace(input.Title),
		Slug:        slugOrDerive(input.Slug, input.Title),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		ParentID:    input.ParentID,
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		span.RecordError(err)
		return domain.Category{}, fmt.Errorf("create category: %w", err)
	}
	s.logger.Info("category created", zap.Int64("category_id", created.ID), zap.String("slug", created.Slug))
	return created, nil
}

// UpdateCategory applies admin edits to an existing category.
func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, input CategoryInput) (domain.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdateCategory")
	defer span.End()

	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Slug = slugOrDerive(input.Slug, input.Title)
	existing.Description = input.Description
	existing.ImageURL = input.ImageURL
	existing.ParentID = input.ParentID

	updated, err := s.categories.Update(ctx, existing)
	if err != nil {
		span.RecordError(err)
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "CatalogService.DeleteCategory")
	defer span.End()

	if err := s.categories.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// ListCategories lists every category.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugOrDerive(slug, title string) string {
	cleaned := strings.TrimSpace(slug)
	if cleaned == "" {
		cleaned = title
	}
	cleaned = strings.ToLower(cleaned)
	cleaned = slugStripPattern.ReplaceAllString(cleaned, "-")
	return strings.Trim(cleaned, "-")
}
