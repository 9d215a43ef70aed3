package service

import (
	"errors"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductIDRequired   = errors.New("product id is required")
	ErrProductModelChanged = errors.New("product model cannot be changed")
)

type ProductListOptions struct {
	Model  *model.ProductModel
	Brand  string
	Search string
	Page   int
	Limit  int
}

// ProductPage mirrors the paginated list shape the admin tables render.
type ProductPage struct {
	Docs       []model.Product `json:"docs"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int64           `json:"totalPages"`
}

type ProductService interface {
	ListProducts(opts ProductListOptions) (*ProductPage, error)
	GetProductByID(id string) (*model.Product, error)
	CreateProduct(product *model.Product) error
	UpdateProduct(product *model.Product) error
	DeleteProduct(id string) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(opts ProductListOptions) (*ProductPage, error) {
	page, limit := normalizePage(opts.Page, opts.Limit)

	products, total, err := s.productRepo.FindWithFilter(repository.ProductFilter{
		Model:  opts.Model,
		Brand:  opts.Brand,
		Search: opts.Search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		logger.Error("Failed to list products", err, map[string]interface{}{
			"search": opts.Search,
		})
		return nil, err
	}

	return &ProductPage{
		Docs:       products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *productService) GetProductByID(id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(product *model.Product) error {
	if verr := ValidateProduct(product); verr != nil {
		logger.Warn("Product rejected by validation", map[string]interface{}{
			"sku":    product.SKU,
			"model":  product.Model,
			"fields": verr.Fields,
		})
		return verr
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"sku":        product.SKU,
		"model":      product.Model,
	})
	return nil
}

func (s *productService) UpdateProduct(product *model.Product) error {
	if product.ID == "" {
		return ErrProductIDRequired
	}

	existing, err := s.productRepo.FindByID(product.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: product not found", map[string]interface{}{
				"product_id": product.ID,
			})
			return ErrProductNotFound
		}
		return err
	}

	// A record never moves between taxonomies; an empty model means "keep".
	if product.Model == "" {
		product.Model = existing.Model
	} else if product.Model != existing.Model {
		return ErrProductModelChanged
	}

	if verr := ValidateProduct(product); verr != nil {
		logger.Warn("Product update rejected by validation", map[string]interface{}{
			"product_id": product.ID,
			"fields":     verr.Fields,
		})
		return verr
	}

	product.CreatedAt = existing.CreatedAt
	if err := s.productRepo.Update(product); err != nil {
		return err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
		"sku":        product.SKU,
	})
	return nil
}

func (s *productService) DeleteProduct(id string) error {
	if id == "" {
		return ErrProductIDRequired
	}

	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}
