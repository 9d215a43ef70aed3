package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/errors"
	"github.com/eyesdeal/eyesdeal-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ListProducts returns a paginated product page, optionally filtered by
// model, brand and a free-text search over SKU and display name
// GET /products?model=&brand=&search=&page=&limit=
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	opts := service.ProductListOptions{
		Brand:  c.Query("brand"),
		Search: c.Query("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}

	if modelStr := c.Query("model"); modelStr != "" {
		m := model.ProductModel(modelStr)
		if !model.ValidProductModel(m) {
			errors.BadRequest(c, errors.ProductInvalidModel, "Product model is invalid")
			return
		}
		opts.Model = &m
	}

	page, err := ctrl.productService.ListProducts(opts)
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		errors.InternalError(c, "Failed to fetch products")
		return
	}

	errors.RespondWithData(c, http.StatusOK, page)
}

// GetProduct returns one product
// GET /products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		errors.InternalError(c, "Failed to fetch product")
		return
	}

	errors.RespondWithData(c, http.StatusOK, product)
}

// CreateProduct adds a product under one of the seven taxonomies
// POST /products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		log.Warn("Malformed product payload", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}
	product.ID = ""

	if err := ctrl.productService.CreateProduct(&product); err != nil {
		ctrl.respondProductError(c, err, "create")
		return
	}

	log.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"sku":        product.SKU,
	})

	errors.RespondWithMessage(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct replaces a product; the target is the _id in the body
// PATCH /products
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		log.Warn("Malformed product payload", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if err := ctrl.productService.UpdateProduct(&product); err != nil {
		ctrl.respondProductError(c, err, "update")
		return
	}

	errors.RespondWithMessage(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct soft-deletes a product
// DELETE /products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		ctrl.respondProductError(c, err, "delete")
		return
	}

	log.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})

	errors.RespondWithMessage(c, http.StatusOK, nil, "Product deleted successfully")
}

func (ctrl *ProductController) respondProductError(c *gin.Context, err error, action string) {
	log := middleware.GetLoggerFromContext(c)

	var verr *service.ValidationError
	switch {
	case stderrors.As(err, &verr):
		errors.RespondWithValidationError(c, verr.Fields)
	case stderrors.Is(err, service.ErrProductNotFound):
		errors.NotFound(c, errors.ProductNotFound, "Product not found")
	case stderrors.Is(err, service.ErrProductIDRequired):
		errors.BadRequest(c, errors.ValidationInvalidID, "Product id is required")
	case stderrors.Is(err, service.ErrProductModelChanged):
		errors.BadRequest(c, errors.ProductInvalidModel, "Product model cannot be changed")
	default:
		log.Error("Product operation failed", err, map[string]interface{}{
			"action": action,
		})
		info := errors.ParseError(err, "product "+action)
		status := http.StatusInternalServerError
		if info.Code == errors.ProductSKUExists {
			status = http.StatusConflict
		}
		errors.RespondWithError(c, status, info.Code, info.Message)
	}
}

// queryInt parses an integer query parameter, falling back on garbage.
func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
