package controller

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/errors"
	"github.com/eyesdeal/eyesdeal-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type SaleController struct {
	saleService service.SaleService
}

func NewSaleController(saleService service.SaleService) *SaleController {
	return &SaleController{
		saleService: saleService,
	}
}

type SaleItemRequest struct {
	ProductID string  `json:"product" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" binding:"gte=0"`
}

type CreateSaleRequest struct {
	StoreID       string            `json:"store" binding:"required"`
	CustomerName  string            `json:"customerName" binding:"required"`
	CustomerPhone string            `json:"customerPhone"`
	TotalAmount   float64           `json:"totalAmount"`
	Discount      float64           `json:"discount"`
	RecallDate    *time.Time        `json:"recallDate"`
	Items         []SaleItemRequest `json:"items" binding:"required,dive"`
}

// CreateSale records a counter sale; a recall date schedules a follow-up
// POST /sales
func (ctrl *SaleController) CreateSale(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Malformed sale payload", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	sale := model.Sale{
		StoreID:       req.StoreID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TotalAmount:   req.TotalAmount,
		Discount:      req.Discount,
		RecallDate:    req.RecallDate,
	}
	for _, item := range req.Items {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := ctrl.saleService.CreateSale(&sale); err != nil {
		switch {
		case stderrors.Is(err, service.ErrSaleStoreRequired):
			errors.RespondWithValidationError(c, map[string]string{"store": "Store is required"})
		case stderrors.Is(err, service.ErrSaleItemsRequired):
			errors.RespondWithValidationError(c, map[string]string{"items": "At least one item is required"})
		default:
			log.Error("Failed to create sale", err, map[string]interface{}{
				"store_id": req.StoreID,
			})
			info := errors.ParseError(err, "sale create")
			errors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		}
		return
	}

	log.Info("Sale recorded", map[string]interface{}{
		"sale_id":  sale.ID,
		"store_id": sale.StoreID,
	})

	errors.RespondWithMessage(c, http.StatusCreated, sale, "Sale recorded successfully")
}

// GetSale returns one sale with its items
// GET /sales/:id
func (ctrl *SaleController) GetSale(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	sale, err := ctrl.saleService.GetSaleByID(id)
	if err != nil {
		if stderrors.Is(err, service.ErrSaleNotFound) {
			errors.NotFound(c, errors.SaleNotFound, "Sale not found")
			return
		}
		log.Error("Failed to fetch sale", err, map[string]interface{}{
			"sale_id": id,
		})
		errors.InternalError(c, "Failed to fetch sale")
		return
	}

	errors.RespondWithData(c, http.StatusOK, sale)
}

// ListByStore returns one store's sales page
// GET /sales?store=&page=&limit=
func (ctrl *SaleController) ListByStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Query("store")
	if storeID == "" {
		errors.BadRequest(c, errors.ValidationRequired, "Store is required")
		return
	}

	page, err := ctrl.saleService.ListByStore(storeID, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		log.Error("Failed to fetch sales", err, map[string]interface{}{
			"store_id": storeID,
		})
		errors.InternalError(c, "Failed to fetch sales")
		return
	}

	errors.RespondWithData(c, http.StatusOK, page)
}
