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

type PurchaseController struct {
	purchaseService service.PurchaseService
}

func NewPurchaseController(purchaseService service.PurchaseService) *PurchaseController {
	return &PurchaseController{
		purchaseService: purchaseService,
	}
}

type PurchaseItemRequest struct {
	ProductID string  `json:"product" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitCost  float64 `json:"unitCost" binding:"gte=0"`
}

type CreatePurchaseRequest struct {
	StoreID       string                `json:"store" binding:"required"`
	VendorName    string                `json:"vendorName" binding:"required"`
	InvoiceNumber string                `json:"invoiceNumber"`
	TotalAmount   float64               `json:"totalAmount"`
	PurchaseDate  *time.Time            `json:"purchaseDate"`
	Items         []PurchaseItemRequest `json:"items" binding:"required,dive"`
}

// CreatePurchase records an inbound stock document
// POST /purchases
func (ctrl *PurchaseController) CreatePurchase(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Malformed purchase payload", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	purchase := model.Purchase{
		StoreID:       req.StoreID,
		VendorName:    req.VendorName,
		InvoiceNumber: req.InvoiceNumber,
		TotalAmount:   req.TotalAmount,
	}
	if req.PurchaseDate != nil {
		purchase.PurchaseDate = *req.PurchaseDate
	} else {
		purchase.PurchaseDate = time.Now()
	}
	for _, item := range req.Items {
		purchase.Items = append(purchase.Items, model.PurchaseItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}

	if err := ctrl.purchaseService.CreatePurchase(&purchase); err != nil {
		switch {
		case stderrors.Is(err, service.ErrPurchaseStoreRequired):
			errors.RespondWithValidationError(c, map[string]string{"store": "Store is required"})
		case stderrors.Is(err, service.ErrPurchaseItemsRequired):
			errors.RespondWithValidationError(c, map[string]string{"items": "At least one item is required"})
		default:
			log.Error("Failed to create purchase", err, map[string]interface{}{
				"store_id": req.StoreID,
			})
			info := errors.ParseError(err, "purchase create")
			errors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		}
		return
	}

	log.Info("Purchase recorded", map[string]interface{}{
		"purchase_id": purchase.ID,
		"store_id":    purchase.StoreID,
	})

	errors.RespondWithMessage(c, http.StatusCreated, purchase, "Purchase recorded successfully")
}

// GetPurchase returns one purchase with its items
// GET /purchases/:id
func (ctrl *PurchaseController) GetPurchase(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	purchase, err := ctrl.purchaseService.GetPurchaseByID(id)
	if err != nil {
		if stderrors.Is(err, service.ErrPurchaseNotFound) {
			errors.NotFound(c, errors.PurchaseNotFound, "Purchase not found")
			return
		}
		log.Error("Failed to fetch purchase", err, map[string]interface{}{
			"purchase_id": id,
		})
		errors.InternalError(c, "Failed to fetch purchase")
		return
	}

	errors.RespondWithData(c, http.StatusOK, purchase)
}

// ListByStore returns one store's purchases page
// GET /purchases?store=&page=&limit=
func (ctrl *PurchaseController) ListByStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Query("store")
	if storeID == "" {
		errors.BadRequest(c, errors.ValidationRequired, "Store is required")
		return
	}

	page, err := ctrl.purchaseService.ListByStore(storeID, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		log.Error("Failed to fetch purchases", err, map[string]interface{}{
			"store_id": storeID,
		})
		errors.InternalError(c, "Failed to fetch purchases")
		return
	}

	errors.RespondWithData(c, http.StatusOK, page)
}

// DeletePurchase removes a purchase document
// DELETE /purchases/:id
func (ctrl *PurchaseController) DeletePurchase(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.purchaseService.DeletePurchase(id); err != nil {
		if stderrors.Is(err, service.ErrPurchaseNotFound) {
			errors.NotFound(c, errors.PurchaseNotFound, "Purchase not found")
			return
		}
		log.Error("Failed to delete purchase", err, map[string]interface{}{
			"purchase_id": id,
		})
		errors.InternalError(c, "Failed to delete purchase")
		return
	}

	errors.RespondWithMessage(c, http.StatusOK, nil, "Purchase deleted successfully")
}
