package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/errors"
	"github.com/eyesdeal/eyesdeal-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type StoreController struct {
	storeService service.StoreService
}

func NewStoreController(storeService service.StoreService) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

type StoreRequest struct {
	OrganizationID *string `json:"organization"`
	Name           string  `json:"name" binding:"required"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Pincode        string  `json:"pincode"`
	IsActive       *bool   `json:"isActive"`
}

type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
	Logo string `json:"logo"`
}

// ListStores returns all stores
// GET /stores
func (ctrl *StoreController) ListStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stores, err := ctrl.storeService.ListStores()
	if err != nil {
		log.Error("Failed to fetch stores", err, nil)
		errors.InternalError(c, "Failed to fetch stores")
		return
	}

	errors.RespondWithData(c, http.StatusOK, stores)
}

// GetStore returns one store
// GET /stores/:id
func (ctrl *StoreController) GetStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	store, err := ctrl.storeService.GetStoreByID(id)
	if err != nil {
		if stderrors.Is(err, service.ErrStoreNotFound) {
			errors.NotFound(c, errors.StoreNotFound, "Store not found")
			return
		}
		log.Error("Failed to fetch store", err, map[string]interface{}{
			"store_id": id,
		})
		errors.InternalError(c, "Failed to fetch store")
		return
	}

	errors.RespondWithData(c, http.StatusOK, store)
}

// CreateStore adds a retail location
// POST /stores
func (ctrl *StoreController) CreateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, map[string]string{"name": "Name is required"})
		return
	}

	store := model.Store{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		IsActive:       true,
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	if err := ctrl.storeService.CreateStore(&store); err != nil {
		if stderrors.Is(err, service.ErrStoreNameRequired) {
			errors.RespondWithValidationError(c, map[string]string{"name": "Name is required"})
			return
		}
		log.Error("Failed to create store", err, nil)
		info := errors.ParseError(err, "store create")
		errors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	log.Info("Store created", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})

	errors.RespondWithMessage(c, http.StatusCreated, store, "Store created successfully")
}

// UpdateStore replaces a store
// PATCH /stores/:id
func (ctrl *StoreController) UpdateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, map[string]string{"name": "Name is required"})
		return
	}

	store := model.Store{
		ID:             id,
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		IsActive:       true,
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	if err := ctrl.storeService.UpdateStore(&store); err != nil {
		switch {
		case stderrors.Is(err, service.ErrStoreNotFound):
			errors.NotFound(c, errors.StoreNotFound, "Store not found")
		case stderrors.Is(err, service.ErrStoreNameRequired):
			errors.RespondWithValidationError(c, map[string]string{"name": "Name is required"})
		default:
			log.Error("Failed to update store", err, map[string]interface{}{
				"store_id": id,
			})
			errors.InternalError(c, "Failed to update store")
		}
		return
	}

	errors.RespondWithMessage(c, http.StatusOK, store, "Store updated successfully")
}

// DeleteStore removes a store
// DELETE /stores/:id
func (ctrl *StoreController) DeleteStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.storeService.DeleteStore(id); err != nil {
		if stderrors.Is(err, service.ErrStoreNotFound) {
			errors.NotFound(c, errors.StoreNotFound, "Store not found")
			return
		}
		log.Error("Failed to delete store", err, map[string]interface{}{
			"store_id": id,
		})
		errors.InternalError(c, "Failed to delete store")
		return
	}

	errors.RespondWithMessage(c, http.StatusOK, nil, "Store deleted successfully")
}

// ListOrganizations returns all organizations with their stores
// GET /organizations
func (ctrl *StoreController) ListOrganizations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orgs, err := ctrl.storeService.ListOrganizations()
	if err != nil {
		log.Error("Failed to fetch organizations", err, nil)
		errors.InternalError(c, "Failed to fetch organizations")
		return
	}

	errors.RespondWithData(c, http.StatusOK, orgs)
}

// CreateOrganization adds a retail operator grouping
// POST /organizations
func (ctrl *StoreController) CreateOrganization(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, map[string]string{"name": "Name is required"})
		return
	}

	org := model.Organization{
		Name: req.Name,
		Logo: req.Logo,
	}

	if err := ctrl.storeService.CreateOrganization(&org); err != nil {
		if stderrors.Is(err, service.ErrOrgNameRequired) {
			errors.RespondWithValidationError(c, map[string]string{"name": "Name is required"})
			return
		}
		log.Error("Failed to create organization", err, nil)
		info := errors.ParseError(err, "organization create")
		status := http.StatusInternalServerError
		if info.Code == errors.ResourceAlreadyExists {
			status = http.StatusConflict
		}
		errors.RespondWithError(c, status, info.Code, info.Message)
		return
	}

	errors.RespondWithMessage(c, http.StatusCreated, org, "Organization created successfully")
}
