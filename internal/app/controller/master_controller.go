package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/errors"
	"github.com/eyesdeal/eyesdeal-backend/internal/middleware"
	"github.com/eyesdeal/eyesdeal-backend/pkg/masterdata"
	"github.com/gin-gonic/gin"
)

type MasterController struct {
	masterService service.MasterService
}

func NewMasterController(masterService service.MasterService) *MasterController {
	return &MasterController{
		masterService: masterService,
	}
}

type CreateAttributeRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

type UpdateAttributeRequest struct {
	ID    string `json:"_id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

// ListAttributes returns every record of one attribute collection
// GET /master/:attributeType
func (ctrl *MasterController) ListAttributes(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	attributeType := c.Param("attributeType")

	records, err := ctrl.masterService.List(c.Request.Context(), attributeType)
	if err != nil {
		var confErr *masterdata.ConfigurationError
		if stderrors.As(err, &confErr) {
			log.Warn("Unknown attribute type requested", map[string]interface{}{
				"attribute_type": attributeType,
			})
			errors.BadRequest(c, errors.ConfigUnknownAttributeType, confErr.Error())
			return
		}
		log.Error("Failed to fetch attribute list", err, map[string]interface{}{
			"attribute_type": attributeType,
		})
		errors.InternalError(c, "Failed to fetch "+attributeType+" list")
		return
	}

	errors.RespondWithData(c, http.StatusOK, records)
}

// CreateAttribute adds a record to one attribute collection
// POST /master/:attributeType
func (ctrl *MasterController) CreateAttribute(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	attributeType := c.Param("attributeType")

	var req CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, map[string]string{"name": "Name is required"})
		return
	}

	record, err := ctrl.masterService.Create(c.Request.Context(), attributeType, req.Name, req.Value)
	if err != nil {
		ctrl.respondMasterError(c, err, attributeType, "create")
		return
	}

	log.Info("Attribute created", map[string]interface{}{
		"attribute_type": attributeType,
		"attribute_id":   record.ID,
	})

	errors.RespondWithMessage(c, http.StatusCreated, record, "Created successfully")
}

// UpdateAttribute replaces a record identified by the _id in the body
// PATCH /master/:attributeType
func (ctrl *MasterController) UpdateAttribute(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	attributeType := c.Param("attributeType")

	var req UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, map[string]string{"name": "Name is required"})
		return
	}

	record, err := ctrl.masterService.Update(c.Request.Context(), attributeType, req.ID, req.Name, req.Value)
	if err != nil {
		ctrl.respondMasterError(c, err, attributeType, "update")
		return
	}

	log.Info("Attribute updated", map[string]interface{}{
		"attribute_type": attributeType,
		"attribute_id":   record.ID,
	})

	errors.RespondWithMessage(c, http.StatusOK, record, "Updated successfully")
}

// DeleteAttribute removes a record. The response carries no list; callers
// refetch the collection to refresh their view.
// DELETE /master/:attributeType/:id
func (ctrl *MasterController) DeleteAttribute(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	attributeType := c.Param("attributeType")
	id := c.Param("id")

	if err := ctrl.masterService.Delete(c.Request.Context(), attributeType, id); err != nil {
		ctrl.respondMasterError(c, err, attributeType, "delete")
		return
	}

	log.Info("Attribute deleted", map[string]interface{}{
		"attribute_type": attributeType,
		"attribute_id":   id,
	})

	errors.RespondWithMessage(c, http.StatusOK, nil, "Deleted successfully")
}

func (ctrl *MasterController) respondMasterError(c *gin.Context, err error, attributeType, action string) {
	log := middleware.GetLoggerFromContext(c)

	var confErr *masterdata.ConfigurationError
	switch {
	case stderrors.As(err, &confErr):
		errors.BadRequest(c, errors.ConfigUnknownAttributeType, confErr.Error())
	case stderrors.Is(err, service.ErrAttributeNotFound):
		errors.NotFound(c, errors.MasterAttributeNotFound, "Attribute not found")
	case stderrors.Is(err, service.ErrAttributeNameRequired):
		errors.RespondWithValidationError(c, map[string]string{"name": "Name is required"})
	case stderrors.Is(err, service.ErrAttributeIDRequired):
		errors.BadRequest(c, errors.ValidationInvalidID, "Attribute id is required")
	default:
		log.Error("Master data operation failed", err, map[string]interface{}{
			"attribute_type": attributeType,
			"action":         action,
		})
		info := errors.ParseError(err, action)
		if info.Code == errors.MasterDuplicateName {
			errors.Conflict(c, info.Code, info.Message)
			return
		}
		errors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
	}
}
