package controller

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/errors"
	"github.com/eyesdeal/eyesdeal-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type RecallController struct {
	recallService service.RecallService
}

func NewRecallController(recallService service.RecallService) *RecallController {
	return &RecallController{
		recallService: recallService,
	}
}

type RecallReportRequest struct {
	Stores    []string   `json:"stores"`
	Status    *bool      `json:"status"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
}

type UpdateRecallRequest struct {
	ID         string     `json:"_id" binding:"required"`
	RecallDate *time.Time `json:"recallDate"`
	Notes      *string    `json:"notes"`
	Status     *bool      `json:"status"`
}

// ListByStore returns the recall page for one store
// GET /report/recall/store?store=&page=&limit=
func (ctrl *RecallController) ListByStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Query("store")
	if storeID == "" {
		errors.BadRequest(c, errors.ValidationRequired, "Store is required")
		return
	}

	page, err := ctrl.recallService.ListByStore(storeID, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		log.Error("Failed to fetch recalls", err, map[string]interface{}{
			"store_id": storeID,
		})
		errors.InternalError(c, "Failed to fetch recalls")
		return
	}

	errors.RespondWithData(c, http.StatusOK, page)
}

// Report returns the recall page matching the posted filters
// POST /report/recall
func (ctrl *RecallController) Report(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RecallReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	page, err := ctrl.recallService.Report(service.RecallReportFilter{
		Stores:    req.Stores,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Page:      req.Page,
		Limit:     req.Limit,
	})
	if err != nil {
		log.Error("Failed to build recall report", err, nil)
		errors.InternalError(c, "Failed to build recall report")
		return
	}

	errors.RespondWithData(c, http.StatusOK, page)
}

// UpdateRecall reschedules, annotates or closes a recall; the target is the
// _id in the body
// PATCH /report/recall
func (ctrl *RecallController) UpdateRecall(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateRecallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Recall id is required")
		return
	}

	recall, err := ctrl.recallService.UpdateRecall(req.ID, service.RecallUpdate{
		RecallDate: req.RecallDate,
		Notes:      req.Notes,
		Status:     req.Status,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrRecallNotFound):
			errors.NotFound(c, errors.RecallNotFound, "Recall not found")
		case stderrors.Is(err, service.ErrRecallIDRequired):
			errors.BadRequest(c, errors.ValidationInvalidID, "Recall id is required")
		default:
			log.Error("Failed to update recall", err, map[string]interface{}{
				"recall_id": req.ID,
			})
			errors.InternalError(c, "Failed to update recall")
		}
		return
	}

	errors.RespondWithMessage(c, http.StatusOK, recall, "Recall updated successfully")
}

// ExportReport streams the filtered recall report as an XLSX download
// POST /report/recall/export
func (ctrl *RecallController) ExportReport(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RecallReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	recalls, err := ctrl.recallService.Export(service.RecallReportFilter{
		Stores:    req.Stores,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		log.Error("Failed to build recall export", err, nil)
		errors.InternalError(c, "Failed to build recall export")
		return
	}

	workbook, err := service.BuildRecallWorkbook(recalls)
	if err != nil {
		log.Error("Failed to build recall workbook", err, nil)
		errors.InternalError(c, "Failed to build recall export")
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("recall-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		log.Error("Failed to stream recall workbook", err, nil)
	}
}
