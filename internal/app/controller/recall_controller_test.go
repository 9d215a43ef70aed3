package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupRecallControllerTest(t *testing.T) (*gin.Engine, service.RecallService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	recallRepo := repository.NewRecallRepository(testDB)
	recallService := service.NewRecallService(recallRepo)
	recallController := NewRecallController(recallService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/report/recall/store", recallController.ListByStore)
	router.POST("/report/recall", recallController.Report)
	router.PATCH("/report/recall", recallController.UpdateRecall)
	router.POST("/report/recall/export", recallController.ExportReport)

	return router, recallService
}

func seedRecall(t *testing.T, recallService service.RecallService, storeID string, date time.Time) *model.Recall {
	recall := &model.Recall{
		StoreID:      storeID,
		CustomerName: "Test Customer",
		RecallDate:   date,
	}
	require.NoError(t, recallService.CreateRecall(recall))
	return recall
}

func TestRecallController_ListByStore(t *testing.T) {
	router, recallService := setupRecallControllerTest(t)

	seedRecall(t, recallService, "store-1", time.Now().AddDate(0, 1, 0))
	seedRecall(t, recallService, "store-2", time.Now().AddDate(0, 1, 0))

	w, env := doJSON(router, http.MethodGet, "/report/recall/store?store=store-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var page service.RecallPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, "store-1", page.Docs[0].StoreID)
}

func TestRecallController_ListByStore_StoreRequired(t *testing.T) {
	router, _ := setupRecallControllerTest(t)

	w, env := doJSON(router, http.MethodGet, "/report/recall/store", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_REQUIRED", env.Error)
}

func TestRecallController_Report(t *testing.T) {
	router, recallService := setupRecallControllerTest(t)

	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	seedRecall(t, recallService, "store-1", jan)
	seedRecall(t, recallService, "store-1", mar)

	w, env := doJSON(router, http.MethodPost, "/report/recall", gin.H{
		"stores":    []string{"store-1"},
		"startDate": "2026-01-01T00:00:00Z",
		"endDate":   "2026-02-01T00:00:00Z",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var page service.RecallPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)
}

func TestRecallController_UpdateRecall(t *testing.T) {
	router, recallService := setupRecallControllerTest(t)

	recall := seedRecall(t, recallService, "store-1", time.Now().AddDate(0, 1, 0))

	w, env := doJSON(router, http.MethodPatch, "/report/recall", gin.H{
		"_id":    recall.ID,
		"status": true,
		"notes":  "Collected new lenses",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var updated model.Recall
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.True(t, updated.Status)
	assert.Equal(t, "Collected new lenses", updated.Notes)
}

func TestRecallController_UpdateRecall_NotFound(t *testing.T) {
	router, _ := setupRecallControllerTest(t)

	w, env := doJSON(router, http.MethodPatch, "/report/recall", gin.H{
		"_id":    "no-such-id",
		"status": true,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RECALL_NOT_FOUND", env.Error)
}

func TestRecallController_UpdateRecall_IDRequired(t *testing.T) {
	router, _ := setupRecallControllerTest(t)

	w, env := doJSON(router, http.MethodPatch, "/report/recall", gin.H{"status": true})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestRecallController_ExportReport(t *testing.T) {
	router, recallService := setupRecallControllerTest(t)

	seedRecall(t, recallService, "store-1", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	seedRecall(t, recallService, "store-1", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	payload, _ := json.Marshal(gin.H{"stores": []string{"store-1"}})
	req := httptest.NewRequest(http.MethodPost, "/report/recall/export", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))

	workbook, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Recalls")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Customer Name", rows[0][0])
	assert.Equal(t, "2026-05-01", rows[1][3])
}
