package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/db"
	"github.com/eyesdeal/eyesdeal-backend/pkg/masterdata"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMasterControllerTest(t *testing.T) (*gin.Engine, service.MasterService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	masterRepo := repository.NewMasterRepository(testDB)
	masterService := service.NewMasterService(masterRepo, time.Minute)
	masterController := NewMasterController(masterService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/master/:attributeType", masterController.ListAttributes)
	router.POST("/master/:attributeType", masterController.CreateAttribute)
	router.PATCH("/master/:attributeType", masterController.UpdateAttribute)
	router.DELETE("/master/:attributeType/:id", masterController.DeleteAttribute)

	return router, masterService
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func doJSON(router *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, envelopeBody) {
	var body *bytes.Buffer
	if payload != nil {
		encoded, _ := json.Marshal(payload)
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelopeBody
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestMasterController_List_Empty(t *testing.T) {
	router, _ := setupMasterControllerTest(t)

	w, env := doJSON(router, http.MethodGet, "/master/brand", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var records []masterdata.AttributeRecord
	require.NoError(t, json.Unmarshal(env.Data, &records))
	assert.Len(t, records, 0)
	assert.Equal(t, "[]", string(env.Data), "an empty collection must serialize as an array, not null")
}

func TestMasterController_CreateThenList(t *testing.T) {
	router, _ := setupMasterControllerTest(t)

	w, env := doJSON(router, http.MethodPost, "/master/brand", gin.H{"name": "Ray-Ban"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Created successfully", env.Message)

	var created masterdata.AttributeRecord
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)

	// A spelling variant of the type sees the same collection.
	w, env = doJSON(router, http.MethodGet, "/master/BRAND", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []masterdata.AttributeRecord
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, created.ID, records[0].ID)
}

func TestMasterController_UnknownType(t *testing.T) {
	router, _ := setupMasterControllerTest(t)

	w, env := doJSON(router, http.MethodGet, "/master/frameColor", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "CONFIG_UNKNOWN_ATTRIBUTE_TYPE", env.Error)
	assert.Contains(t, env.Message, "frameColor")
}

func TestMasterController_Create_NameRequired(t *testing.T) {
	router, _ := setupMasterControllerTest(t)

	w, _ := doJSON(router, http.MethodPost, "/master/brand", gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Name is required", resp.Fields["name"])
}

func TestMasterController_Update(t *testing.T) {
	router, masterService := setupMasterControllerTest(t)

	created, err := masterService.Create(context.Background(), "tax", "GST 12%", "12")
	require.NoError(t, err)

	w, env := doJSON(router, http.MethodPatch, "/master/tax", gin.H{
		"_id":   created.ID,
		"name":  "GST 18%",
		"value": "18",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var updated masterdata.AttributeRecord
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "GST 18%", updated.Name)
	assert.Equal(t, "18", updated.Value)
}

func TestMasterController_Update_NotFound(t *testing.T) {
	router, _ := setupMasterControllerTest(t)

	w, env := doJSON(router, http.MethodPatch, "/master/brand", gin.H{
		"_id":  "no-such-id",
		"name": "Anything",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "MASTER_ATTRIBUTE_NOT_FOUND", env.Error)
}

func TestMasterController_Delete(t *testing.T) {
	router, masterService := setupMasterControllerTest(t)

	created, err := masterService.Create(context.Background(), "color", "Matte Black", "")
	require.NoError(t, err)

	w, env := doJSON(router, http.MethodDelete, "/master/color/"+created.ID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Deleted successfully", env.Message)
	// The delete response carries no list; clients refetch the collection.
	assert.Equal(t, "null", string(env.Data))

	w, env = doJSON(router, http.MethodDelete, "/master/color/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "MASTER_ATTRIBUTE_NOT_FOUND", env.Error)
}
