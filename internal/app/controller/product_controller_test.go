package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductControllerTest(t *testing.T) (*gin.Engine, service.ProductService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	productService := service.NewProductService(productRepo)
	productController := NewProductController(productService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products", productController.ListProducts)
	router.GET("/products/:id", productController.GetProduct)
	router.POST("/products", productController.CreateProduct)
	router.PATCH("/products", productController.UpdateProduct)
	router.DELETE("/products/:id", productController.DeleteProduct)

	return router, productService
}

func testProductPayload(m string, sku string) gin.H {
	return gin.H{
		"model":       m,
		"sku":         sku,
		"displayName": "Test Product",
		"brand":       "brand-1",
		"costPrice":   100,
		"sellPrice":   150,
	}
}

func TestProductController_Create(t *testing.T) {
	router, _ := setupProductControllerTest(t)

	w, env := doJSON(router, http.MethodPost, "/products", testProductPayload("eyeGlasses", "SKU-1"))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var product model.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "SKU-1", product.SKU)
}

func TestProductController_Create_ValidationFields(t *testing.T) {
	router, _ := setupProductControllerTest(t)

	w, _ := doJSON(router, http.MethodPost, "/products", gin.H{
		"model":     "eyeGlasses",
		"costPrice": -10,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Equal(t, "SKU is required", resp.Fields["sku"])
	assert.Equal(t, "Cost Price cannot be negative", resp.Fields["costPrice"])
}

func TestProductController_Create_InvalidModel(t *testing.T) {
	router, _ := setupProductControllerTest(t)

	w, _ := doJSON(router, http.MethodPost, "/products", testProductPayload("smartGlasses", "SKU-2"))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Product model is invalid", resp.Fields["model"])
}

func TestProductController_UpdateByBodyID(t *testing.T) {
	router, productService := setupProductControllerTest(t)

	product := &model.Product{
		Model:       model.ModelSunGlasses,
		SKU:         "SKU-3",
		DisplayName: "Aviator",
		Brand:       "brand-1",
		CostPrice:   100,
		SellPrice:   200,
	}
	require.NoError(t, productService.CreateProduct(product))

	payload := testProductPayload("sunGlasses", "SKU-3")
	payload["_id"] = product.ID
	payload["displayName"] = "Aviator Classic"

	w, env := doJSON(router, http.MethodPatch, "/products", payload)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	found, err := productService.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aviator Classic", found.DisplayName)
}

func TestProductController_ListAndFilter(t *testing.T) {
	router, productService := setupProductControllerTest(t)

	for _, p := range []struct {
		m   model.ProductModel
		sku string
	}{
		{model.ModelEyeGlasses, "EG-1"},
		{model.ModelSunGlasses, "SG-1"},
	} {
		require.NoError(t, productService.CreateProduct(&model.Product{
			Model: p.m, SKU: p.sku, DisplayName: "P " + p.sku, Brand: "brand-1",
			CostPrice: 10, SellPrice: 20,
		}))
	}

	w, env := doJSON(router, http.MethodGet, "/products?model=sunGlasses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page service.ProductPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)

	w, env = doJSON(router, http.MethodGet, "/products?model=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PRODUCT_INVALID_MODEL", env.Error)
}

func TestProductController_DeleteAndGet(t *testing.T) {
	router, productService := setupProductControllerTest(t)

	product := &model.Product{
		Model: model.ModelAccessories, SKU: "AC-1", DisplayName: "Case", Brand: "brand-1",
	}
	require.NoError(t, productService.CreateProduct(product))

	w, env := doJSON(router, http.MethodDelete, "/products/"+product.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, env = doJSON(router, http.MethodGet, "/products/"+product.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error)
}
