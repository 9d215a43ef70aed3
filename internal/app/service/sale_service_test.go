package service

import (
	"testing"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSaleServiceTest(t *testing.T) (SaleService, RecallService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	saleRepo := repository.NewSaleRepository(testDB)
	recallRepo := repository.NewRecallRepository(testDB)
	return NewSaleService(saleRepo, recallRepo), NewRecallService(recallRepo)
}

func newSale(storeID string) *model.Sale {
	return &model.Sale{
		StoreID:       storeID,
		CustomerName:  "Asha Patel",
		CustomerPhone: "9876543210",
		Items: []model.SaleItem{
			{ProductID: "prod-1", Quantity: 2, UnitPrice: 500},
			{ProductID: "prod-2", Quantity: 1, UnitPrice: 1200},
		},
	}
}

func TestSaleService_CreateSale_ComputesTotal(t *testing.T) {
	saleService, _ := setupSaleServiceTest(t)

	sale := newSale("store-1")
	sale.Discount = 200
	require.NoError(t, saleService.CreateSale(sale))

	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, float64(2*500+1200-200), sale.TotalAmount)

	found, err := saleService.GetSaleByID(sale.ID)
	require.NoError(t, err)
	assert.Len(t, found.Items, 2)
}

func TestSaleService_CreateSale_KeepsExplicitTotal(t *testing.T) {
	saleService, _ := setupSaleServiceTest(t)

	sale := newSale("store-1")
	sale.TotalAmount = 1500
	require.NoError(t, saleService.CreateSale(sale))

	assert.Equal(t, float64(1500), sale.TotalAmount)
}

func TestSaleService_CreateSale_Validation(t *testing.T) {
	saleService, _ := setupSaleServiceTest(t)

	sale := newSale("")
	assert.ErrorIs(t, saleService.CreateSale(sale), ErrSaleStoreRequired)

	sale = newSale("store-1")
	sale.Items = nil
	assert.ErrorIs(t, saleService.CreateSale(sale), ErrSaleItemsRequired)
}

func TestSaleService_CreateSale_SchedulesRecall(t *testing.T) {
	saleService, recallService := setupSaleServiceTest(t)

	recallDate := time.Now().AddDate(0, 6, 0)
	sale := newSale("store-1")
	sale.RecallDate = &recallDate
	require.NoError(t, saleService.CreateSale(sale))

	page, err := recallService.ListByStore("store-1", 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)

	recall := page.Docs[0]
	require.NotNil(t, recall.SaleID)
	assert.Equal(t, sale.ID, *recall.SaleID)
	assert.Equal(t, sale.CustomerName, recall.CustomerName)
	assert.Equal(t, sale.CustomerPhone, recall.CustomerPhone)
	assert.False(t, recall.Status)
}

func TestSaleService_CreateSale_NoRecallWithoutDate(t *testing.T) {
	saleService, recallService := setupSaleServiceTest(t)

	require.NoError(t, saleService.CreateSale(newSale("store-1")))

	page, err := recallService.ListByStore("store-1", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
}

func TestSaleService_GetSaleByID_NotFound(t *testing.T) {
	saleService, _ := setupSaleServiceTest(t)

	_, err := saleService.GetSaleByID("no-such-id")
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestSaleService_ListByStore(t *testing.T) {
	saleService, _ := setupSaleServiceTest(t)

	require.NoError(t, saleService.CreateSale(newSale("store-1")))
	require.NoError(t, saleService.CreateSale(newSale("store-1")))
	require.NoError(t, saleService.CreateSale(newSale("store-2")))

	page, err := saleService.ListByStore("store-1", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Docs, 2)
}
