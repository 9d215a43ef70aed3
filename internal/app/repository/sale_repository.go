package repository

import (
	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	FindByID(id string) (*model.Sale, error)
	FindByStore(storeID string, limit, offset int) ([]model.Sale, int64, error)
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(sale *model.Sale) error {
	if err := r.db.Create(sale).Error; err != nil {
		logger.Error("Failed to create sale", err, map[string]interface{}{
			"store_id": sale.StoreID,
		})
		return err
	}

	logger.Debug("Sale created", map[string]interface{}{
		"sale_id":  sale.ID,
		"store_id": sale.StoreID,
		"items":    len(sale.Items),
	})
	return nil
}

func (r *saleRepository) FindByID(id string) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.Preload("Items").First(&sale, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) FindByStore(storeID string, limit, offset int) ([]model.Sale, int64, error) {
	query := r.db.Model(&model.Sale{})
	if storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count sales", err, nil)
		return nil, 0, err
	}

	query = query.Preload("Items").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var sales []model.Sale
	if err := query.Find(&sales).Error; err != nil {
		logger.Error("Failed to find sales", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, 0, err
	}
	return sales, total, nil
}
