package repository

import (
	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(purchase *model.Purchase) error
	FindByID(id string) (*model.Purchase, error)
	FindByStore(storeID string, limit, offset int) ([]model.Purchase, int64, error)
	Delete(id string) error
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(purchase *model.Purchase) error {
	if err := r.db.Create(purchase).Error; err != nil {
		logger.Error("Failed to create purchase", err, map[string]interface{}{
			"store_id": purchase.StoreID,
			"vendor":   purchase.VendorName,
		})
		return err
	}
	return nil
}

func (r *purchaseRepository) FindByID(id string) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := r.db.Preload("Items").First(&purchase, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) FindByStore(storeID string, limit, offset int) ([]model.Purchase, int64, error) {
	query := r.db.Model(&model.Purchase{})
	if storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count purchases", err, nil)
		return nil, 0, err
	}

	query = query.Preload("Items").Order("purchase_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var purchases []model.Purchase
	if err := query.Find(&purchases).Error; err != nil {
		logger.Error("Failed to find purchases", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, 0, err
	}
	return purchases, total, nil
}

func (r *purchaseRepository) Delete(id string) error {
	result := r.db.Delete(&model.Purchase{}, "id = ?", id)
	if result.Error != nil {
		logger.Error("Failed to delete purchase", result.Error, map[string]interface{}{
			"purchase_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
