package repository

import (
	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

type MasterRepository interface {
	ListByType(attributeType string) ([]model.MasterAttribute, error)
	FindByID(attributeType, id string) (*model.MasterAttribute, error)
	Create(attribute *model.MasterAttribute) error
	BulkCreate(attributes []model.MasterAttribute, batchSize int) error
	Update(attribute *model.MasterAttribute) error
	Delete(attributeType, id string) error
}

type masterRepository struct {
	db *gorm.DB
}

func NewMasterRepository(db *gorm.DB) MasterRepository {
	return &masterRepository{db: db}
}

// ListByType returns every attribute of one type, name-ordered. The backend
// owns ordering; callers re-fetch after mutations instead of sorting locally.
func (r *masterRepository) ListByType(attributeType string) ([]model.MasterAttribute, error) {
	var attributes []model.MasterAttribute
	err := r.db.Where("type = ?", attributeType).
		Order("name ASC").
		Find(&attributes).Error
	if err != nil {
		logger.Error("Failed to list master attributes", err, map[string]interface{}{
			"attribute_type": attributeType,
		})
		return nil, err
	}
	return attributes, nil
}

func (r *masterRepository) FindByID(attributeType, id string) (*model.MasterAttribute, error) {
	var attribute model.MasterAttribute
	err := r.db.Where("type = ? AND id = ?", attributeType, id).
		First(&attribute).Error
	if err != nil {
		return nil, err
	}
	return &attribute, nil
}

func (r *masterRepository) Create(attribute *model.MasterAttribute) error {
	if err := r.db.Create(attribute).Error; err != nil {
		logger.Error("Failed to create master attribute", err, map[string]interface{}{
			"attribute_type": attribute.Type,
			"name":           attribute.Name,
		})
		return err
	}

	logger.Debug("Master attribute created", map[string]interface{}{
		"attribute_type": attribute.Type,
		"attribute_id":   attribute.ID,
	})
	return nil
}

func (r *masterRepository) BulkCreate(attributes []model.MasterAttribute, batchSize int) error {
	if err := r.db.CreateInBatches(attributes, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create master attributes", err, map[string]interface{}{
			"count": len(attributes),
		})
		return err
	}
	return nil
}

func (r *masterRepository) Update(attribute *model.MasterAttribute) error {
	if err := r.db.Save(attribute).Error; err != nil {
		logger.Error("Failed to update master attribute", err, map[string]interface{}{
			"attribute_type": attribute.Type,
			"attribute_id":   attribute.ID,
		})
		return err
	}
	return nil
}

func (r *masterRepository) Delete(attributeType, id string) error {
	result := r.db.Where("type = ? AND id = ?", attributeType, id).
		Delete(&model.MasterAttribute{})
	if result.Error != nil {
		logger.Error("Failed to delete master attribute", result.Error, map[string]interface{}{
			"attribute_type": attributeType,
			"attribute_id":   id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
