package repository

import (
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

// RecallFilter matches the report query body: stores, a firm status, and an
// inclusive date window.
type RecallFilter struct {
	Stores    []string
	Status    *bool
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

type RecallRepository interface {
	Create(recall *model.Recall) error
	FindByID(id string) (*model.Recall, error)
	FindByStore(storeID string, limit, offset int) ([]model.Recall, int64, error)
	FindWithFilter(filter RecallFilter) ([]model.Recall, int64, error)
	Update(recall *model.Recall) error
	FindDue(until time.Time) ([]model.Recall, error)
	MarkReminded(ids []string) error
}

type recallRepository struct {
	db *gorm.DB
}

func NewRecallRepository(db *gorm.DB) RecallRepository {
	return &recallRepository{db: db}
}

func (r *recallRepository) Create(recall *model.Recall) error {
	if err := r.db.Create(recall).Error; err != nil {
		logger.Error("Failed to create recall", err, map[string]interface{}{
			"store_id": recall.StoreID,
		})
		return err
	}
	return nil
}

func (r *recallRepository) FindByID(id string) (*model.Recall, error) {
	var recall model.Recall
	if err := r.db.First(&recall, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recall, nil
}

func (r *recallRepository) FindByStore(storeID string, limit, offset int) ([]model.Recall, int64, error) {
	return r.FindWithFilter(RecallFilter{
		Stores: []string{storeID},
		Limit:  limit,
		Offset: offset,
	})
}

func (r *recallRepository) FindWithFilter(filter RecallFilter) ([]model.Recall, int64, error) {
	query := r.db.Model(&model.Recall{})

	if len(filter.Stores) > 0 {
		query = query.Where("store_id IN ?", filter.Stores)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("recall_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("recall_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count recalls", err, nil)
		return nil, 0, err
	}

	query = query.Order("recall_date ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var recalls []model.Recall
	if err := query.Find(&recalls).Error; err != nil {
		logger.Error("Failed to find recalls", err, map[string]interface{}{
			"stores": filter.Stores,
		})
		return nil, 0, err
	}
	return recalls, total, nil
}

func (r *recallRepository) Update(recall *model.Recall) error {
	if err := r.db.Save(recall).Error; err != nil {
		logger.Error("Failed to update recall", err, map[string]interface{}{
			"recall_id": recall.ID,
		})
		return err
	}
	return nil
}

// FindDue returns pending recalls whose date has arrived and that have not
// been swept yet.
func (r *recallRepository) FindDue(until time.Time) ([]model.Recall, error) {
	var recalls []model.Recall
	err := r.db.Where("status = ? AND reminded = ? AND recall_date <= ?", false, false, until).
		Order("recall_date ASC").
		Find(&recalls).Error
	if err != nil {
		logger.Error("Failed to find due recalls", err, nil)
		return nil, err
	}
	return recalls, nil
}

func (r *recallRepository) MarkReminded(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.Model(&model.Recall{}).
		Where("id IN ?", ids).
		Update("reminded", true).Error
	if err != nil {
		logger.Error("Failed to mark recalls as reminded", err, map[string]interface{}{
			"count": len(ids),
		})
	}
	return err
}
