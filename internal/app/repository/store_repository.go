package repository

import (
	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.Store) error
	FindAll() ([]model.Store, error)
	FindByID(id string) (*model.Store, error)
	Update(store *model.Store) error
	Delete(id string) error

	CreateOrganization(org *model.Organization) error
	FindOrganizations() ([]model.Organization, error)
	FindOrganizationByID(id string) (*model.Organization, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *model.Store) error {
	if err := r.db.Create(store).Error; err != nil {
		logger.Error("Failed to create store", err, map[string]interface{}{
			"name": store.Name,
		})
		return err
	}
	return nil
}

func (r *storeRepository) FindAll() ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.Order("name ASC").Find(&stores).Error; err != nil {
		logger.Error("Failed to list stores", err, nil)
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) FindByID(id string) (*model.Store, error) {
	var store model.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) Update(store *model.Store) error {
	if err := r.db.Save(store).Error; err != nil {
		logger.Error("Failed to update store", err, map[string]interface{}{
			"store_id": store.ID,
		})
		return err
	}
	return nil
}

func (r *storeRepository) Delete(id string) error {
	result := r.db.Delete(&model.Store{}, "id = ?", id)
	if result.Error != nil {
		logger.Error("Failed to delete store", result.Error, map[string]interface{}{
			"store_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *storeRepository) CreateOrganization(org *model.Organization) error {
	if err := r.db.Create(org).Error; err != nil {
		logger.Error("Failed to create organization", err, map[string]interface{}{
			"name": org.Name,
		})
		return err
	}
	return nil
}

func (r *storeRepository) FindOrganizations() ([]model.Organization, error) {
	var orgs []model.Organization
	if err := r.db.Preload("Stores").Order("name ASC").Find(&orgs).Error; err != nil {
		logger.Error("Failed to list organizations", err, nil)
		return nil, err
	}
	return orgs, nil
}

func (r *storeRepository) FindOrganizationByID(id string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.Preload("Stores").First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}
