package service

import (
	"errors"
	"strings"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrStoreNameRequired = errors.New("store name is required")
	ErrOrgNotFound       = errors.New("organization not found")
	ErrOrgNameRequired   = errors.New("organization name is required")
)

type StoreService interface {
	ListStores() ([]model.Store, error)
	GetStoreByID(id string) (*model.Store, error)
	CreateStore(store *model.Store) error
	UpdateStore(store *model.Store) error
	DeleteStore(id string) error

	ListOrganizations() ([]model.Organization, error)
	CreateOrganization(org *model.Organization) error
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) ListStores() ([]model.Store, error) {
	return s.storeRepo.FindAll()
}

func (s *storeService) GetStoreByID(id string) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return store, nil
}

func (s *storeService) CreateStore(store *model.Store) error {
	if strings.TrimSpace(store.Name) == "" {
		return ErrStoreNameRequired
	}

	if err := s.storeRepo.Create(store); err != nil {
		return err
	}

	logger.Info("Store created", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})
	return nil
}

func (s *storeService) UpdateStore(store *model.Store) error {
	if strings.TrimSpace(store.Name) == "" {
		return ErrStoreNameRequired
	}

	existing, err := s.storeRepo.FindByID(store.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	store.CreatedAt = existing.CreatedAt
	if err := s.storeRepo.Update(store); err != nil {
		return err
	}

	logger.Info("Store updated", map[string]interface{}{
		"store_id": store.ID,
	})
	return nil
}

func (s *storeService) DeleteStore(id string) error {
	if err := s.storeRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	logger.Info("Store deleted", map[string]interface{}{
		"store_id": id,
	})
	return nil
}

func (s *storeService) ListOrganizations() ([]model.Organization, error) {
	return s.storeRepo.FindOrganizations()
}

func (s *storeService) CreateOrganization(org *model.Organization) error {
	if strings.TrimSpace(org.Name) == "" {
		return ErrOrgNameRequired
	}

	if err := s.storeRepo.CreateOrganization(org); err != nil {
		return err
	}

	logger.Info("Organization created", map[string]interface{}{
		"organization_id": org.ID,
		"name":            org.Name,
	})
	return nil
}
