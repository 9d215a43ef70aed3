package service

import (
	"errors"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrPurchaseNotFound      = errors.New("purchase not found")
	ErrPurchaseItemsRequired = errors.New("a purchase needs at least one item")
	ErrPurchaseStoreRequired = errors.New("store is required")
)

type PurchasePage struct {
	Docs       []model.Purchase `json:"docs"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int64            `json:"totalPages"`
}

type PurchaseService interface {
	CreatePurchase(purchase *model.Purchase) error
	GetPurchaseByID(id string) (*model.Purchase, error)
	ListByStore(storeID string, page, limit int) (*PurchasePage, error)
	DeletePurchase(id string) error
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
}

func NewPurchaseService(purchaseRepo repository.PurchaseRepository) PurchaseService {
	return &purchaseService{purchaseRepo: purchaseRepo}
}

func (s *purchaseService) CreatePurchase(purchase *model.Purchase) error {
	if purchase.StoreID == "" {
		return ErrPurchaseStoreRequired
	}
	if len(purchase.Items) == 0 {
		return ErrPurchaseItemsRequired
	}

	if purchase.TotalAmount == 0 {
		for _, item := range purchase.Items {
			purchase.TotalAmount += item.UnitCost * float64(item.Quantity)
		}
	}

	if err := s.purchaseRepo.Create(purchase); err != nil {
		return err
	}

	logger.Info("Purchase recorded", map[string]interface{}{
		"purchase_id": purchase.ID,
		"store_id":    purchase.StoreID,
		"vendor":      purchase.VendorName,
		"total":       purchase.TotalAmount,
	})
	return nil
}

func (s *purchaseService) GetPurchaseByID(id string) (*model.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseService) ListByStore(storeID string, page, limit int) (*PurchasePage, error) {
	page, limit = normalizePage(page, limit)

	purchases, total, err := s.purchaseRepo.FindByStore(storeID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &PurchasePage{
		Docs:       purchases,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *purchaseService) DeletePurchase(id string) error {
	if err := s.purchaseRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPurchaseNotFound
		}
		return err
	}

	logger.Info("Purchase deleted", map[string]interface{}{
		"purchase_id": id,
	})
	return nil
}
