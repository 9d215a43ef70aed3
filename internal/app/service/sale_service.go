package service

import (
	"errors"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound      = errors.New("sale not found")
	ErrSaleItemsRequired = errors.New("a sale needs at least one item")
	ErrSaleStoreRequired = errors.New("store is required")
)

type SalePage struct {
	Docs       []model.Sale `json:"docs"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int64        `json:"totalPages"`
}

type SaleService interface {
	CreateSale(sale *model.Sale) error
	GetSaleByID(id string) (*model.Sale, error)
	ListByStore(storeID string, page, limit int) (*SalePage, error)
}

type saleService struct {
	saleRepo   repository.SaleRepository
	recallRepo repository.RecallRepository
}

func NewSaleService(saleRepo repository.SaleRepository, recallRepo repository.RecallRepository) SaleService {
	return &saleService{
		saleRepo:   saleRepo,
		recallRepo: recallRepo,
	}
}

func (s *saleService) CreateSale(sale *model.Sale) error {
	if sale.StoreID == "" {
		return ErrSaleStoreRequired
	}
	if len(sale.Items) == 0 {
		return ErrSaleItemsRequired
	}

	if sale.TotalAmount == 0 {
		for _, item := range sale.Items {
			sale.TotalAmount += item.UnitPrice * float64(item.Quantity)
		}
		sale.TotalAmount -= sale.Discount
	}

	if err := s.saleRepo.Create(sale); err != nil {
		return err
	}

	logger.Info("Sale recorded", map[string]interface{}{
		"sale_id":  sale.ID,
		"store_id": sale.StoreID,
		"total":    sale.TotalAmount,
	})

	// A sale with a recall date also schedules the customer follow-up.
	if sale.RecallDate != nil {
		recall := &model.Recall{
			SaleID:        &sale.ID,
			StoreID:       sale.StoreID,
			CustomerName:  sale.CustomerName,
			CustomerPhone: sale.CustomerPhone,
			RecallDate:    *sale.RecallDate,
		}
		if err := s.recallRepo.Create(recall); err != nil {
			// The sale is already committed; a failed recall must not undo it.
			logger.Error("Failed to schedule recall for sale", err, map[string]interface{}{
				"sale_id": sale.ID,
			})
		} else {
			logger.Info("Recall scheduled from sale", map[string]interface{}{
				"sale_id":   sale.ID,
				"recall_id": recall.ID,
			})
		}
	}

	return nil
}

func (s *saleService) GetSaleByID(id string) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return sale, nil
}

func (s *saleService) ListByStore(storeID string, page, limit int) (*SalePage, error) {
	page, limit = normalizePage(page, limit)

	sales, total, err := s.saleRepo.FindByStore(storeID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &SalePage{
		Docs:       sales,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
