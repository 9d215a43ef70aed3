package service

import (
	"errors"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrRecallNotFound    = errors.New("recall not found")
	ErrRecallIDRequired  = errors.New("recall id is required")
	ErrRecallStoreNeeded = errors.New("store is required")
)

// RecallReportFilter is the report query body: which stores, which status,
// and an inclusive date window.
type RecallReportFilter struct {
	Stores    []string
	Status    *bool
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// RecallUpdate carries the fields the follow-up screen may change. Nil means
// "leave as is".
type RecallUpdate struct {
	RecallDate *time.Time
	Notes      *string
	Status     *bool
}

type RecallPage struct {
	Docs       []model.Recall `json:"docs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int64          `json:"totalPages"`
}

type RecallService interface {
	CreateRecall(recall *model.Recall) error
	ListByStore(storeID string, page, limit int) (*RecallPage, error)
	Report(filter RecallReportFilter) (*RecallPage, error)
	Export(filter RecallReportFilter) ([]model.Recall, error)
	UpdateRecall(id string, update RecallUpdate) (*model.Recall, error)
	SweepDue(now time.Time) (int, error)
}

type recallService struct {
	recallRepo repository.RecallRepository
}

func NewRecallService(recallRepo repository.RecallRepository) RecallService {
	return &recallService{recallRepo: recallRepo}
}

func (s *recallService) CreateRecall(recall *model.Recall) error {
	if recall.StoreID == "" {
		return ErrRecallStoreNeeded
	}

	if err := s.recallRepo.Create(recall); err != nil {
		return err
	}

	logger.Info("Recall scheduled", map[string]interface{}{
		"recall_id":   recall.ID,
		"store_id":    recall.StoreID,
		"recall_date": recall.RecallDate.Format("2006-01-02"),
	})
	return nil
}

func (s *recallService) ListByStore(storeID string, page, limit int) (*RecallPage, error) {
	if storeID == "" {
		return nil, ErrRecallStoreNeeded
	}

	page, limit = normalizePage(page, limit)
	recalls, total, err := s.recallRepo.FindByStore(storeID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &RecallPage{
		Docs:       recalls,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *recallService) Report(filter RecallReportFilter) (*RecallPage, error) {
	page, limit := normalizePage(filter.Page, filter.Limit)

	recalls, total, err := s.recallRepo.FindWithFilter(repository.RecallFilter{
		Stores:    filter.Stores,
		Status:    filter.Status,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Recall report built", map[string]interface{}{
		"stores": filter.Stores,
		"total":  total,
		"page":   page,
	})

	return &RecallPage{
		Docs:       recalls,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Export returns every recall matching the filter, unpaginated, for the
// spreadsheet download.
func (s *recallService) Export(filter RecallReportFilter) ([]model.Recall, error) {
	recalls, _, err := s.recallRepo.FindWithFilter(repository.RecallFilter{
		Stores:    filter.Stores,
		Status:    filter.Status,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	})
	return recalls, err
}

func (s *recallService) UpdateRecall(id string, update RecallUpdate) (*model.Recall, error) {
	if id == "" {
		return nil, ErrRecallIDRequired
	}

	recall, err := s.recallRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecallNotFound
		}
		return nil, err
	}

	if update.RecallDate != nil {
		recall.RecallDate = *update.RecallDate
		// A rescheduled recall becomes eligible for the reminder sweep again.
		recall.Reminded = false
	}
	if update.Notes != nil {
		recall.Notes = *update.Notes
	}
	if update.Status != nil {
		recall.Status = *update.Status
	}

	if err := s.recallRepo.Update(recall); err != nil {
		return nil, err
	}

	logger.Info("Recall updated", map[string]interface{}{
		"recall_id": recall.ID,
		"status":    recall.Status,
	})
	return recall, nil
}

// SweepDue flags pending recalls whose date has arrived so the store teams
// see them on the follow-up dashboard. Returns how many were flagged.
func (s *recallService) SweepDue(now time.Time) (int, error) {
	due, err := s.recallRepo.FindDue(now)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(due))
	for i := range due {
		ids = append(ids, due[i].ID)
	}

	if err := s.recallRepo.MarkReminded(ids); err != nil {
		return 0, err
	}

	logger.Info("Due recalls flagged", map[string]interface{}{
		"count": len(ids),
	})
	return len(ids), nil
}
