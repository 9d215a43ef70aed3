package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"github.com/eyesdeal/eyesdeal-backend/pkg/masterdata"
	"github.com/eyesdeal/eyesdeal-backend/pkg/redis"
	"gorm.io/gorm"
)

var (
	ErrAttributeNotFound     = errors.New("attribute not found")
	ErrAttributeNameRequired = errors.New("attribute name is required")
	ErrAttributeIDRequired   = errors.New("attribute id is required")
)

// MasterService owns product master data. Every operation resolves the
// attribute type through the shared normalize-then-lookup rule, so any
// casing/separator variant of a known type lands on the same collection and
// unknown types fail loudly with a ConfigurationError.
type MasterService interface {
	List(ctx context.Context, attributeType string) ([]masterdata.AttributeRecord, error)
	Create(ctx context.Context, attributeType, name, value string) (*masterdata.AttributeRecord, error)
	Update(ctx context.Context, attributeType, id, name, value string) (*masterdata.AttributeRecord, error)
	Delete(ctx context.Context, attributeType, id string) error
}

type masterService struct {
	masterRepo repository.MasterRepository
	cacheTTL   time.Duration
}

func NewMasterService(masterRepo repository.MasterRepository, cacheTTL time.Duration) MasterService {
	return &masterService{
		masterRepo: masterRepo,
		cacheTTL:   cacheTTL,
	}
}

func (s *masterService) List(ctx context.Context, attributeType string) ([]masterdata.AttributeRecord, error) {
	canonical, err := masterdata.CanonicalType(attributeType)
	if err != nil {
		return nil, err
	}

	if cached, ok := redis.GetCachedAttributeList(ctx, canonical); ok {
		logger.Debug("Attribute list served from cache", map[string]interface{}{
			"attribute_type": canonical,
			"count":          len(cached),
		})
		return cached, nil
	}

	attributes, err := s.masterRepo.ListByType(canonical)
	if err != nil {
		return nil, err
	}

	records := model.Records(attributes)
	redis.CacheAttributeList(ctx, canonical, records, s.cacheTTL)

	logger.Debug("Attribute list fetched", map[string]interface{}{
		"attribute_type": canonical,
		"count":          len(records),
	})
	return records, nil
}

func (s *masterService) Create(ctx context.Context, attributeType, name, value string) (*masterdata.AttributeRecord, error) {
	canonical, err := masterdata.CanonicalType(attributeType)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAttributeNameRequired
	}

	attribute := &model.MasterAttribute{
		Type: canonical,
		Name: name,
	}
	// The secondary value is meaningful only for tax and warranty entries.
	if masterdata.HasValue(canonical) {
		attribute.Value = strings.TrimSpace(value)
	}

	if err := s.masterRepo.Create(attribute); err != nil {
		return nil, err
	}
	redis.InvalidateAttributeList(ctx, canonical)

	logger.Info("Master attribute created", map[string]interface{}{
		"attribute_type": canonical,
		"attribute_id":   attribute.ID,
		"name":           attribute.Name,
	})

	record := attribute.Record()
	return &record, nil
}

func (s *masterService) Update(ctx context.Context, attributeType, id, name, value string) (*masterdata.AttributeRecord, error) {
	canonical, err := masterdata.CanonicalType(attributeType)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrAttributeIDRequired
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAttributeNameRequired
	}

	attribute, err := s.masterRepo.FindByID(canonical, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: attribute not found", map[string]interface{}{
				"attribute_type": canonical,
				"attribute_id":   id,
			})
			return nil, ErrAttributeNotFound
		}
		return nil, err
	}

	attribute.Name = name
	if masterdata.HasValue(canonical) {
		attribute.Value = strings.TrimSpace(value)
	}

	if err := s.masterRepo.Update(attribute); err != nil {
		return nil, err
	}
	redis.InvalidateAttributeList(ctx, canonical)

	logger.Info("Master attribute updated", map[string]interface{}{
		"attribute_type": canonical,
		"attribute_id":   attribute.ID,
	})

	record := attribute.Record()
	return &record, nil
}

func (s *masterService) Delete(ctx context.Context, attributeType, id string) error {
	canonical, err := masterdata.CanonicalType(attributeType)
	if err != nil {
		return err
	}
	if id == "" {
		return ErrAttributeIDRequired
	}

	if err := s.masterRepo.Delete(canonical, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete: attribute not found", map[string]interface{}{
				"attribute_type": canonical,
				"attribute_id":   id,
			})
			return ErrAttributeNotFound
		}
		return err
	}
	redis.InvalidateAttributeList(ctx, canonical)

	logger.Info("Master attribute deleted", map[string]interface{}{
		"attribute_type": canonical,
		"attribute_id":   id,
	})
	return nil
}
