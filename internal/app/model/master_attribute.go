package model

import (
	"time"

	"github.com/eyesdeal/eyesdeal-backend/pkg/masterdata"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterAttribute is one entry of product master data (a brand, a frame
// shape, a tax slab, ...). Type is the canonical attribute type name; Name is
// the only field ordinarily mutated. Value is used only by the tax and
// warranty types. The identifier is assigned at creation and never changes.
type MasterAttribute struct {
	ID        string         `gorm:"primarykey;type:varchar(36)" json:"_id"`
	Type      string         `gorm:"type:varchar(40);not null;uniqueIndex:idx_master_type_name" json:"-"`
	Name      string         `gorm:"type:varchar(120);not null;uniqueIndex:idx_master_type_name" json:"name"`
	Value     string         `gorm:"type:varchar(60)" json:"value,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MasterAttribute) TableName() string {
	return "master_attributes"
}

// BeforeCreate assigns the immutable identifier
func (m *MasterAttribute) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// Record converts the row to its wire shape.
func (m *MasterAttribute) Record() masterdata.AttributeRecord {
	return masterdata.AttributeRecord{ID: m.ID, Name: m.Name, Value: m.Value}
}

// Records converts a result set to wire shapes, never returning nil so list
// responses always carry an array.
func Records(attributes []MasterAttribute) []masterdata.AttributeRecord {
	records := make([]masterdata.AttributeRecord, 0, len(attributes))
	for i := range attributes {
		records = append(records, attributes[i].Record())
	}
	return records
}
