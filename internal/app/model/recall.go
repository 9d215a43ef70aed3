package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recall is a scheduled customer follow-up tied to a past sale. Status is
// false while the follow-up is pending and true once it is closed. Reminded
// is set by the daily sweep when the recall comes due.
type Recall struct {
	ID            string    `gorm:"primarykey;type:varchar(36)" json:"_id"`
	SaleID        *string   `gorm:"type:varchar(36);index" json:"sale,omitempty"`
	StoreID       string    `gorm:"type:varchar(36);index;not null" json:"store"`
	CustomerName  string    `gorm:"type:varchar(200);not null" json:"customerName"`
	CustomerPhone string    `gorm:"type:varchar(30)" json:"customerPhone"`
	RecallDate    time.Time `gorm:"index;not null" json:"recallDate"`
	Status        bool      `gorm:"default:false;index" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes"`
	Reminded      bool      `gorm:"default:false" json:"reminded"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Recall) TableName() string {
	return "recalls"
}

func (r *Recall) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
