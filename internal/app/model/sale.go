package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is a completed counter sale. When RecallDate is set a recall record is
// created alongside it so the customer can be followed up.
type Sale struct {
	ID            string     `gorm:"primarykey;type:varchar(36)" json:"_id"`
	StoreID       string     `gorm:"type:varchar(36);index;not null" json:"store"`
	CustomerName  string     `gorm:"type:varchar(200);not null" json:"customerName"`
	CustomerPhone string     `gorm:"type:varchar(30);index" json:"customerPhone"`
	TotalAmount   float64    `gorm:"not null" json:"totalAmount"`
	Discount      float64    `json:"discount"`
	RecallDate    *time.Time `json:"recallDate,omitempty"`

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Sale) TableName() string {
	return "sales"
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type SaleItem struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	SaleID    string  `gorm:"type:varchar(36);index;not null" json:"-"`
	ProductID string  `gorm:"type:varchar(36);not null" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`

	CreatedAt time.Time `json:"created_at"`
}

func (SaleItem) TableName() string {
	return "sale_items"
}
