package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase is an inbound stock document from a vendor.
type Purchase struct {
	ID            string    `gorm:"primarykey;type:varchar(36)" json:"_id"`
	StoreID       string    `gorm:"type:varchar(36);index;not null" json:"store"`
	VendorName    string    `gorm:"type:varchar(200);not null" json:"vendorName"`
	InvoiceNumber string    `gorm:"type:varchar(60);index" json:"invoiceNumber"`
	TotalAmount   float64   `gorm:"not null" json:"totalAmount"`
	PurchaseDate  time.Time `json:"purchaseDate"`

	Items []PurchaseItem `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Purchase) TableName() string {
	return "purchases"
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PurchaseItem struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	PurchaseID string  `gorm:"type:varchar(36);index;not null" json:"-"`
	ProductID  string  `gorm:"type:varchar(36);not null" json:"product"`
	Quantity   int     `gorm:"not null;default:1" json:"quantity"`
	UnitCost   float64 `gorm:"not null" json:"unitCost"`

	CreatedAt time.Time `json:"created_at"`
}

func (PurchaseItem) TableName() string {
	return "purchase_items"
}
