package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel discriminates the seven product taxonomies. Add/update
// requests carry it as the "model" field.
type ProductModel string

const (
	ModelEyeGlasses       ProductModel = "eyeGlasses"
	ModelAccessories      ProductModel = "accessories"
	ModelSunGlasses       ProductModel = "sunGlasses"
	ModelSpectacleLens    ProductModel = "spectacleLens"
	ModelContactLens      ProductModel = "contactLens"
	ModelReadingGlasses   ProductModel = "readingGlasses"
	ModelContactSolutions ProductModel = "contactSolutions"
)

// ValidProductModel reports whether m is one of the seven taxonomies.
func ValidProductModel(m ProductModel) bool {
	switch m {
	case ModelEyeGlasses, ModelAccessories, ModelSunGlasses, ModelSpectacleLens,
		ModelContactLens, ModelReadingGlasses, ModelContactSolutions:
		return true
	}
	return false
}

// Product holds the union of fields across the seven taxonomies. Attribute
// reference fields store master attribute ids; which ones apply depends on
// the model (a contact solution has no frame shape, a spectacle lens no
// disposability).
type Product struct {
	ID          string       `gorm:"primarykey;type:varchar(36)" json:"_id"`
	Model       ProductModel `gorm:"type:varchar(30);index;not null" json:"model"`
	SKU         string       `gorm:"type:varchar(60);uniqueIndex;not null" json:"sku"`
	DisplayName string       `gorm:"type:varchar(200);not null" json:"displayName"`
	Description string       `gorm:"type:text" json:"description"`

	// Master attribute references
	Brand            string      `gorm:"type:varchar(36);index" json:"brand"`
	Unit             string      `gorm:"type:varchar(36)" json:"unit,omitempty"`
	Collection       string      `gorm:"type:varchar(36)" json:"collection,omitempty"`
	Color            string      `gorm:"type:varchar(36)" json:"color,omitempty"`
	Material         string      `gorm:"type:varchar(36)" json:"material,omitempty"`
	FrameType        string      `gorm:"type:varchar(36)" json:"frameType,omitempty"`
	FrameShape       string      `gorm:"type:varchar(36)" json:"frameShape,omitempty"`
	FrameStyle       string      `gorm:"type:varchar(36)" json:"frameStyle,omitempty"`
	SubCategory      string      `gorm:"type:varchar(36)" json:"subCategory,omitempty"`
	LensTechnology   string      `gorm:"type:varchar(36)" json:"lensTechnology,omitempty"`
	Disposability    string      `gorm:"type:varchar(36)" json:"disposability,omitempty"`
	PrescriptionType string      `gorm:"type:varchar(36)" json:"prescriptionType,omitempty"`
	ReadingPower     string      `gorm:"type:varchar(36)" json:"readingPower,omitempty"`
	Tax              string      `gorm:"type:varchar(36)" json:"tax,omitempty"`
	Warranty         string      `gorm:"type:varchar(36)" json:"warranty,omitempty"`
	Features         StringArray `gorm:"type:text" json:"features,omitempty"`

	// Pricing
	CostPrice       float64 `gorm:"not null" json:"costPrice"`
	ResellerPrice   float64 `gorm:"not null" json:"resellerPrice"`
	SellPrice       float64 `gorm:"not null" json:"sellPrice"`
	IncentiveAmount float64 `json:"incentiveAmount"`

	// Media
	SEOImage string      `gorm:"type:varchar(255)" json:"seoImage,omitempty"`
	Images   StringArray `gorm:"type:text" json:"images,omitempty"`

	// Contact solutions only
	ManufactureDate *time.Time `json:"manufactureDate,omitempty"`
	ExpiryDate      *time.Time `json:"expiryDate,omitempty"`

	IsActive  bool           `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
