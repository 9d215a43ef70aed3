package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization groups stores under one retail operator.
type Organization struct {
	ID        string         `gorm:"primarykey;type:varchar(36)" json:"_id"`
	Name      string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Logo      string         `gorm:"type:varchar(255)" json:"logo,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Stores []Store `gorm:"foreignKey:OrganizationID" json:"stores,omitempty"`
}

func (Organization) TableName() string {
	return "organizations"
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// Store is a physical retail location.
type Store struct {
	ID             string  `gorm:"primarykey;type:varchar(36)" json:"_id"`
	OrganizationID *string `gorm:"type:varchar(36);index" json:"organization,omitempty"`
	Name           string  `gorm:"type:varchar(200);not null" json:"name"`
	Phone          string  `gorm:"type:varchar(30)" json:"phone"`
	Email          string  `gorm:"type:varchar(200)" json:"email,omitempty"`
	Address        string  `gorm:"type:text" json:"address"`
	City           string  `gorm:"type:varchar(100);index" json:"city"`
	State          string  `gorm:"type:varchar(100)" json:"state"`
	Pincode        string  `gorm:"type:varchar(12)" json:"pincode"`
	IsActive       bool    `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Store) TableName() string {
	return "stores"
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
