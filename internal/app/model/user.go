package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeStore UserType = "store"
)

// User is an ERP operator. Stores holds the ids of the stores the user may
// see; report queries are scoped to them for non-admin users.
type User struct {
	ID           string         `gorm:"primarykey;type:varchar(36)" json:"_id"`
	AdminName    string         `gorm:"type:varchar(120);not null" json:"adminName"`
	Email        string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Type         UserType       `gorm:"type:varchar(20);default:'store'" json:"type"`
	Stores       StringArray    `gorm:"type:text" json:"stores"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
