package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MallInformation holds the storefront listing for a product (one row per mall).
type MallInformation struct {
	Id                     uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductId              uuid.UUID      `gorm:"type:uuid;index;not null"`
	MallName               string         `gorm:"type:varchar(100)"`
	CurrentPrice           int            `gorm:"default:0"`
	ProductPageURL         string         `gorm:"type:varchar(500)"`
	RepresentativeImageURL string         `gorm:"type:varchar(500)"`
	CreatedAt              time.Time      `gorm:"autoCreateTime"`
	UpdatedAt              time.Time      `gorm:"autoUpdateTime"`
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

func (MallInformation) TableName() string {
	return "mall_information"
}
