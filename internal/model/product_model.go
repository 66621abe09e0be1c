package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	Id            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductCode   string           `gorm:"type:varchar(50);uniqueIndex;not null"` // External catalog id
	Name          string           `gorm:"type:varchar(255);index;not null"`
	Brand         string           `gorm:"type:varchar(100);index"`
	LowestPrice   int              `gorm:"not null;default:0"`
	Status        string           `gorm:"type:varchar(30);index;default:'on_sale'"`
	ReviewCount   int              `gorm:"default:0"`
	ReviewRating  *float64         `gorm:""`
	DetailSpec    datatypes.JSON   `gorm:"type:jsonb"`
	SpecEmbedding *pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small uses 1536 dimensions
	CategoryId    uuid.UUID        `gorm:"type:uuid;index"`
	MallInfo      []MallInformation `gorm:"foreignKey:ProductId"`
	CreatedAt     time.Time        `gorm:"autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt   `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
