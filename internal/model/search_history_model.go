package model

import (
	"time"

	"github.com/google/uuid"
)

type SearchHistory struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      *uuid.UUID `gorm:"type:uuid;index"` // NULL for anonymous searches
	Query       string     `gorm:"type:varchar(500);not null"`
	SearchMode  string     `gorm:"type:varchar(30);index"`
	ResultCount int        `gorm:"default:0"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (SearchHistory) TableName() string {
	return "search_histories"
}
