package entity

import (
	"time"

	"github.com/google/uuid"
)

type SearchHistory struct {
	Id          uuid.UUID
	UserId      *uuid.UUID
	Query       string
	SearchMode  string
	ResultCount int
	CreatedAt   time.Time
}
