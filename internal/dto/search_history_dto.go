package dto

import (
	"time"

	"github.com/google/uuid"
)

type SearchHistoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Query       string    `json:"query"`
	SearchMode  string    `json:"search_mode"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `json:"created_at"`
}
