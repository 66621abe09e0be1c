package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListProductsRequest struct {
	Search      string
	Brand       string
	CategoryId  *uuid.UUID
	MinPrice    *int
	MaxPrice    *int
	Sort        string // price_low, price_high, popular, newest (default)
	InStockOnly bool
	Page        int
	PageSize    int
}

type ProductResponse struct {
	Id           uuid.UUID  `json:"id"`
	ProductCode  string     `json:"product_code"`
	Name         string     `json:"name"`
	Brand        string     `json:"brand"`
	LowestPrice  int        `json:"lowest_price"`
	Status       string     `json:"status"`
	ReviewCount  int        `json:"review_count"`
	ReviewRating *float64   `json:"review_rating"`
	SpecSummary  string     `json:"spec_summary"`
	CategoryId   uuid.UUID  `json:"category_id"`
	ImageURL     *string    `json:"image_url"`
	DetailURL    *string    `json:"detail_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type ListProductsResponse struct {
	Items    []*ProductResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}
