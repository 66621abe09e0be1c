package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id           uuid.UUID
	ProductCode  string
	Name         string
	Brand        string
	LowestPrice  int
	Status       string
	ReviewCount  int
	ReviewRating *float64
	DetailSpec   map[string]interface{}
	HasEmbedding bool
	CategoryId   uuid.UUID
	MallInfo     *MallInformation
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}

// SpecSummary flattens the crawler's detail_spec JSON into one line,
// e.g. "16GB RAM, 1TB SSD, 1.2kg". Empty string when no spec data exists.
func (p *Product) SpecSummary() string {
	if p.DetailSpec == nil {
		return ""
	}

	items, ok := p.DetailSpec["spec_summary"].([]interface{})
	if !ok {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		s := strings.TrimSpace(fmt.Sprintf("%v", item))
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
