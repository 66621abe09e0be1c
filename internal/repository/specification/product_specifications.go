package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NameOrBrandContains does a case-insensitive substring match on name/brand.
type NameOrBrandContains struct {
	Text string
}

func (s NameOrBrandContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Text + "%"
	return db.Where("name ILIKE ? OR brand ILIKE ?", pattern, pattern)
}

// BrandContains filters by brand substring.
type BrandContains struct {
	Brand string
}

func (s BrandContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("brand ILIKE ?", "%"+s.Brand+"%")
}

// CategoryIn restricts products to a category id set.
type CategoryIn struct {
	Ids []uuid.UUID
}

func (s CategoryIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id IN ?", s.Ids)
}

// PriceBetween bounds lowest_price; either bound may be absent.
type PriceBetween struct {
	Min *int
	Max *int
}

func (s PriceBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.Min != nil {
		db = db.Where("lowest_price >= ?", *s.Min)
	}
	if s.Max != nil {
		db = db.Where("lowest_price <= ?", *s.Max)
	}
	return db
}

// StatusNotIn excludes unbuyable product statuses.
type StatusNotIn struct {
	Statuses []string
}

func (s StatusNotIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status NOT IN ?", s.Statuses)
}
