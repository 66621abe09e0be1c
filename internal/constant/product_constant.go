package constant

// Product status values as stored in the catalog.
const (
	ProductStatusOnSale       = "on_sale"
	ProductStatusDiscontinued = "discontinued"
	ProductStatusSuspended    = "suspended"
	ProductStatusOutOfStock   = "out_of_stock"
)

// ExcludedProductStatuses are statuses that make a product unbuyable.
// Vector search skips these rows entirely.
var ExcludedProductStatuses = []string{
	ProductStatusDiscontinued,
	ProductStatusSuspended,
	ProductStatusOutOfStock,
}

// Catalog listing sort keys. Anything else falls back to newest.
const (
	ProductSortPriceLow  = "price_low"
	ProductSortPriceHigh = "price_high"
	ProductSortPopular   = "popular"
	ProductSortNewest    = "newest"
)

// Search modes recorded in search history.
const (
	SearchModeBasic            = "basic"
	SearchModeShoppingResearch = "shopping_research"
)
