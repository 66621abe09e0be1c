package contract

import (
	"context"

	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/repository/specification"

	"github.com/google/uuid"
)

// VectorSearchFilter narrows the candidate set before the nearest-neighbour scan.
type VectorSearchFilter struct {
	CategoryIds      []uuid.UUID // empty = unrestricted by category
	MinPrice         *int        // nil = no lower bound
	MaxPrice         *int        // nil = no upper bound
	ExcludedStatuses []string
	Limit            int
}

// ScoredProduct is a candidate returned by the vector index with its raw
// cosine distance (0 = identical direction, 2 = opposite).
type ScoredProduct struct {
	Product  *entity.Product
	Distance float64
}

type ProductRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchByVector(ctx context.Context, embedding []float32, filter VectorSearchFilter) ([]*ScoredProduct, error)
}
