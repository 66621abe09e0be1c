package contract

import (
	"context"

	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/repository/specification"

	"github.com/google/uuid"
)

// CategoryMatch is the closest category node for a free-text label.
type CategoryMatch struct {
	Category   *entity.Category
	Similarity float64 // trigram similarity in [0,1]
}

type CategoryRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
	FindRoots(ctx context.Context) ([]*entity.Category, error)
	FindChildren(ctx context.Context, parentId uuid.UUID) ([]*entity.Category, error)
	FindBestNameMatch(ctx context.Context, name string) (*CategoryMatch, error)
}
