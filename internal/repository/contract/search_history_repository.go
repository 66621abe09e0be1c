package contract

import (
	"context"

	"ai-shopping-be/internal/entity"

	"github.com/google/uuid"
)

type SearchHistoryRepository interface {
	Create(ctx context.Context, history *entity.SearchHistory) error
	FindAllByUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.SearchHistory, error)
}
