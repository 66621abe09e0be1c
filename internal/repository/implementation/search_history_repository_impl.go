package implementation

import (
	"context"

	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/mapper"
	"ai-shopping-be/internal/model"
	"ai-shopping-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SearchHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SearchHistoryMapper
}

func NewSearchHistoryRepository(db *gorm.DB) contract.SearchHistoryRepository {
	return &SearchHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSearchHistoryMapper(),
	}
}

func (r *SearchHistoryRepositoryImpl) Create(ctx context.Context, history *entity.SearchHistory) error {
	m := r.mapper.ToModel(history)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*history = *r.mapper.ToEntity(m)
	return nil
}

func (r *SearchHistoryRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.SearchHistory, error) {
	if limit <= 0 {
		limit = 20
	}
	var models []*model.SearchHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
