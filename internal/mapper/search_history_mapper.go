package mapper

import (
	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/model"
)

type SearchHistoryMapper struct{}

func NewSearchHistoryMapper() *SearchHistoryMapper {
	return &SearchHistoryMapper{}
}

func (m *SearchHistoryMapper) ToEntity(h *model.SearchHistory) *entity.SearchHistory {
	if h == nil {
		return nil
	}
	return &entity.SearchHistory{
		Id:          h.Id,
		UserId:      h.UserId,
		Query:       h.Query,
		SearchMode:  h.SearchMode,
		ResultCount: h.ResultCount,
		CreatedAt:   h.CreatedAt,
	}
}

func (m *SearchHistoryMapper) ToModel(h *entity.SearchHistory) *model.SearchHistory {
	if h == nil {
		return nil
	}
	return &model.SearchHistory{
		Id:          h.Id,
		UserId:      h.UserId,
		Query:       h.Query,
		SearchMode:  h.SearchMode,
		ResultCount: h.ResultCount,
		CreatedAt:   h.CreatedAt,
	}
}

func (m *SearchHistoryMapper) ToEntities(histories []*model.SearchHistory) []*entity.SearchHistory {
	entities := make([]*entity.SearchHistory, len(histories))
	for i, h := range histories {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
