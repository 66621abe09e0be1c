package service

import (
	"context"

	"ai-shopping-be/internal/dto"
	"ai-shopping-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ISearchHistoryService interface {
	GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.SearchHistoryResponse, error)
}

type searchHistoryService struct {
	histories contract.SearchHistoryRepository
}

func NewSearchHistoryService(histories contract.SearchHistoryRepository) ISearchHistoryService {
	return &searchHistoryService{histories: histories}
}

func (s *searchHistoryService) GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.SearchHistoryResponse, error) {
	entries, err := s.histories.FindAllByUser(ctx, userId, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SearchHistoryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, &dto.SearchHistoryResponse{
			Id:          e.Id,
			Query:       e.Query,
			SearchMode:  e.SearchMode,
			ResultCount: e.ResultCount,
			CreatedAt:   e.CreatedAt,
		})
	}
	return result, nil
}
