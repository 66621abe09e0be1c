package service

import (
	"context"

	"ai-shopping-be/internal/dto"
	"ai-shopping-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ICategoryService interface {
	GetTree(ctx context.Context) ([]*dto.CategoryNodeResponse, error)
	GetRoots(ctx context.Context) ([]*dto.CategoryNodeResponse, error)
	GetChildren(ctx context.Context, parentId uuid.UUID) ([]*dto.CategoryNodeResponse, error)
}

type categoryService struct {
	categories contract.CategoryRepository
}

func NewCategoryService(categories contract.CategoryRepository) ICategoryService {
	return &categoryService{categories: categories}
}

// GetTree loads all categories in one query and links them in memory.
// Nodes whose parent is missing or part of a malformed cycle end up as
// roots instead of disappearing.
func (s *categoryService) GetTree(ctx context.Context) ([]*dto.CategoryNodeResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uuid.UUID]*dto.CategoryNodeResponse, len(categories))
	for _, c := range categories {
		nodes[c.Id] = &dto.CategoryNodeResponse{
			Id:       c.Id,
			Name:     c.Name,
			ParentId: c.ParentId,
			Children: make([]*dto.CategoryNodeResponse, 0),
		}
	}

	roots := make([]*dto.CategoryNodeResponse, 0)
	for _, c := range categories {
		node := nodes[c.Id]
		if c.ParentId == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentId]
		if !ok || *c.ParentId == c.Id {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots, nil
}

func (s *categoryService) GetRoots(ctx context.Context) ([]*dto.CategoryNodeResponse, error) {
	roots, err := s.categories.FindRoots(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryNodeResponse, 0, len(roots))
	for _, c := range roots {
		result = append(result, &dto.CategoryNodeResponse{
			Id:       c.Id,
			Name:     c.Name,
			ParentId: c.ParentId,
			Children: make([]*dto.CategoryNodeResponse, 0),
		})
	}
	return result, nil
}

func (s *categoryService) GetChildren(ctx context.Context, parentId uuid.UUID) ([]*dto.CategoryNodeResponse, error) {
	children, err := s.categories.FindChildren(ctx, parentId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryNodeResponse, 0, len(children))
	for _, c := range children {
		result = append(result, &dto.CategoryNodeResponse{
			Id:       c.Id,
			Name:     c.Name,
			ParentId: c.ParentId,
			Children: make([]*dto.CategoryNodeResponse, 0),
		})
	}
	return result, nil
}
