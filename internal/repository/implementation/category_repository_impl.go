package implementation

import (
	"context"
	"errors"

	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/mapper"
	"ai-shopping-be/internal/model"
	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var m model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var models []*model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CategoryRepositoryImpl) FindRoots(ctx context.Context) ([]*entity.Category, error) {
	var models []*model.Category
	if err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("name ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CategoryRepositoryImpl) FindChildren(ctx context.Context, parentId uuid.UUID) ([]*entity.Category, error) {
	var models []*model.Category
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentId).
		Order("name ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// FindBestNameMatch returns the node whose name scores highest under the
// pg_trgm similarity() function. Requires the pg_trgm extension and a GIN
// trigram index on categories.name.
func (r *CategoryRepositoryImpl) FindBestNameMatch(ctx context.Context, name string) (*contract.CategoryMatch, error) {
	type result struct {
		model.Category
		Similarity float64
	}
	var results []result

	err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.*, similarity(name, ?) AS similarity", name).
		Where("deleted_at IS NULL").
		Order("similarity DESC").
		Limit(1).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &contract.CategoryMatch{
		Category:   r.mapper.ToEntity(&results[0].Category),
		Similarity: results[0].Similarity,
	}, nil
}
