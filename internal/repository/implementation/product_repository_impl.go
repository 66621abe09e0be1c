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
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var m model.Product
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("MallInfo"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var models []*model.Product
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("MallInfo"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Product{}).Count(&count).Error
	return count, err
}

// SearchByVector runs the pgvector nearest-neighbour scan.
// Cosine distance operator: spec_embedding <=> query_vector, ascending = closest first.
// Rows without an embedding are excluded so the HNSW index stays usable.
func (r *ProductRepositoryImpl) SearchByVector(ctx context.Context, embedding []float32, filter contract.VectorSearchFilter) ([]*contract.ScoredProduct, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	type result struct {
		model.Product
		Distance float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("products").
		Select("products.*, spec_embedding <=> ? AS distance", queryVector).
		Where("products.deleted_at IS NULL").
		Where("products.spec_embedding IS NOT NULL")

	if len(filter.CategoryIds) > 0 {
		query = query.Where("products.category_id IN ?", filter.CategoryIds)
	}
	if len(filter.ExcludedStatuses) > 0 {
		query = query.Where("products.status NOT IN ?", filter.ExcludedStatuses)
	}
	if filter.MinPrice != nil {
		query = query.Where("products.lowest_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.lowest_price <= ?", *filter.MaxPrice)
	}

	err := query.
		Order("distance ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	// Scan bypasses Preload, so storefront rows are attached in a second pass
	ids := make([]uuid.UUID, len(results))
	for i, res := range results {
		ids[i] = res.Product.Id
	}
	mallByProduct, err := r.loadMallInfo(ctx, ids)
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredProduct, len(results))
	for i, res := range results {
		p := res.Product
		p.MallInfo = mallByProduct[p.Id]
		scored[i] = &contract.ScoredProduct{
			Product:  r.mapper.ToEntity(&p),
			Distance: res.Distance,
		}
	}
	return scored, nil
}

func (r *ProductRepositoryImpl) loadMallInfo(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]model.MallInformation, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []model.MallInformation
	if err := r.db.WithContext(ctx).
		Where("product_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	byProduct := make(map[uuid.UUID][]model.MallInformation, len(rows))
	for _, row := range rows {
		byProduct[row.ProductId] = append(byProduct[row.ProductId], row)
	}
	return byProduct, nil
}
