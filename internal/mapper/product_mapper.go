package mapper

import (
	"encoding/json"
	"time"

	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	var detailSpec map[string]interface{}
	if len(p.DetailSpec) > 0 {
		// Malformed crawler JSON degrades to a nil spec, not an error
		_ = json.Unmarshal(p.DetailSpec, &detailSpec)
	}

	var mallInfo *entity.MallInformation
	for i := range p.MallInfo {
		if !p.MallInfo[i].DeletedAt.Valid {
			mallInfo = m.toMallInfoEntity(&p.MallInfo[i])
			break
		}
	}

	return &entity.Product{
		Id:           p.Id,
		ProductCode:  p.ProductCode,
		Name:         p.Name,
		Brand:        p.Brand,
		LowestPrice:  p.LowestPrice,
		Status:       p.Status,
		ReviewCount:  p.ReviewCount,
		ReviewRating: p.ReviewRating,
		DetailSpec:   detailSpec,
		HasEmbedding: p.SpecEmbedding != nil,
		CategoryId:   p.CategoryId,
		MallInfo:     mallInfo,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    p.DeletedAt.Valid,
	}
}

func (m *ProductMapper) toMallInfoEntity(mi *model.MallInformation) *entity.MallInformation {
	return &entity.MallInformation{
		Id:                     mi.Id,
		ProductId:              mi.ProductId,
		MallName:               mi.MallName,
		CurrentPrice:           mi.CurrentPrice,
		ProductPageURL:         mi.ProductPageURL,
		RepresentativeImageURL: mi.RepresentativeImageURL,
		CreatedAt:              mi.CreatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
