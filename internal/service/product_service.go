package service

import (
	"context"
	"errors"

	"ai-shopping-be/internal/constant"
	"ai-shopping-be/internal/dto"
	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/internal/repository/specification"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

const defaultPageSize = 20

type IProductService interface {
	List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error)
	Show(ctx context.Context, productCode string) (*dto.ProductResponse, error)
}

// categoryExpander turns a category id into the id set of its subtree.
type categoryExpander interface {
	Descendants(ctx context.Context, rootId uuid.UUID) ([]uuid.UUID, error)
}

type productService struct {
	products   contract.ProductRepository
	categories categoryExpander
}

func NewProductService(products contract.ProductRepository, categories categoryExpander) IProductService {
	return &productService{
		products:   products,
		categories: categories,
	}
}

func (s *productService) List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	filters := make([]specification.Specification, 0)
	if req.Search != "" {
		filters = append(filters, specification.NameOrBrandContains{Text: req.Search})
	}
	if req.Brand != "" {
		filters = append(filters, specification.BrandContains{Brand: req.Brand})
	}
	if req.CategoryId != nil {
		// Filtering by a category covers its whole subtree
		categoryIds, err := s.categories.Descendants(ctx, *req.CategoryId)
		if err != nil {
			return nil, err
		}
		filters = append(filters, specification.CategoryIn{Ids: categoryIds})
	}
	if req.MinPrice != nil || req.MaxPrice != nil {
		filters = append(filters, specification.PriceBetween{Min: req.MinPrice, Max: req.MaxPrice})
	}
	if req.InStockOnly {
		filters = append(filters, specification.StatusNotIn{Statuses: constant.ExcludedProductStatuses})
	}

	total, err := s.products.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters, sortSpecs(req.Sort)...)
	specs = append(specs, specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize})

	products, err := s.products.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}

	return &dto.ListProductsResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func sortSpecs(sort string) []specification.Specification {
	switch sort {
	case constant.ProductSortPriceLow:
		return []specification.Specification{specification.OrderBy{Field: "lowest_price"}}
	case constant.ProductSortPriceHigh:
		return []specification.Specification{specification.OrderBy{Field: "lowest_price", Desc: true}}
	case constant.ProductSortPopular:
		return []specification.Specification{
			specification.OrderBy{Field: "review_count", Desc: true},
			specification.OrderBy{Field: "review_rating", Desc: true},
		}
	default: // newest
		return []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	}
}

func (s *productService) Show(ctx context.Context, productCode string) (*dto.ProductResponse, error) {
	product, err := s.products.FindOne(ctx, specification.ByProductCode{Code: productCode})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	var imageURL, detailURL *string
	if p.MallInfo != nil {
		imageURL = &p.MallInfo.RepresentativeImageURL
		detailURL = &p.MallInfo.ProductPageURL
	}

	return &dto.ProductResponse{
		Id:           p.Id,
		ProductCode:  p.ProductCode,
		Name:         p.Name,
		Brand:        p.Brand,
		LowestPrice:  p.LowestPrice,
		Status:       p.Status,
		ReviewCount:  p.ReviewCount,
		ReviewRating: p.ReviewRating,
		SpecSummary:  p.SpecSummary(),
		CategoryId:   p.CategoryId,
		ImageURL:     imageURL,
		DetailURL:    detailURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
