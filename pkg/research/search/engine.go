package search

import (
	"context"

	"ai-shopping-be/internal/constant"
	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/pkg/embedding"
	"ai-shopping-be/pkg/research/intent"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Candidate is a catalog item with its normalized similarity to the query.
type Candidate struct {
	Product    *entity.Product
	Similarity float64 // in [0,1], 1 = identical direction
}

// Engine embeds the intent's search text and retrieves the nearest catalog
// items within the intent's hard filters.
type Engine struct {
	embedder embedding.EmbeddingProvider
	products contract.ProductRepository
	limit    int
	log      *zap.Logger
}

func NewEngine(embedder embedding.EmbeddingProvider, products contract.ProductRepository, limit int, log *zap.Logger) *Engine {
	return &Engine{
		embedder: embedder,
		products: products,
		limit:    limit,
		log:      log,
	}
}

// Search returns up to limit candidates ordered by ascending distance.
// An embedding failure degrades to "no candidates" instead of failing the
// request; a vector index failure is a real error.
func (e *Engine) Search(ctx context.Context, in *intent.Intent, categoryIds []uuid.UUID) ([]*Candidate, error) {
	embedded, err := e.embedder.Generate(in.SearchText, "RETRIEVAL_QUERY")
	if err != nil {
		e.log.Warn("query embedding failed, returning no candidates", zap.Error(err))
		return nil, nil
	}

	scored, err := e.products.SearchByVector(ctx, embedded.Embedding.Values, contract.VectorSearchFilter{
		CategoryIds:      categoryIds,
		MinPrice:         in.MinPrice,
		MaxPrice:         in.MaxPrice,
		ExcludedStatuses: constant.ExcludedProductStatuses,
		Limit:            e.limit,
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]*Candidate, 0, len(scored))
	for _, s := range scored {
		candidates = append(candidates, &Candidate{
			Product:    s.Product,
			Similarity: distanceToSimilarity(s.Distance),
		})
	}
	return candidates, nil
}

// distanceToSimilarity maps a cosine distance in [0,2] to a [0,1] similarity.
// Out-of-domain distances clamp rather than producing scores outside [0,1].
func distanceToSimilarity(distance float64) float64 {
	s := 1.0 - distance/2.0
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
