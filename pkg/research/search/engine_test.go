package search

import (
	"context"
	"errors"
	"testing"

	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/internal/repository/specification"
	"ai-shopping-be/pkg/embedding"
	"ai-shopping-be/pkg/research/intent"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeEmbedder struct {
	values []float32
	err    error
	calls  int
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: f.values},
	}, nil
}

type fakeProductRepo struct {
	scored     []*contract.ScoredProduct
	err        error
	lastFilter contract.VectorSearchFilter
	calls      int
}

func (f *fakeProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (f *fakeProductRepo) SearchByVector(ctx context.Context, emb []float32, filter contract.VectorSearchFilter) ([]*contract.ScoredProduct, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.scored, nil
}

func TestSearchEmbeddingFailureReturnsNoCandidates(t *testing.T) {
	repo := &fakeProductRepo{}
	engine := NewEngine(&fakeEmbedder{err: errors.New("down")}, repo, 50, zap.NewNop())

	candidates, err := engine.Search(context.Background(), &intent.Intent{SearchText: "laptop"}, nil)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if len(candidates) != 0 {
		t.Errorf("candidates = %d, want 0", len(candidates))
	}
	if repo.calls != 0 {
		t.Errorf("vector index queried %d times after embedding failure, want 0", repo.calls)
	}
}

func TestSearchIndexFailureIsAnError(t *testing.T) {
	repo := &fakeProductRepo{err: errors.New("index down")}
	engine := NewEngine(&fakeEmbedder{values: []float32{0.1}}, repo, 50, zap.NewNop())

	_, err := engine.Search(context.Background(), &intent.Intent{SearchText: "laptop"}, nil)
	if err == nil {
		t.Fatal("err = nil, want index error")
	}
}

func TestSearchPassesFilters(t *testing.T) {
	repo := &fakeProductRepo{}
	engine := NewEngine(&fakeEmbedder{values: []float32{0.1}}, repo, 50, zap.NewNop())

	minPrice, maxPrice := 1000, 2000
	categoryIds := []uuid.UUID{uuid.New(), uuid.New()}

	_, err := engine.Search(context.Background(), &intent.Intent{
		SearchText: "laptop",
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
	}, categoryIds)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	got := repo.lastFilter
	if len(got.CategoryIds) != 2 {
		t.Errorf("category ids = %d, want 2", len(got.CategoryIds))
	}
	if got.MinPrice == nil || *got.MinPrice != 1000 {
		t.Errorf("min price = %v, want 1000", got.MinPrice)
	}
	if got.MaxPrice == nil || *got.MaxPrice != 2000 {
		t.Errorf("max price = %v, want 2000", got.MaxPrice)
	}
	if got.Limit != 50 {
		t.Errorf("limit = %d, want 50", got.Limit)
	}
	if len(got.ExcludedStatuses) == 0 {
		t.Error("excluded statuses not set")
	}
}

func TestDistanceToSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     float64
	}{
		{"identical direction", 0.0, 1.0},
		{"orthogonal", 1.0, 0.5},
		{"opposite", 2.0, 0.0},
		{"beyond domain clamps low", 2.5, 0.0},
		{"negative clamps high", -0.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := distanceToSimilarity(tt.distance); got != tt.want {
				t.Errorf("distanceToSimilarity(%f) = %f, want %f", tt.distance, got, tt.want)
			}
		})
	}
}

func TestSearchConvertsDistances(t *testing.T) {
	repo := &fakeProductRepo{
		scored: []*contract.ScoredProduct{
			{Product: &entity.Product{ProductCode: "a"}, Distance: 0.0},
			{Product: &entity.Product{ProductCode: "b"}, Distance: 0.8},
		},
	}
	engine := NewEngine(&fakeEmbedder{values: []float32{0.1}}, repo, 50, zap.NewNop())

	candidates, err := engine.Search(context.Background(), &intent.Intent{SearchText: "laptop"}, nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("candidates = %d, want 2", len(candidates))
	}
	if candidates[0].Similarity != 1.0 {
		t.Errorf("similarity[0] = %f, want 1.0", candidates[0].Similarity)
	}
	if candidates[1].Similarity != 0.6 {
		t.Errorf("similarity[1] = %f, want 0.6", candidates[1].Similarity)
	}
}
