package category

import (
	"context"
	"testing"

	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/internal/repository/specification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeCategoryRepo struct {
	match    *contract.CategoryMatch
	children map[uuid.UUID][]*entity.Category
	calls    int
}

func (f *fakeCategoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindRoots(ctx context.Context) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindChildren(ctx context.Context, parentId uuid.UUID) ([]*entity.Category, error) {
	f.calls++
	return f.children[parentId], nil
}

func (f *fakeCategoryRepo) FindBestNameMatch(ctx context.Context, name string) (*contract.CategoryMatch, error) {
	return f.match, nil
}

func TestResolveEmptyLabel(t *testing.T) {
	resolver := NewResolver(&fakeCategoryRepo{}, zap.NewNop())

	ids, err := resolver.Resolve(context.Background(), "   ")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if ids != nil {
		t.Errorf("ids = %v, want nil", ids)
	}
}

func TestResolveBelowThreshold(t *testing.T) {
	repo := &fakeCategoryRepo{
		match: &contract.CategoryMatch{
			Category:   &entity.Category{Id: uuid.New(), Name: "laptop"},
			Similarity: 0.3, // threshold is exclusive
		},
	}
	resolver := NewResolver(repo, zap.NewNop())

	ids, err := resolver.Resolve(context.Background(), "laptop")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}
	if repo.calls != 0 {
		t.Errorf("tree walked %d times below threshold, want 0", repo.calls)
	}
}

func TestResolveCollectsDescendants(t *testing.T) {
	root := uuid.New()
	childA := uuid.New()
	childB := uuid.New()
	grandchild := uuid.New()

	repo := &fakeCategoryRepo{
		match: &contract.CategoryMatch{
			Category:   &entity.Category{Id: root, Name: "laptop"},
			Similarity: 0.9,
		},
		children: map[uuid.UUID][]*entity.Category{
			root:   {{Id: childA}, {Id: childB}},
			childA: {{Id: grandchild}},
		},
	}
	resolver := NewResolver(repo, zap.NewNop())

	ids, err := resolver.Resolve(context.Background(), "laptop")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(ids) != 4 {
		t.Fatalf("ids = %d, want 4", len(ids))
	}

	want := map[uuid.UUID]bool{root: true, childA: true, childB: true, grandchild: true}
	for _, id := range ids {
		if !want[id] {
			t.Errorf("unexpected id %s", id)
		}
	}
}

func TestResolveTerminatesOnCycle(t *testing.T) {
	nodeA := uuid.New()
	nodeB := uuid.New()

	// A claims B as a child, and B claims A back: malformed cyclic data
	repo := &fakeCategoryRepo{
		match: &contract.CategoryMatch{
			Category:   &entity.Category{Id: nodeA, Name: "laptop"},
			Similarity: 0.9,
		},
		children: map[uuid.UUID][]*entity.Category{
			nodeA: {{Id: nodeB}},
			nodeB: {{Id: nodeA}},
		},
	}
	resolver := NewResolver(repo, zap.NewNop())

	ids, err := resolver.Resolve(context.Background(), "laptop")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("ids = %d, want exactly 2 (each node once)", len(ids))
	}
}
