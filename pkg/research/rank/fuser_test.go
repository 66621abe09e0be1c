package rank

import (
	"testing"

	"ai-shopping-be/internal/entity"
	"ai-shopping-be/pkg/research/search"
)

func makeCandidate(code string, similarity float64, reviewCount int, rating float64) *search.Candidate {
	return &search.Candidate{
		Product: &entity.Product{
			ProductCode:  code,
			ReviewCount:  reviewCount,
			ReviewRating: &rating,
		},
		Similarity: similarity,
	}
}

func TestFuseOrdersByScoreThenReviews(t *testing.T) {
	fuser := NewFuser(1.0, 0.60, 5)

	results, _ := fuser.Fuse([]*search.Candidate{
		makeCandidate("a", 0.9, 10, 4.0),
		makeCandidate("b", 0.9, 50, 3.0),
		makeCandidate("c", 0.7, 500, 5.0),
	})

	want := []string{"b", "a", "c"}
	for i, code := range want {
		if results[i].Product.ProductCode != code {
			t.Errorf("position %d = %s, want %s", i, results[i].Product.ProductCode, code)
		}
	}
}

func TestFuseBreaksFullTieByRating(t *testing.T) {
	fuser := NewFuser(1.0, 0.60, 5)

	results, _ := fuser.Fuse([]*search.Candidate{
		makeCandidate("low", 0.8, 10, 3.5),
		makeCandidate("high", 0.8, 10, 4.5),
	})

	if results[0].Product.ProductCode != "high" {
		t.Errorf("first = %s, want high", results[0].Product.ProductCode)
	}
}

func TestFuseNilRatingSortsAsZero(t *testing.T) {
	fuser := NewFuser(1.0, 0.60, 5)

	noRating := &search.Candidate{
		Product:    &entity.Product{ProductCode: "unrated", ReviewCount: 10},
		Similarity: 0.8,
	}
	results, _ := fuser.Fuse([]*search.Candidate{
		noRating,
		makeCandidate("rated", 0.8, 10, 1.0),
	})

	if results[0].Product.ProductCode != "rated" {
		t.Errorf("first = %s, want rated", results[0].Product.ProductCode)
	}
}

func TestFuseCapsAtTopK(t *testing.T) {
	fuser := NewFuser(1.0, 0.60, 5)

	candidates := make([]*search.Candidate, 0, 10)
	for i := 0; i < 10; i++ {
		candidates = append(candidates, makeCandidate(string(rune('a'+i)), 0.95, i, 4.0))
	}

	results, floorMet := fuser.Fuse(candidates)
	if len(results) != 5 {
		t.Fatalf("len = %d, want 5", len(results))
	}
	if !floorMet {
		t.Error("floorMet = false, want true")
	}
}

func TestFuseRelaxesFloorWhenFewSurvive(t *testing.T) {
	fuser := NewFuser(1.0, 0.60, 5)

	results, floorMet := fuser.Fuse([]*search.Candidate{
		makeCandidate("a", 0.9, 1, 4.0),
		makeCandidate("b", 0.4, 1, 4.0),
		makeCandidate("c", 0.3, 1, 4.0),
	})

	if len(results) != 3 {
		t.Fatalf("len = %d, want 3 (floor relaxed)", len(results))
	}
	if floorMet {
		t.Error("floorMet = true, want false")
	}
}

func TestFuseAssignsUniqueRanks(t *testing.T) {
	fuser := NewFuser(1.0, 0.60, 5)

	results, _ := fuser.Fuse([]*search.Candidate{
		makeCandidate("a", 0.9, 1, 4.0),
		makeCandidate("b", 0.8, 1, 4.0),
		makeCandidate("c", 0.7, 1, 4.0),
	})

	seen := make(map[int]bool)
	for i, r := range results {
		if r.Rank != i+1 {
			t.Errorf("rank at position %d = %d, want %d", i, r.Rank, i+1)
		}
		if seen[r.Rank] {
			t.Errorf("duplicate rank %d", r.Rank)
		}
		seen[r.Rank] = true
	}
}

func TestFuseEmptyCandidates(t *testing.T) {
	fuser := NewFuser(1.0, 0.60, 5)

	results, floorMet := fuser.Fuse(nil)
	if len(results) != 0 {
		t.Fatalf("len = %d, want 0", len(results))
	}
	if !floorMet {
		t.Error("floorMet = false for empty input, want true")
	}
}

func TestFuseAppliesVectorWeight(t *testing.T) {
	fuser := NewFuser(0.5, 0.0, 5)

	results, _ := fuser.Fuse([]*search.Candidate{
		makeCandidate("a", 0.8, 1, 4.0),
	})

	if results[0].Combined != 0.4 {
		t.Errorf("combined = %f, want 0.4", results[0].Combined)
	}
}
