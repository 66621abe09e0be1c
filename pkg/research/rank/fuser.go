package rank

import (
	"sort"

	"ai-shopping-be/internal/entity"
	"ai-shopping-be/pkg/research/search"
)

// FusedResult is one ranked shortlist entry.
type FusedResult struct {
	Product    *entity.Product
	Similarity float64
	Combined   float64
	Rank       int // 1..K by final sort position
}

// Fuser combines per-candidate signals into one ranked list and cuts it to
// the shortlist size. Tuning values come from configuration so tests can
// vary thresholds per case.
type Fuser struct {
	vectorWeight  float64
	minSimilarity float64
	topK          int
}

func NewFuser(vectorWeight, minSimilarity float64, topK int) *Fuser {
	return &Fuser{
		vectorWeight:  vectorWeight,
		minSimilarity: minSimilarity,
		topK:          topK,
	}
}

// Fuse scores, sorts and cuts the candidate list. The second return value
// reports whether every returned result cleared the similarity floor; a
// false value lets callers soften confidence language upstream.
func (f *Fuser) Fuse(candidates []*search.Candidate) ([]*FusedResult, bool) {
	results := make([]*FusedResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, &FusedResult{
			Product:    c.Product,
			Similarity: c.Similarity,
			// A keyword score joins this sum at its own weight once it exists
			Combined: f.vectorWeight * c.Similarity,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Combined != results[j].Combined {
			return results[i].Combined > results[j].Combined
		}
		if results[i].Product.ReviewCount != results[j].Product.ReviewCount {
			return results[i].Product.ReviewCount > results[j].Product.ReviewCount
		}
		return ratingOrZero(results[i].Product) > ratingOrZero(results[j].Product)
	})

	aboveFloor := make([]*FusedResult, 0, len(results))
	for _, r := range results {
		if r.Combined >= f.minSimilarity {
			aboveFloor = append(aboveFloor, r)
		}
	}

	// Too few confident results: the floor is dropped entirely so the caller
	// still gets up to K items whenever any candidates exist
	shortlist := aboveFloor
	if len(aboveFloor) < f.topK {
		shortlist = results
	}
	if len(shortlist) > f.topK {
		shortlist = shortlist[:f.topK]
	}

	floorMet := true
	for i, r := range shortlist {
		r.Rank = i + 1
		if r.Combined < f.minSimilarity {
			floorMet = false
		}
	}

	return shortlist, floorMet
}

func ratingOrZero(p *entity.Product) float64 {
	if p.ReviewRating == nil {
		return 0
	}
	return *p.ReviewRating
}
