package category

import (
	"context"
	"strings"

	"ai-shopping-be/internal/repository/contract"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// matchThreshold is the minimum trigram similarity for a label to count as
// a category hit. At or below it the search runs without a category filter.
const matchThreshold = 0.3

// Resolver maps a free-text category label to a catalog category node plus
// every descendant of that node.
type Resolver struct {
	categories contract.CategoryRepository
	log        *zap.Logger
}

func NewResolver(categories contract.CategoryRepository, log *zap.Logger) *Resolver {
	return &Resolver{
		categories: categories,
		log:        log,
	}
}

// Resolve returns the matched node id and all descendant ids, or an empty
// set when the label matches nothing well enough.
func (r *Resolver) Resolve(ctx context.Context, label string) ([]uuid.UUID, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}

	match, err := r.categories.FindBestNameMatch(ctx, label)
	if err != nil {
		return nil, err
	}
	if match == nil || match.Similarity <= matchThreshold {
		r.log.Debug("no category match above threshold, searching unfiltered",
			zap.String("label", label))
		return nil, nil
	}

	return r.collectDescendants(ctx, match.Category.Id)
}

// Descendants returns rootId plus every descendant id. Catalog listing uses
// this to filter by a category subtree the same way search does.
func (r *Resolver) Descendants(ctx context.Context, rootId uuid.UUID) ([]uuid.UUID, error) {
	return r.collectDescendants(ctx, rootId)
}

// collectDescendants walks the tree breadth-first with a visited set.
// The category table is supposed to be a tree, but a cyclic parent edge in
// malformed data must terminate the walk, not hang the request.
func (r *Resolver) collectDescendants(ctx context.Context, rootId uuid.UUID) ([]uuid.UUID, error) {
	visited := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	queue := []uuid.UUID{rootId}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true
		ids = append(ids, current)

		children, err := r.categories.FindChildren(ctx, current)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if !visited[child.Id] {
				queue = append(queue, child.Id)
			}
		}
	}

	return ids, nil
}
