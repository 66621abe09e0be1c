package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-shopping-be/internal/constant"
	"ai-shopping-be/internal/entity"
	"ai-shopping-be/pkg/llm"
	"ai-shopping-be/pkg/research/rank"

	"go.uber.org/zap"
)

// Explanation is the generated text pair for one shortlisted product.
type Explanation struct {
	RecommendationReason string `json:"recommendation_reason"`
	AIReviewSummary      string `json:"ai_review_summary"`
}

// Explainer generates a recommendation reason and review summary for every
// shortlisted product. One batched call covers the whole shortlist, which
// keeps the collaborator call count at O(1) instead of O(K). Items the batch
// misses are retried one by one, and an item whose fallback also fails still
// gets placeholder text so the shortlist keeps its size.
type Explainer struct {
	provider llm.LLMProvider
	log      *zap.Logger
}

func NewExplainer(provider llm.LLMProvider, log *zap.Logger) *Explainer {
	return &Explainer{
		provider: provider,
		log:      log,
	}
}

// Explain returns an explanation per product code. Never fails and never
// drops an item.
func (e *Explainer) Explain(ctx context.Context, userQuery, userNeeds string, shortlist []*rank.FusedResult) map[string]*Explanation {
	explanations := e.batchExplain(ctx, userQuery, userNeeds, shortlist)

	for _, item := range shortlist {
		code := item.Product.ProductCode
		if ex, ok := explanations[code]; ok && complete(ex) {
			ex.RecommendationReason = strings.TrimSpace(ex.RecommendationReason)
			ex.AIReviewSummary = strings.TrimSpace(ex.AIReviewSummary)
			continue
		}
		explanations[code] = e.explainOne(ctx, userQuery, userNeeds, item.Product)
	}

	return explanations
}

func (e *Explainer) batchExplain(ctx context.Context, userQuery, userNeeds string, shortlist []*rank.FusedResult) map[string]*Explanation {
	if len(shortlist) == 0 {
		return map[string]*Explanation{}
	}

	var sb strings.Builder
	for _, item := range shortlist {
		p := item.Product
		sb.WriteString(fmt.Sprintf("- code %s: %s by %s, price %d, specs: %s\n",
			p.ProductCode, p.Name, p.Brand, p.LowestPrice, specsOrPlaceholder(p)))
	}

	prompt := fmt.Sprintf(constant.BatchExplanationPrompt, userQuery, userNeeds, sb.String())

	response, err := e.provider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		e.log.Warn("batch explanation call failed, falling back per item", zap.Error(err))
		return map[string]*Explanation{}
	}

	var parsed map[string]*Explanation
	if err := json.Unmarshal([]byte(extractJSON(response)), &parsed); err != nil {
		e.log.Warn("batch explanation returned unusable output, falling back per item", zap.Error(err))
		return map[string]*Explanation{}
	}

	for code, ex := range parsed {
		if ex == nil {
			delete(parsed, code)
		}
	}
	return parsed
}

// explainOne is the per-item fallback: reason and summary as separate calls,
// each degrading to a deterministic placeholder built from catalog data.
func (e *Explainer) explainOne(ctx context.Context, userQuery, userNeeds string, product *entity.Product) *Explanation {
	specs := specsOrPlaceholder(product)

	reason, err := e.provider.Generate(ctx,
		fmt.Sprintf(constant.RecommendationReasonPrompt, userQuery, userNeeds, product.Name, product.Brand, product.LowestPrice, specs),
		llm.WithTemperature(0.3))
	if err != nil || strings.TrimSpace(reason) == "" {
		reason = fmt.Sprintf("%s의 %s은(는) 사용자의 요구사항에 적합한 제품입니다.", product.Brand, product.Name)
	}

	summary, err := e.provider.Generate(ctx,
		fmt.Sprintf(constant.ReviewSummaryPrompt, product.Name, product.Brand, product.LowestPrice, specs, userNeeds),
		llm.WithTemperature(0.3))
	if err != nil || strings.TrimSpace(summary) == "" {
		summary = fmt.Sprintf("%s은(는) 우수한 성능과 가성비를 제공합니다.", product.Name)
	}

	return &Explanation{
		RecommendationReason: strings.TrimSpace(reason),
		AIReviewSummary:      strings.TrimSpace(summary),
	}
}

func complete(ex *Explanation) bool {
	return ex != nil &&
		strings.TrimSpace(ex.RecommendationReason) != "" &&
		strings.TrimSpace(ex.AIReviewSummary) != ""
}

func specsOrPlaceholder(p *entity.Product) string {
	if specs := p.SpecSummary(); specs != "" {
		return specs
	}
	return "정보 없음"
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return response
	}

	return response[startIdx : endIdx+1]
}
