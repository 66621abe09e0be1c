package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-shopping-be/internal/constant"
	"ai-shopping-be/pkg/llm"
	"ai-shopping-be/pkg/research"

	"go.uber.org/zap"
)

// SurveyResponse is one answered survey question as the client sent it back.
type SurveyResponse struct {
	QuestionId int
	Question   string
	Answer     string
}

// Intent is the structured interpretation of a query plus survey answers.
// Derived once per recommendation request, never persisted.
type Intent struct {
	CategoryLabel string
	SearchText    string
	Keywords      []string
	Priorities    map[string]int // genre -> score in [0,10]
	MinPrice      *int           // nil = no lower bound
	MaxPrice      *int           // nil = no upper bound
	NeedsSummary  string
}

// Analyzer turns the query and answer set into an Intent via one LLM call,
// retried once on failure. Unlike survey generation there is no safe default
// intent, so a second failure surfaces ErrIntentUnavailable and the caller
// aborts the recommendation request.
type Analyzer struct {
	provider llm.LLMProvider
	log      *zap.Logger
}

func NewAnalyzer(provider llm.LLMProvider, log *zap.Logger) *Analyzer {
	return &Analyzer{
		provider: provider,
		log:      log,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, userQuery string, answers []SurveyResponse) (*Intent, error) {
	prompt := fmt.Sprintf(constant.IntentAnalysisPrompt, userQuery, formatAnswers(answers))

	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		response, err := a.provider.Generate(ctx, prompt, llm.WithTemperature(0))
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", research.ErrCollaboratorUnavailable, err)
			a.log.Warn("intent analysis call failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		parsed, err := parseIntent(response)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", research.ErrMalformedResponse, err)
			a.log.Warn("intent analysis returned unusable output", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		return sanitize(parsed, userQuery), nil
	}

	return nil, fmt.Errorf("%w: %v", research.ErrIntentUnavailable, lastErr)
}

type rawIntent struct {
	Category    string             `json:"category"`
	SearchQuery string             `json:"search_query"`
	Keywords    []string           `json:"keywords"`
	Priorities  map[string]float64 `json:"priorities"`
	MinPrice    *float64           `json:"min_price"`
	MaxPrice    *float64           `json:"max_price"`
	UserNeeds   string             `json:"user_needs"`
}

func parseIntent(response string) (*rawIntent, error) {
	payload := extractJSON(response)
	if payload == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var parsed rawIntent
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

// sanitize enforces the Intent field domains. Priorities clamp to [0,10],
// negative prices are treated as absent, empty text fields fall back to the
// raw user query.
func sanitize(raw *rawIntent, userQuery string) *Intent {
	intent := &Intent{
		CategoryLabel: strings.TrimSpace(raw.Category),
		SearchText:    strings.TrimSpace(raw.SearchQuery),
		Keywords:      raw.Keywords,
		Priorities:    make(map[string]int, len(raw.Priorities)),
		NeedsSummary:  strings.TrimSpace(raw.UserNeeds),
	}

	if intent.SearchText == "" {
		intent.SearchText = userQuery
	}
	if intent.NeedsSummary == "" {
		intent.NeedsSummary = userQuery
	}
	if len(intent.Keywords) == 0 {
		intent.Keywords = []string{userQuery}
	}

	for genre, score := range raw.Priorities {
		intent.Priorities[genre] = clampScore(int(score))
	}

	intent.MinPrice = sanitizePrice(raw.MinPrice)
	intent.MaxPrice = sanitizePrice(raw.MaxPrice)

	// A reversed range is a model mistake, not a constraint
	if intent.MinPrice != nil && intent.MaxPrice != nil && *intent.MinPrice > *intent.MaxPrice {
		intent.MinPrice, intent.MaxPrice = intent.MaxPrice, intent.MinPrice
	}

	return intent
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func sanitizePrice(price *float64) *int {
	if price == nil || *price < 0 {
		return nil
	}
	v := int(*price)
	return &v
}

func formatAnswers(answers []SurveyResponse) string {
	if len(answers) == 0 {
		return "(no answers provided)"
	}

	var sb strings.Builder
	for _, ans := range answers {
		sb.WriteString(fmt.Sprintf("Q%d: %s -> A: %s\n", ans.QuestionId, ans.Question, ans.Answer))
	}
	return sb.String()
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
