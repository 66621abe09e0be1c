package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ai-shopping-be/internal/dto"
	"ai-shopping-be/internal/entity"
	"ai-shopping-be/pkg/research"
	"ai-shopping-be/pkg/research/explain"
	"ai-shopping-be/pkg/research/intent"
	"ai-shopping-be/pkg/research/rank"
	"ai-shopping-be/pkg/research/search"
	"ai-shopping-be/pkg/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Fakes ---

type fakeSessionStore struct {
	sessions map[string]*store.SearchSession
}

func newFakeSessionStore(ids ...string) *fakeSessionStore {
	f := &fakeSessionStore{sessions: make(map[string]*store.SearchSession)}
	for _, id := range ids {
		f.sessions[id] = &store.SearchSession{Id: id, UserQuery: "q", CreatedAt: time.Now()}
	}
	return f
}

func (f *fakeSessionStore) Save(ctx context.Context, session *store.SearchSession) error {
	f.sessions[session.Id] = session
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, sessionId string) (*store.SearchSession, bool, error) {
	s, ok := f.sessions[sessionId]
	return s, ok, nil
}

type fakeGenerator struct {
	session *store.SearchSession
	err     error
	calls   int
}

func (f *fakeGenerator) Generate(ctx context.Context, userQuery string) (*store.SearchSession, error) {
	f.calls++
	return f.session, f.err
}

type fakeAnalyzer struct {
	intent *intent.Intent
	err    error
	calls  int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, userQuery string, answers []intent.SurveyResponse) (*intent.Intent, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.intent, nil
}

type fakeResolver struct {
	ids   []uuid.UUID
	calls int
}

func (f *fakeResolver) Resolve(ctx context.Context, label string) ([]uuid.UUID, error) {
	f.calls++
	return f.ids, nil
}

type fakeEngine struct {
	candidates []*search.Candidate
	calls      int
}

func (f *fakeEngine) Search(ctx context.Context, in *intent.Intent, categoryIds []uuid.UUID) ([]*search.Candidate, error) {
	f.calls++
	return f.candidates, nil
}

type fakeExplainer struct {
	calls int
}

func (f *fakeExplainer) Explain(ctx context.Context, userQuery, userNeeds string, shortlist []*rank.FusedResult) map[string]*explain.Explanation {
	f.calls++
	result := make(map[string]*explain.Explanation, len(shortlist))
	for _, item := range shortlist {
		result[item.Product.ProductCode] = &explain.Explanation{
			RecommendationReason: "reason for " + item.Product.ProductCode,
			AIReviewSummary:      "summary for " + item.Product.ProductCode,
		}
	}
	return result
}

type fakePublisher struct {
	payloads [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

type harness struct {
	service   IResearchService
	sessions  *fakeSessionStore
	generator *fakeGenerator
	analyzer  *fakeAnalyzer
	resolver  *fakeResolver
	engine    *fakeEngine
	explainer *fakeExplainer
	publisher *fakePublisher
}

func newHarness(sessions *fakeSessionStore, candidates []*search.Candidate) *harness {
	h := &harness{
		sessions:  sessions,
		generator: &fakeGenerator{},
		analyzer:  &fakeAnalyzer{intent: &intent.Intent{CategoryLabel: "laptop", SearchText: "laptop", NeedsSummary: "needs"}},
		resolver:  &fakeResolver{},
		engine:    &fakeEngine{candidates: candidates},
		explainer: &fakeExplainer{},
		publisher: &fakePublisher{},
	}

	h.service = NewResearchService(
		sessions,
		h.generator,
		h.analyzer,
		h.resolver,
		h.engine,
		rank.NewFuser(1.0, 0.60, 5),
		h.explainer,
		h.publisher,
		zap.NewNop(),
	)
	return h
}

func makeCandidate(code string, similarity float64, price, reviews int) *search.Candidate {
	return &search.Candidate{
		Product: &entity.Product{
			Id:          uuid.New(),
			ProductCode: code,
			Name:        "Product " + code,
			Brand:       "Brand",
			LowestPrice: price,
			ReviewCount: reviews,
		},
		Similarity: similarity,
	}
}

// --- Tests ---

func TestGetRecommendationsUnknownSession(t *testing.T) {
	h := newHarness(newFakeSessionStore(), nil)

	_, err := h.service.GetRecommendations(context.Background(), nil, &dto.GetRecommendationsRequest{
		SearchId:  "sr-deadbeef",
		UserQuery: "laptop",
	})
	if !errors.Is(err, research.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}

	if h.analyzer.calls+h.resolver.calls+h.engine.calls+h.explainer.calls != 0 {
		t.Error("collaborators were called for an unknown session")
	}
	if len(h.publisher.payloads) != 0 {
		t.Error("event published for a rejected request")
	}
}

func TestGetRecommendationsEmptyCandidates(t *testing.T) {
	h := newHarness(newFakeSessionStore("sr-12345678"), nil)

	res, err := h.service.GetRecommendations(context.Background(), nil, &dto.GetRecommendationsRequest{
		SearchId:  "sr-12345678",
		UserQuery: "laptop",
	})
	if err != nil {
		t.Fatalf("err = %v, empty candidates are not an error", err)
	}
	if len(res.Product) != 0 {
		t.Errorf("products = %d, want 0", len(res.Product))
	}
	if h.explainer.calls != 0 {
		t.Error("explainer called for an empty shortlist")
	}

	// The run still counts as a search
	if len(h.publisher.payloads) != 1 {
		t.Fatalf("published = %d events, want 1", len(h.publisher.payloads))
	}
	var msg dto.SearchCompletedMessage
	if err := json.Unmarshal(h.publisher.payloads[0], &msg); err != nil {
		t.Fatalf("bad event payload: %v", err)
	}
	if msg.ResultCount != 0 {
		t.Errorf("result count = %d, want 0", msg.ResultCount)
	}
}

func TestGetRecommendationsIntentFailureAborts(t *testing.T) {
	h := newHarness(newFakeSessionStore("sr-12345678"), nil)
	h.analyzer.err = research.ErrIntentUnavailable

	_, err := h.service.GetRecommendations(context.Background(), nil, &dto.GetRecommendationsRequest{
		SearchId:  "sr-12345678",
		UserQuery: "laptop",
	})
	if !errors.Is(err, research.ErrIntentUnavailable) {
		t.Fatalf("err = %v, want ErrIntentUnavailable", err)
	}
	if h.engine.calls != 0 {
		t.Error("search ran without an intent")
	}
}

func TestGetRecommendationsLowestPriceTies(t *testing.T) {
	h := newHarness(newFakeSessionStore("sr-12345678"), []*search.Candidate{
		makeCandidate("a", 0.95, 100000, 30),
		makeCandidate("b", 0.90, 100000, 20),
		makeCandidate("c", 0.85, 150000, 10),
	})

	res, err := h.service.GetRecommendations(context.Background(), nil, &dto.GetRecommendationsRequest{
		SearchId:  "sr-12345678",
		UserQuery: "laptop",
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(res.Product) != 3 {
		t.Fatalf("products = %d, want 3", len(res.Product))
	}

	for _, p := range res.Product {
		wantLowest := p.Price == 100000
		if p.OptimalProductInfo.IsLowestPrice != wantLowest {
			t.Errorf("%s is_lowest_price = %v, want %v (price %d)",
				p.ProductCode, p.OptimalProductInfo.IsLowestPrice, wantLowest, p.Price)
		}
	}
}

func TestGetRecommendationsCapsAtFiveWithUniqueRanks(t *testing.T) {
	candidates := make([]*search.Candidate, 0, 7)
	for i := 0; i < 7; i++ {
		candidates = append(candidates, makeCandidate(string(rune('a'+i)), 0.95-float64(i)*0.01, 100000+i, i))
	}
	h := newHarness(newFakeSessionStore("sr-12345678"), candidates)

	res, err := h.service.GetRecommendations(context.Background(), nil, &dto.GetRecommendationsRequest{
		SearchId:  "sr-12345678",
		UserQuery: "laptop",
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(res.Product) != 5 {
		t.Fatalf("products = %d, want 5", len(res.Product))
	}

	seen := make(map[int]bool)
	for i, p := range res.Product {
		if p.OptimalProductInfo.MatchRank != i+1 {
			t.Errorf("rank at %d = %d, want %d", i, p.OptimalProductInfo.MatchRank, i+1)
		}
		if seen[p.OptimalProductInfo.MatchRank] {
			t.Errorf("duplicate rank %d", p.OptimalProductInfo.MatchRank)
		}
		seen[p.OptimalProductInfo.MatchRank] = true

		if p.RecommendationReason == "" || p.AIReviewSummary == "" {
			t.Errorf("%s missing explanation text", p.ProductCode)
		}
	}
}

func TestGetRecommendationsAttributesUser(t *testing.T) {
	h := newHarness(newFakeSessionStore("sr-12345678"), []*search.Candidate{
		makeCandidate("a", 0.95, 100000, 30),
	})

	userId := uuid.New()
	_, err := h.service.GetRecommendations(context.Background(), &userId, &dto.GetRecommendationsRequest{
		SearchId:  "sr-12345678",
		UserQuery: "laptop",
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	var msg dto.SearchCompletedMessage
	if err := json.Unmarshal(h.publisher.payloads[0], &msg); err != nil {
		t.Fatalf("bad event payload: %v", err)
	}
	if msg.UserId == nil || *msg.UserId != userId {
		t.Errorf("event user id = %v, want %s", msg.UserId, userId)
	}
	if msg.ResultCount != 1 {
		t.Errorf("result count = %d, want 1", msg.ResultCount)
	}
}

func TestGenerateQuestionsPassthrough(t *testing.T) {
	h := newHarness(newFakeSessionStore(), nil)
	h.generator.session = &store.SearchSession{
		Id: "sr-aabbccdd",
		Questions: []store.SurveyQuestion{
			{QuestionId: 1, Question: "q1", Options: []store.SurveyOption{{Id: 1, Label: "a"}}},
		},
	}

	res, err := h.service.GenerateQuestions(context.Background(), &dto.GenerateQuestionsRequest{UserQuery: "laptop"})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if res.SearchId != "sr-aabbccdd" {
		t.Errorf("search id = %q", res.SearchId)
	}
	if len(res.Questions) != 1 {
		t.Errorf("questions = %d, want 1", len(res.Questions))
	}
}

func TestPerformanceScoreCapsAtOne(t *testing.T) {
	rating := 5.0
	p := &entity.Product{ReviewCount: 5000, ReviewRating: &rating}

	if got := performanceScore(p, 1.0); got != 1.0 {
		t.Errorf("performanceScore = %f, want capped at 1.0", got)
	}
}

func TestPerformanceScoreBlendsSignals(t *testing.T) {
	rating := 2.5
	p := &entity.Product{ReviewCount: 100, ReviewRating: &rating}

	// 0.5*0.7 + 2.5/25 + 100/1000 = 0.35 + 0.1 + 0.1
	want := 0.55
	if got := performanceScore(p, 0.5); got != want {
		t.Errorf("performanceScore = %f, want %f", got, want)
	}
}
