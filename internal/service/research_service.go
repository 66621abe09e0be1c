package service

import (
	"context"
	"encoding/json"
	"math"

	"ai-shopping-be/internal/constant"
	"ai-shopping-be/internal/dto"
	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/pkg/research"
	"ai-shopping-be/pkg/research/explain"
	"ai-shopping-be/pkg/research/intent"
	"ai-shopping-be/pkg/research/rank"
	"ai-shopping-be/pkg/research/search"
	"ai-shopping-be/pkg/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IResearchService interface {
	GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error)
	GetRecommendations(ctx context.Context, userId *uuid.UUID, req *dto.GetRecommendationsRequest) (*dto.GetRecommendationsResponse, error)
}

// Collaborator contracts of the orchestrator, satisfied by the pkg/research
// components in production and by fakes in tests.
type surveyGenerator interface {
	Generate(ctx context.Context, userQuery string) (*store.SearchSession, error)
}

type intentAnalyzer interface {
	Analyze(ctx context.Context, userQuery string, answers []intent.SurveyResponse) (*intent.Intent, error)
}

type categoryResolver interface {
	Resolve(ctx context.Context, label string) ([]uuid.UUID, error)
}

type searchEngine interface {
	Search(ctx context.Context, in *intent.Intent, categoryIds []uuid.UUID) ([]*search.Candidate, error)
}

type resultFuser interface {
	Fuse(candidates []*search.Candidate) ([]*rank.FusedResult, bool)
}

type batchExplainer interface {
	Explain(ctx context.Context, userQuery, userNeeds string, shortlist []*rank.FusedResult) map[string]*explain.Explanation
}

// researchService sequences the two-step shopping research pipeline:
// survey -> intent -> category -> vector search -> fusion -> explanation.
type researchService struct {
	sessions  contract.SessionStore
	generator surveyGenerator
	analyzer  intentAnalyzer
	resolver  categoryResolver
	engine    searchEngine
	fuser     resultFuser
	explainer batchExplainer
	publisher IPublisherService
	log       *zap.Logger
}

func NewResearchService(
	sessions contract.SessionStore,
	generator surveyGenerator,
	analyzer intentAnalyzer,
	resolver categoryResolver,
	engine searchEngine,
	fuser resultFuser,
	explainer batchExplainer,
	publisher IPublisherService,
	log *zap.Logger,
) IResearchService {
	return &researchService{
		sessions:  sessions,
		generator: generator,
		analyzer:  analyzer,
		resolver:  resolver,
		engine:    engine,
		fuser:     fuser,
		explainer: explainer,
		publisher: publisher,
		log:       log,
	}
}

func (s *researchService) GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error) {
	session, err := s.generator.Generate(ctx, req.UserQuery)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateQuestionsResponse{
		SearchId:  session.Id,
		Questions: session.Questions,
	}, nil
}

func (s *researchService) GetRecommendations(ctx context.Context, userId *uuid.UUID, req *dto.GetRecommendationsRequest) (*dto.GetRecommendationsResponse, error) {
	// The session is a correlation token only; its questions are not re-read
	// for scoring. But answers against an unknown or expired survey cannot be
	// trusted, so presence is checked before any collaborator is called.
	_, found, err := s.sessions.Get(ctx, req.SearchId)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, research.ErrSessionNotFound
	}

	answers := make([]intent.SurveyResponse, 0, len(req.SurveyContents))
	for _, content := range req.SurveyContents {
		answers = append(answers, intent.SurveyResponse{
			QuestionId: content.QuestionId,
			Question:   content.Question,
			Answer:     content.Answer,
		})
	}

	in, err := s.analyzer.Analyze(ctx, req.UserQuery, answers)
	if err != nil {
		return nil, err
	}

	categoryIds, err := s.resolver.Resolve(ctx, in.CategoryLabel)
	if err != nil {
		return nil, err
	}

	candidates, err := s.engine.Search(ctx, in, categoryIds)
	if err != nil {
		return nil, err
	}

	shortlist, floorMet := s.fuser.Fuse(candidates)
	if !floorMet && len(shortlist) > 0 {
		s.log.Info("similarity floor relaxed for shortlist",
			zap.String("search_id", req.SearchId),
			zap.Int("results", len(shortlist)))
	}

	response := &dto.GetRecommendationsResponse{
		UserQuery: req.UserQuery,
		Product:   make([]*dto.RecommendedProduct, 0, len(shortlist)),
	}

	if len(shortlist) > 0 {
		explanations := s.explainer.Explain(ctx, req.UserQuery, in.NeedsSummary, shortlist)

		minPrice := shortlist[0].Product.LowestPrice
		for _, item := range shortlist[1:] {
			if item.Product.LowestPrice < minPrice {
				minPrice = item.Product.LowestPrice
			}
		}

		for _, item := range shortlist {
			response.Product = append(response.Product, s.buildRecommendation(item, explanations[item.Product.ProductCode], minPrice))
		}
	}

	s.publishCompleted(ctx, userId, req.UserQuery, len(response.Product))

	return response, nil
}

func (s *researchService) buildRecommendation(item *rank.FusedResult, ex *explain.Explanation, minPrice int) *dto.RecommendedProduct {
	p := item.Product

	var imageURL, detailURL *string
	if p.MallInfo != nil {
		imageURL = &p.MallInfo.RepresentativeImageURL
		detailURL = &p.MallInfo.ProductPageURL
	}

	reason, summary := "", ""
	if ex != nil {
		reason = ex.RecommendationReason
		summary = ex.AIReviewSummary
	}

	return &dto.RecommendedProduct{
		SimilarityScore:      round2(item.Combined),
		ProductImageURL:      imageURL,
		ProductName:          p.Name,
		ProductCode:          p.ProductCode,
		RecommendationReason: reason,
		Price:                p.LowestPrice,
		PerformanceScore:     round2(performanceScore(p, item.Combined)),
		ProductSpecs:         dto.ProductSpecs{Summary: p.SpecSummary()},
		AIReviewSummary:      summary,
		ProductDetailURL:     detailURL,
		OptimalProductInfo: dto.OptimalProductInfo{
			MatchRank:     item.Rank,
			IsLowestPrice: p.LowestPrice == minPrice,
		},
	}
}

func (s *researchService) publishCompleted(ctx context.Context, userId *uuid.UUID, query string, resultCount int) {
	payload, err := json.Marshal(dto.SearchCompletedMessage{
		UserId:      userId,
		Query:       query,
		SearchMode:  constant.SearchModeShoppingResearch,
		ResultCount: resultCount,
	})
	if err != nil {
		s.log.Error("failed to marshal search.completed message", zap.Error(err))
		return
	}

	// History is best effort; a publish failure never fails the request
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.log.Warn("failed to publish search.completed event", zap.Error(err))
	}
}

// performanceScore blends similarity with review signals into a [0,1] score.
func performanceScore(p *entity.Product, combined float64) float64 {
	rating := 0.0
	if p.ReviewRating != nil {
		rating = *p.ReviewRating
	}
	ratingScore := rating / 25                                // 0..5 -> 0..0.2
	reviewScore := math.Min(float64(p.ReviewCount)/1000, 0.1) // capped at 0.1

	return math.Min(1.0, combined*0.7+ratingScore+reviewScore)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
