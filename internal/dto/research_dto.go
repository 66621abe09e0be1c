package dto

import (
	"ai-shopping-be/pkg/store"

	"github.com/google/uuid"
)

type GenerateQuestionsRequest struct {
	UserQuery string `json:"user_query" validate:"required"`
}

type GenerateQuestionsResponse struct {
	SearchId  string                 `json:"search_id"`
	Questions []store.SurveyQuestion `json:"questions"`
}

// SurveyContent is one answered survey question sent back by the client.
type SurveyContent struct {
	QuestionId int    `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

type GetRecommendationsRequest struct {
	SearchId       string          `json:"search_id" validate:"required"`
	UserQuery      string          `json:"user_query" validate:"required"`
	SurveyContents []SurveyContent `json:"survey_contents"`
}

type ProductSpecs struct {
	Summary string `json:"summary"`
}

type OptimalProductInfo struct {
	MatchRank     int  `json:"match_rank"`
	IsLowestPrice bool `json:"is_lowest_price"`
}

type RecommendedProduct struct {
	SimilarityScore      float64            `json:"similarity_score"`
	ProductImageURL      *string            `json:"product_image_url"`
	ProductName          string             `json:"product_name"`
	ProductCode          string             `json:"product_code"`
	RecommendationReason string             `json:"recommendation_reason"`
	Price                int                `json:"price"`
	PerformanceScore     float64            `json:"performance_score"`
	ProductSpecs         ProductSpecs       `json:"product_specs"`
	AIReviewSummary      string             `json:"ai_review_summary"`
	ProductDetailURL     *string            `json:"product_detail_url"`
	OptimalProductInfo   OptimalProductInfo `json:"optimal_product_info"`
}

type GetRecommendationsResponse struct {
	UserQuery string                `json:"user_query"`
	Product   []*RecommendedProduct `json:"product"`
}

// SearchCompletedMessage is the payload published after a recommendation
// request finishes; the consumer persists it as search history.
type SearchCompletedMessage struct {
	UserId      *uuid.UUID `json:"user_id"` // nil = anonymous
	Query       string     `json:"query"`
	SearchMode  string     `json:"search_mode"`
	ResultCount int        `json:"result_count"`
}
