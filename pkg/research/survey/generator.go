package survey

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-shopping-be/internal/constant"
	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/pkg/llm"
	"ai-shopping-be/pkg/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const questionCount = 4

// Generator produces the clarifying survey for a user query and opens a
// search session for it. Generation never fails outward: any LLM or parse
// problem falls back to the fixed default survey.
type Generator struct {
	provider llm.LLMProvider
	sessions contract.SessionStore
	log      *zap.Logger
}

func NewGenerator(provider llm.LLMProvider, sessions contract.SessionStore, log *zap.Logger) *Generator {
	return &Generator{
		provider: provider,
		sessions: sessions,
		log:      log,
	}
}

func (g *Generator) Generate(ctx context.Context, userQuery string) (*store.SearchSession, error) {
	session := &store.SearchSession{
		Id:        newSearchId(),
		UserQuery: userQuery,
		Questions: g.generateQuestions(ctx, userQuery),
		CreatedAt: time.Now(),
	}

	if err := g.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save search session: %w", err)
	}
	return session, nil
}

func (g *Generator) generateQuestions(ctx context.Context, userQuery string) []store.SurveyQuestion {
	prompt := fmt.Sprintf(constant.QuestionGenerationPrompt, userQuery)

	response, err := g.provider.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		g.log.Warn("question generation failed, using default survey", zap.Error(err))
		return DefaultQuestions()
	}

	questions, err := parseQuestions(response)
	if err != nil {
		g.log.Warn("question generation returned unusable output, using default survey", zap.Error(err))
		return DefaultQuestions()
	}
	return questions
}

type generatedQuestion struct {
	QuestionId int      `json:"question_id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
}

func parseQuestions(response string) ([]store.SurveyQuestion, error) {
	var parsed struct {
		Questions []generatedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(extractJSON(response)), &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Questions) != questionCount {
		return nil, fmt.Errorf("expected %d questions, got %d", questionCount, len(parsed.Questions))
	}

	questions := make([]store.SurveyQuestion, 0, questionCount)
	for i, q := range parsed.Questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d is incomplete", i+1)
		}

		options := make([]store.SurveyOption, 0, len(q.Options))
		for j, label := range q.Options {
			options = append(options, store.SurveyOption{Id: j + 1, Label: label})
		}

		// Question ids are reassigned 1..4 regardless of what the model sent
		questions = append(questions, store.SurveyQuestion{
			QuestionId: i + 1,
			Question:   q.Question,
			Options:    options,
		})
	}
	return questions, nil
}

// DefaultQuestions is the deterministic fallback survey. Generic enough to
// apply to most product searches, same 4 questions every time.
func DefaultQuestions() []store.SurveyQuestion {
	return []store.SurveyQuestion{
		{
			QuestionId: 1,
			Question:   "주요 사용 목적은 무엇인가요?",
			Options: []store.SurveyOption{
				{Id: 1, Label: "일반 업무"},
				{Id: 2, Label: "영상 편집"},
				{Id: 3, Label: "게임"},
				{Id: 4, Label: "개발"},
			},
		},
		{
			QuestionId: 2,
			Question:   "생각하시는 예산 범위는?",
			Options: []store.SurveyOption{
				{Id: 1, Label: "100만원 미만"},
				{Id: 2, Label: "100~150만원"},
				{Id: 3, Label: "150~200만원"},
				{Id: 4, Label: "200만원 이상"},
			},
		},
		{
			QuestionId: 3,
			Question:   "디스플레이에서 가장 중요한 점은?",
			Options: []store.SurveyOption{
				{Id: 1, Label: "해상도"},
				{Id: 2, Label: "색재현율"},
				{Id: 3, Label: "크기"},
				{Id: 4, Label: "주사율"},
			},
		},
		{
			QuestionId: 4,
			Question:   "휴대성을 어느 정도 고려하시나요?",
			Options: []store.SurveyOption{
				{Id: 1, Label: "매우 중요"},
				{Id: 2, Label: "보통"},
				{Id: 3, Label: "성능이 더 중요"},
			},
		},
	}
}

func newSearchId() string {
	return "sr-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return response
	}

	return response[startIdx : endIdx+1]
}
