package survey

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-shopping-be/pkg/llm"
	"ai-shopping-be/pkg/store"

	"go.uber.org/zap"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

type recordingStore struct {
	saved *store.SearchSession
}

func (r *recordingStore) Save(ctx context.Context, session *store.SearchSession) error {
	r.saved = session
	return nil
}

func (r *recordingStore) Get(ctx context.Context, sessionId string) (*store.SearchSession, bool, error) {
	if r.saved != nil && r.saved.Id == sessionId {
		return r.saved, true, nil
	}
	return nil, false, nil
}

const validSurveyJSON = `{"questions": [
	{"question_id": 1, "question": "What will you use it for?", "options": ["Office", "Editing", "Gaming", "Development"]},
	{"question_id": 2, "question": "What is your budget?", "options": ["Under 1M", "1-1.5M", "1.5-2M", "Over 2M"]},
	{"question_id": 3, "question": "Most important display trait?", "options": ["Resolution", "Color", "Size", "Refresh rate"]},
	{"question_id": 4, "question": "How much does portability matter?", "options": ["A lot", "Somewhat", "Not much", "Irrelevant"]}
]}`

func TestGenerateParsesLLMSurvey(t *testing.T) {
	sessions := &recordingStore{}
	gen := NewGenerator(&stubLLM{response: validSurveyJSON}, sessions, zap.NewNop())

	session, err := gen.Generate(context.Background(), "recommend a laptop")
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	if len(session.Questions) != 4 {
		t.Fatalf("questions = %d, want 4", len(session.Questions))
	}
	if session.Questions[0].Question != "What will you use it for?" {
		t.Errorf("first question = %q", session.Questions[0].Question)
	}
	for i, q := range session.Questions {
		if q.QuestionId != i+1 {
			t.Errorf("question id at %d = %d, want %d", i, q.QuestionId, i+1)
		}
		if len(q.Options) == 0 {
			t.Errorf("question %d has no options", q.QuestionId)
		}
	}
	if sessions.saved == nil || sessions.saved.Id != session.Id {
		t.Error("session was not saved")
	}
}

func TestGenerateSessionIdFormat(t *testing.T) {
	gen := NewGenerator(&stubLLM{err: errors.New("down")}, &recordingStore{}, zap.NewNop())

	session, err := gen.Generate(context.Background(), "query")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !strings.HasPrefix(session.Id, "sr-") {
		t.Errorf("id = %q, want sr- prefix", session.Id)
	}
	if len(session.Id) != len("sr-")+8 {
		t.Errorf("id = %q, want 8 hex chars after prefix", session.Id)
	}
}

func TestGenerateFallsBackOnLLMFailure(t *testing.T) {
	gen := NewGenerator(&stubLLM{err: errors.New("down")}, &recordingStore{}, zap.NewNop())

	session, err := gen.Generate(context.Background(), "query")
	if err != nil {
		t.Fatalf("err = %v, generation must never fail outward", err)
	}
	assertDefaultSurvey(t, session.Questions)
}

func TestGenerateFallsBackOnMalformedJSON(t *testing.T) {
	gen := NewGenerator(&stubLLM{response: "I can't answer that"}, &recordingStore{}, zap.NewNop())

	session, err := gen.Generate(context.Background(), "query")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	assertDefaultSurvey(t, session.Questions)
}

func TestGenerateFallsBackOnWrongQuestionCount(t *testing.T) {
	threeQuestions := `{"questions": [
		{"question": "a", "options": ["1"]},
		{"question": "b", "options": ["1"]},
		{"question": "c", "options": ["1"]}
	]}`
	gen := NewGenerator(&stubLLM{response: threeQuestions}, &recordingStore{}, zap.NewNop())

	session, err := gen.Generate(context.Background(), "query")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	assertDefaultSurvey(t, session.Questions)
}

func TestGenerateFallsBackOnEmptyOptions(t *testing.T) {
	emptyOptions := `{"questions": [
		{"question": "a", "options": []},
		{"question": "b", "options": ["1"]},
		{"question": "c", "options": ["1"]},
		{"question": "d", "options": ["1"]}
	]}`
	gen := NewGenerator(&stubLLM{response: emptyOptions}, &recordingStore{}, zap.NewNop())

	session, err := gen.Generate(context.Background(), "query")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	assertDefaultSurvey(t, session.Questions)
}

func assertDefaultSurvey(t *testing.T, questions []store.SurveyQuestion) {
	t.Helper()

	defaults := DefaultQuestions()
	if len(questions) != len(defaults) {
		t.Fatalf("questions = %d, want %d", len(questions), len(defaults))
	}
	for i := range questions {
		if questions[i].Question != defaults[i].Question {
			t.Errorf("question %d = %q, want default %q", i+1, questions[i].Question, defaults[i].Question)
		}
		if len(questions[i].Options) == 0 {
			t.Errorf("question %d has no options", i+1)
		}
	}
}
