package store

import "time"

// SurveyOption is one selectable answer within a survey question.
type SurveyOption struct {
	Id    int    `json:"id"`
	Label string `json:"label"`
}

// SurveyQuestion is immutable once generated.
type SurveyQuestion struct {
	QuestionId int            `json:"question_id"`
	Question   string         `json:"question"`
	Options    []SurveyOption `json:"options"`
}

// SearchSession correlates a generated survey with the query that produced it.
// Written once at creation, read-only afterward, expires with the store TTL.
type SearchSession struct {
	Id        string           `json:"id"` // format: sr-xxxxxxxx
	UserQuery string           `json:"user_query"`
	Questions []SurveyQuestion `json:"questions"`
	CreatedAt time.Time        `json:"created_at"`
}
