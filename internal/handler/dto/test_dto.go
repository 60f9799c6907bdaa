package dto

import (
	"time"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/handler/helper"
)

// QuestionResponse представляет вопрос теста без правильного ответа
type QuestionResponse struct {
	ID       uint                    `json:"id"`
	TestID   uint                    `json:"test_id"`
	Position int                     `json:"position"`
	Text     string                  `json:"text"`
	Options  []helper.QuestionOption `json:"options"`
}

// TestResponse представляет сертификационный тест в формате для ответа клиенту
type TestResponse struct {
	ID            uint               `json:"id"`
	SubjectID     uint               `json:"subject_id"`
	Subject       string             `json:"subject"`
	PassingScore  int                `json:"passing_score"`
	TimeLimitMin  int                `json:"time_limit"`
	QuestionCount int                `json:"question_count"`
	Questions     []QuestionResponse `json:"questions,omitempty"`
}

// ResultResponse представляет результат сдачи теста
type ResultResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	TestID      uint      `json:"test_id"`
	Subject     string    `json:"subject"`
	Score       int       `json:"score"`
	Passed      bool      `json:"passed"`
	CompletedAt time.Time `json:"completed_at"`
}

// SubmitResultResponse — ответ на отправку теста: результат и выданная
// сертификация, если тест сдан
type SubmitResultResponse struct {
	Result        *ResultResponse        `json:"result"`
	Certification *CertificationResponse `json:"certification,omitempty"`
}

// NewQuestionResponse создает DTO для вопроса. CorrectOption не включается
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:       q.ID,
		TestID:   q.TestID,
		Position: q.Position,
		Text:     q.Text,
		Options:  helper.ConvertOptionsToObjects(q.Options),
	}
}

// NewTestResponse создает DTO для теста
func NewTestResponse(test *entity.Test, includeQuestions bool) *TestResponse {
	resp := &TestResponse{
		ID:            test.ID,
		SubjectID:     test.SubjectID,
		Subject:       test.Subject,
		PassingScore:  test.PassingScore,
		TimeLimitMin:  test.TimeLimitMin,
		QuestionCount: test.QuestionCount(),
	}
	if includeQuestions {
		resp.Questions = make([]QuestionResponse, 0, len(test.Questions))
		for i := range test.Questions {
			resp.Questions = append(resp.Questions, NewQuestionResponse(&test.Questions[i]))
		}
	}
	return resp
}

// NewListTestResponse создает список DTO тестов без вопросов
func NewListTestResponse(tests []entity.Test) []*TestResponse {
	out := make([]*TestResponse, 0, len(tests))
	for i := range tests {
		out = append(out, NewTestResponse(&tests[i], false))
	}
	return out
}

// NewResultResponse создает DTO для результата
func NewResultResponse(r *entity.Result) *ResultResponse {
	return &ResultResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		TestID:      r.TestID,
		Subject:     r.Subject,
		Score:       r.Score,
		Passed:      r.Passed,
		CompletedAt: r.CompletedAt,
	}
}

// NewResultListResponse создает список DTO результатов
func NewResultListResponse(results []entity.Result) []*ResultResponse {
	out := make([]*ResultResponse, 0, len(results))
	for i := range results {
		out = append(out, NewResultResponse(&results[i]))
	}
	return out
}
