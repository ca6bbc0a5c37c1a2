package interviewapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
	interviewmanager "mock-interview-backend/lib/interview/manager"
)

type CreateResponse struct {
	SessionID      string `json:"session_id"`      // идентификатор сессии интервью
	QuestionsCount int    `json:"questions_count"` // количество сгенерированных вопросов
}

type StepRequest struct {
	Text string `json:"text"` // ответ кандидата (распознанная речь или текст)
}

func (r *StepRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

type StepResponse struct {
	AudioURL   *string                `json:"audio_url"`   // ссылка на аудио реплики интервьюера
	Transcript string                 `json:"transcript"`  // текст реплики интервьюера
	State      interviewmanager.State `json:"state"`       // состояние после шага
	IsFinished bool                   `json:"is_finished"` // интервью завершено, можно получить отчет
}

type StateResponse struct {
	State                interviewmanager.State       `json:"state"`
	CurrentQuestionIndex int                          `json:"current_question_index"`
	QuestionsCount       int                          `json:"questions_count"`
	AnsweredCount        int                          `json:"answered_count"`
	AllowedOperations    []interviewmanager.Operation `json:"allowed_operations"`
}

type ReportResponse struct {
	Responses        []interviewmanager.ResponseRecord `json:"responses"`
	GreetingResponse string                            `json:"greeting_response,omitempty"`
	QuestionsCount   int                               `json:"questions_count"`
	FlaggedCount     int                               `json:"flagged_count"`
}

type SendReportRequest struct {
	Email string `json:"email"` // адрес, на который отправляется отчет
}

func (r SendReportRequest) Validate() error {
	if len(strings.TrimSpace(r.Email)) == 0 {
		return errors.New("адрес почты не должен быть пустым")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("некорректный адрес почты")
	}
	return nil
}
