package interviewmanager

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var ErrInvalidSnapshot = errors.New("некорректные данные сессии интервью")

// Snapshot сохраняемое представление Session, неизвестные поля при чтении игнорируются
type Snapshot struct {
	Questions            []string         `json:"questions"`
	CurrentQuestionIndex *int             `json:"current_question_index,omitempty"`
	UserResponses        []RecordSnapshot `json:"user_responses"`
	State                string           `json:"state,omitempty"`
	KeepGreetingResponse bool             `json:"keep_greeting_response,omitempty"`
	GreetingResponse     string           `json:"greeting_response,omitempty"`
}

// RecordSnapshot принимает записи, сохраненные до появления question_index
type RecordSnapshot struct {
	QuestionIndex *int    `json:"question_index,omitempty"`
	Question      string  `json:"question"`
	Answer        string  `json:"answer"`
	Evaluation    string  `json:"evaluation"`
	Flag          *string `json:"flag"`
}

func (s *Session) ToSnapshot() Snapshot {
	index := s.currentIndex
	records := make([]RecordSnapshot, 0, len(s.responses))
	for _, rec := range s.responses {
		rec = rec.clone()
		questionIndex := rec.QuestionIndex
		records = append(records, RecordSnapshot{
			QuestionIndex: &questionIndex,
			Question:      rec.Question,
			Answer:        rec.Answer,
			Evaluation:    rec.Evaluation,
			Flag:          rec.Flag,
		})
	}
	return Snapshot{
		Questions:            append([]string(nil), s.questions...),
		CurrentQuestionIndex: &index,
		UserResponses:        records,
		State:                string(s.state),
		KeepGreetingResponse: s.keepGreeting,
		GreetingResponse:     s.greetingResponse,
	}
}

// FromSnapshot восстанавливает сессию, без индекса и состояния используются -1 и INIT
func FromSnapshot(snap Snapshot, opts ...Option) (*Session, error) {
	if snap.Questions == nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, "отсутствует поле questions")
	}
	s, err := New(snap.Questions)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	if snap.CurrentQuestionIndex != nil {
		s.currentIndex = *snap.CurrentQuestionIndex
	}
	if s.currentIndex < -1 || s.currentIndex > len(s.questions) {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "индекс вопроса %d вне диапазона", s.currentIndex)
	}
	if snap.State != "" {
		state, err := ParseState(snap.State)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
		}
		s.state = state
	}
	if len(snap.UserResponses) > s.currentIndex+1 {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "ответов (%d) больше, чем заданных вопросов", len(snap.UserResponses))
	}
	last := -1
	for pos, rec := range snap.UserResponses {
		questionIndex := pos
		if rec.QuestionIndex != nil {
			questionIndex = *rec.QuestionIndex
		}
		if questionIndex <= last || questionIndex > s.currentIndex {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "некорректный индекс ответа %d", questionIndex)
		}
		last = questionIndex
		s.responses = append(s.responses, ResponseRecord{
			QuestionIndex: questionIndex,
			Question:      rec.Question,
			Answer:        rec.Answer,
			Evaluation:    rec.Evaluation,
			Flag:          rec.Flag,
		}.clone())
	}
	s.keepGreeting = snap.KeepGreetingResponse
	s.greetingResponse = snap.GreetingResponse
	applyOptions(s, opts)
	return s, nil
}

func (s *Session) Marshal() ([]byte, error) {
	data, err := json.Marshal(s.ToSnapshot())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации сессии интервью")
	}
	return data, nil
}

func Unmarshal(data []byte, opts ...Option) (*Session, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	return FromSnapshot(snap, opts...)
}
