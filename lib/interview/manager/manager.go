package interviewmanager

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type State string

const (
	StateInit                     State = "INIT"
	StateAwaitingGreetingResponse State = "AWAITING_GREETING_RESPONSE"
	StateGreetingAcknowledged     State = "GREETING_ACKNOWLEDGED"
	StateAskingQuestion           State = "ASKING_QUESTION"
	StateListening                State = "LISTENING"
	StateProcessingAnswer         State = "PROCESSING_ANSWER"
	StateAcknowledgedAnswer       State = "ACKNOWLEDGED_ANSWER"
	StateClosing                  State = "CLOSING"
	StateFinished                 State = "FINISHED"
)

var knownStates = map[State]struct{}{
	StateInit:                     {},
	StateAwaitingGreetingResponse: {},
	StateGreetingAcknowledged:     {},
	StateAskingQuestion:           {},
	StateListening:                {},
	StateProcessingAnswer:         {},
	StateAcknowledgedAnswer:       {},
	StateClosing:                  {},
	StateFinished:                 {},
}

func (s State) IsValid() bool {
	_, ok := knownStates[s]
	return ok
}

func ParseState(value string) (State, error) {
	s := State(value)
	if !s.IsValid() {
		return "", errors.Wrapf(ErrUnknownState, "%q", value)
	}
	return s, nil
}

var (
	ErrNoQuestions     = errors.New("список вопросов пуст")
	ErrInvalidState    = errors.New("операция недоступна в текущем состоянии")
	ErrIndexOutOfRange = errors.New("индекс текущего вопроса вне диапазона")
	ErrAlreadyAnswered = errors.New("ответ на текущий вопрос уже записан")
	ErrUnknownState    = errors.New("неизвестное состояние")
)

// Operation название операции автомата
type Operation string

const (
	OpRecordGreetingResponse    Operation = "record_greeting_response"
	OpPrepareFirstQuestion      Operation = "prepare_first_question"
	OpGetCurrentQuestion        Operation = "get_current_question"
	OpRecordAnswerAndEvaluation Operation = "record_answer_and_evaluation"
	OpPrepareNextQuestion       Operation = "prepare_next_question"
	OpGetFinalData              Operation = "get_final_data"
	OpLastQuestionAsked         Operation = "last_question_asked"
)

// ResponseRecord не изменяется после добавления
type ResponseRecord struct {
	QuestionIndex int     `json:"question_index"`
	Question      string  `json:"question"`
	Answer        string  `json:"answer"`
	Evaluation    string  `json:"evaluation"`
	Flag          *string `json:"flag"`
}

func (r ResponseRecord) clone() ResponseRecord {
	if r.Flag != nil {
		flag := *r.Flag
		r.Flag = &flag
	}
	return r
}

func (r ResponseRecord) IsFlagged() bool {
	return r.Flag != nil
}

// Transition результат PrepareNextQuestion
type Transition struct {
	State State `json:"state"`
	Index int   `json:"next_question_index"`
}

type TransitionHook func(from, to State)

type Option func(s *Session)

// WithGreetingKept сохраняет ответ на приветствие вместо отбрасывания
func WithGreetingKept(keep bool) Option {
	return func(s *Session) {
		s.keepGreeting = keep
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithTransitionHook(hook TransitionHook) Option {
	return func(s *Session) {
		s.onTransition = hook
	}
}

// Session состояние одного интервью кандидата. Не потокобезопасна,
// на каждый запрос используется свой экземпляр
type Session struct {
	questions        []string
	currentIndex     int
	responses        []ResponseRecord
	state            State
	keepGreeting     bool
	greetingResponse string

	logger       *log.Entry
	onTransition TransitionHook
}

func New(questions []string, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{
		questions:    append([]string(nil), questions...),
		currentIndex: -1,
		responses:    []ResponseRecord{},
		state:        StateInit,
		logger:       log.WithField("component", "interview_manager"),
	}
	applyOptions(s, opts)
	return s, nil
}

func applyOptions(s *Session, opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) CurrentIndex() int {
	return s.currentIndex
}

func (s *Session) QuestionsCount() int {
	return len(s.questions)
}

func (s *Session) Questions() []string {
	return append([]string(nil), s.questions...)
}

func (s *Session) Responses() []ResponseRecord {
	result := make([]ResponseRecord, 0, len(s.responses))
	for _, rec := range s.responses {
		result = append(result, rec.clone())
	}
	return result
}

// GreetingResponse пустой, если ответ на приветствие не сохраняется
func (s *Session) GreetingResponse() string {
	return s.greetingResponse
}

// SetState переход по команде оркестратора. Таблица переходов не проверяется,
// только принадлежность к известным состояниям
func (s *Session) SetState(newState State) error {
	if !newState.IsValid() {
		s.logger.WithField("state", string(newState)).Warn("попытка перехода в неизвестное состояние")
		return errors.Wrapf(ErrUnknownState, "%q", string(newState))
	}
	s.changeState(newState)
	return nil
}

func (s *Session) changeState(newState State) {
	if s.state == newState {
		return
	}
	from := s.state
	s.state = newState
	s.logger.
		WithField("from", string(from)).
		WithField("to", string(newState)).
		Info("смена состояния интервью")
	if s.onTransition != nil {
		s.onTransition(from, newState)
	}
}

func (s *Session) invalidState(op Operation) error {
	s.logger.
		WithField("operation", string(op)).
		WithField("state", string(s.state)).
		Warn("операция вызвана в недопустимом состоянии")
	return errors.Wrapf(ErrInvalidState, "%s в состоянии %s", op, s.state)
}

func (s *Session) indexOutOfRange(op Operation) error {
	s.logger.
		WithField("operation", string(op)).
		WithField("index", s.currentIndex).
		Warn("индекс вопроса вне диапазона")
	return errors.Wrapf(ErrIndexOutOfRange, "%s: индекс %d, вопросов %d", op, s.currentIndex, len(s.questions))
}

func (s *Session) hasCurrentQuestion() bool {
	return s.currentIndex >= 0 && s.currentIndex < len(s.questions)
}

func (s *Session) RecordGreetingResponse(text string) error {
	if s.state != StateAwaitingGreetingResponse {
		return s.invalidState(OpRecordGreetingResponse)
	}
	if s.keepGreeting {
		s.greetingResponse = text
		s.logger.Info("ответ на приветствие сохранен")
	} else {
		s.logger.Info("ответ на приветствие получен (не сохраняется)")
	}
	return nil
}

func (s *Session) PrepareFirstQuestion() (int, error) {
	if s.state != StateGreetingAcknowledged {
		return -1, s.invalidState(OpPrepareFirstQuestion)
	}
	if len(s.questions) == 0 {
		s.currentIndex = 0
		s.changeState(StateClosing)
		return -1, ErrNoQuestions
	}
	s.currentIndex = 0
	s.changeState(StateAskingQuestion)
	return s.currentIndex, nil
}

func (s *Session) GetCurrentQuestion() (string, error) {
	if s.state != StateAskingQuestion {
		return "", s.invalidState(OpGetCurrentQuestion)
	}
	if !s.hasCurrentQuestion() {
		return "", s.indexOutOfRange(OpGetCurrentQuestion)
	}
	return s.questions[s.currentIndex], nil
}

// LastQuestionAsked вопрос, ответ на который сейчас обрабатывается
func (s *Session) LastQuestionAsked() (string, error) {
	if s.state != StateProcessingAnswer {
		return "", s.invalidState(OpLastQuestionAsked)
	}
	if !s.hasCurrentQuestion() {
		return "", s.indexOutOfRange(OpLastQuestionAsked)
	}
	return s.questions[s.currentIndex], nil
}

func (s *Session) RecordAnswerAndEvaluation(answerText, evaluationNote string) (ResponseRecord, error) {
	if s.state != StateProcessingAnswer {
		return ResponseRecord{}, s.invalidState(OpRecordAnswerAndEvaluation)
	}
	if !s.hasCurrentQuestion() {
		return ResponseRecord{}, s.indexOutOfRange(OpRecordAnswerAndEvaluation)
	}
	if n := len(s.responses); n > 0 && s.responses[n-1].QuestionIndex >= s.currentIndex {
		s.logger.WithField("index", s.currentIndex).Warn("повторная запись ответа на вопрос")
		return ResponseRecord{}, errors.Wrapf(ErrAlreadyAnswered, "вопрос %d", s.currentIndex)
	}
	rec := ResponseRecord{
		QuestionIndex: s.currentIndex,
		Question:      s.questions[s.currentIndex],
		Answer:        answerText,
		Evaluation:    evaluationNote,
		Flag:          inspectAnswer(answerText),
	}
	s.responses = append(s.responses, rec)
	s.logger.
		WithField("index", s.currentIndex).
		WithField("evaluation", evaluationNote).
		WithField("flagged", rec.IsFlagged()).
		Info("ответ записан")
	return rec.clone(), nil
}

func (s *Session) PrepareNextQuestion() (Transition, error) {
	if s.state != StateAcknowledgedAnswer {
		return Transition{}, s.invalidState(OpPrepareNextQuestion)
	}
	if s.currentIndex >= len(s.questions) {
		return Transition{}, s.indexOutOfRange(OpPrepareNextQuestion)
	}
	next := s.currentIndex + 1
	if next < len(s.questions) {
		s.currentIndex = next
		s.changeState(StateAskingQuestion)
		return Transition{State: s.state, Index: s.currentIndex}, nil
	}
	s.currentIndex = len(s.questions)
	s.changeState(StateClosing)
	return Transition{State: s.state, Index: s.currentIndex}, nil
}

func (s *Session) GetFinalData() ([]ResponseRecord, error) {
	if s.state != StateClosing && s.state != StateFinished {
		return nil, s.invalidState(OpGetFinalData)
	}
	s.changeState(StateFinished)
	return s.Responses(), nil
}

// AllowedOperations операции, допустимые в текущем состоянии
func (s *Session) AllowedOperations() []Operation {
	switch s.state {
	case StateAwaitingGreetingResponse:
		return []Operation{OpRecordGreetingResponse}
	case StateGreetingAcknowledged:
		return []Operation{OpPrepareFirstQuestion}
	case StateAskingQuestion:
		if s.hasCurrentQuestion() {
			return []Operation{OpGetCurrentQuestion}
		}
	case StateProcessingAnswer:
		if s.hasCurrentQuestion() {
			return []Operation{OpRecordAnswerAndEvaluation}
		}
	case StateAcknowledgedAnswer:
		if s.currentIndex < len(s.questions) {
			return []Operation{OpPrepareNextQuestion}
		}
	case StateClosing, StateFinished:
		return []Operation{OpGetFinalData}
	}
	return []Operation{}
}

func (s *Session) String() string {
	return fmt.Sprintf("interview{state=%s index=%d/%d responses=%d}", s.state, s.currentIndex, len(s.questions), len(s.responses))
}
