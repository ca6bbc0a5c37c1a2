package interviewhandler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"mock-interview-backend/config"
	"mock-interview-backend/db"
	pdfexport "mock-interview-backend/lib/export/pdf"
	xlsexport "mock-interview-backend/lib/export/xls"
	filestorage "mock-interview-backend/lib/file-storage"
	gpthandler "mock-interview-backend/lib/gpt"
	interviewmanager "mock-interview-backend/lib/interview/manager"
	interviewsessionstore "mock-interview-backend/lib/interview/session-store"
	"mock-interview-backend/lib/metrics"
	resumeparser "mock-interview-backend/lib/resume"
	"mock-interview-backend/lib/smtp"
	ttshandler "mock-interview-backend/lib/tts"
	initchecker "mock-interview-backend/lib/utils/init-checker"
	"mock-interview-backend/lib/utils/lock"
	interviewapimodels "mock-interview-backend/models/api/interview"
	dbmodels "mock-interview-backend/models/db"
)

var (
	ErrSessionNotFound  = errors.New("сессия интервью не найдена")
	ErrSessionBusy      = errors.New("предыдущий запрос по сессии интервью еще обрабатывается")
	ErrInterviewActive  = errors.New("интервью уже начато")
	ErrUnexpectedState  = errors.New("неожиданное состояние интервью")
	ErrNotCompleted     = errors.New("интервью еще не завершено")
	ErrInvalidFileName  = errors.New("некорректное имя файла")
	ErrAudioUnavailable = errors.New("хранилище аудио недоступно")
)

const (
	ClosingText      = "Okay, that was the last question. Thanks for your time! The report is being generated."
	AckOnEvalError   = "Alright."
	NoteOnEvalError  = "Evaluation unavailable."
	AudioUnavailable = " (Audio unavailable)"
	AudioURLPrefix   = "/api/v1/audio/"
)

type Provider interface {
	CreateSession(ctx context.Context, previousID, fileName string, content []byte) (interviewapimodels.CreateResponse, error)
	Start(ctx context.Context, id string) (interviewapimodels.StepResponse, error)
	NextStep(ctx context.Context, id, text string) (interviewapimodels.StepResponse, error)
	GetState(ctx context.Context, id string) (interviewapimodels.StateResponse, error)
	GetReport(ctx context.Context, id string) (interviewapimodels.ReportResponse, error)
	ReportPDF(ctx context.Context, id string) ([]byte, error)
	ReportXLSX(ctx context.Context, id string) ([]byte, error)
	SendReport(ctx context.Context, id, email string) error
	GetAudio(ctx context.Context, fileName string) ([]byte, error)
	Clear(ctx context.Context, id string) error
}

var Instance Provider

type impl struct {
	sessionStore interviewsessionstore.Provider
	resumeParser resumeparser.Provider
	gpt          gpthandler.Provider
	tts          ttshandler.Provider
	audioStorage filestorage.Provider
	pdfExport    pdfexport.Provider
	xlsExport    xlsexport.Provider
	mailer       smtp.Provider
	keepGreeting bool
	lockWait     time.Duration
}

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"resumeparser", resumeparser.Instance,
		"gpthandler", gpthandler.Instance,
		"ttshandler", ttshandler.Instance,
		"pdfexport", pdfexport.Instance,
		"xlsexport", xlsexport.Instance,
		"smtp", smtp.Instance,
	)
	Instance = impl{
		sessionStore: interviewsessionstore.NewInstance(db.DB),
		resumeParser: resumeparser.Instance,
		gpt:          gpthandler.Instance,
		tts:          ttshandler.Instance,
		audioStorage: filestorage.Instance,
		pdfExport:    pdfexport.Instance,
		xlsExport:    xlsexport.Instance,
		mailer:       smtp.Instance,
		keepGreeting: *config.Conf.Interview.KeepGreetingResponse,
		lockWait:     time.Duration(config.Conf.Interview.LockWaitSec) * time.Second,
	}
}

func (i impl) getLogger(id string) *log.Entry {
	return log.WithField("session_id", id)
}

func lockKey(id string) string {
	return "interview:" + id
}

// withSession загружает сессию под блокировкой, вызывает fn и сохраняет результат.
// При ошибке fn изменения не сохраняются.
func (i impl) withSession(ctx context.Context, id string, save bool, fn func(session *interviewmanager.Session, logger *log.Entry) error) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrSessionNotFound
	}
	logger := i.getLogger(id)
	success, err := lock.WithDelay(ctx, lockKey(id), i.lockWait, func() error {
		rec, err := i.sessionStore.GetByID(id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения сессии интервью")
		}
		if rec == nil {
			return ErrSessionNotFound
		}
		session, err := interviewmanager.Unmarshal([]byte(rec.Data),
			interviewmanager.WithLogger(logger),
			interviewmanager.WithTransitionHook(func(from, to interviewmanager.State) {
				metrics.ObserveTransition(string(from), string(to))
			}))
		if err != nil {
			logger.WithError(err).Error("сохраненная сессия интервью повреждена")
			return err
		}
		if err = fn(session, logger); err != nil {
			return err
		}
		if !save {
			return nil
		}
		data, err := session.Marshal()
		if err != nil {
			return err
		}
		if err = i.sessionStore.Update(id, string(session.State()), string(data)); err != nil {
			return errors.Wrap(err, "ошибка сохранения сессии интервью")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !success {
		logger.Warn("сессия интервью занята другим запросом")
		return ErrSessionBusy
	}
	return nil
}

func (i impl) CreateSession(ctx context.Context, previousID, fileName string, content []byte) (resp interviewapimodels.CreateResponse, err error) {
	logger := log.WithField("file_name", fileName)
	if !resumeparser.IsAllowedFile(fileName) {
		return resp, resumeparser.ErrUnsupportedType
	}
	resumeText, err := i.resumeParser.ExtractText(fileName, content)
	if err != nil {
		metrics.CollaboratorFailures.WithLabelValues(metrics.CollaboratorResume).Inc()
		return resp, errors.Wrap(err, "ошибка обработки резюме")
	}
	questions, err := i.gpt.GenerateQuestions(ctx, resumeText)
	if err != nil {
		return resp, err
	}
	session, err := interviewmanager.New(questions, interviewmanager.WithGreetingKept(i.keepGreeting))
	if err != nil {
		return resp, err
	}
	data, err := session.Marshal()
	if err != nil {
		return resp, err
	}
	rec := dbmodels.InterviewSession{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		State:     string(session.State()),
		Data:      string(data),
	}
	id, err := i.sessionStore.Create(rec)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка сохранения сессии интервью")
	}
	metrics.SessionsCreated.Inc()
	// предыдущая сессия удаляется только после сохранения новой
	if previousID != "" && previousID != id {
		if err = i.Clear(ctx, previousID); err != nil {
			logger.WithError(err).Warn("не удалось удалить предыдущую сессию интервью")
		}
	}
	i.getLogger(id).
		WithField("questions_count", session.QuestionsCount()).
		Info("сессия интервью создана")
	return interviewapimodels.CreateResponse{
		SessionID:      id,
		QuestionsCount: session.QuestionsCount(),
	}, nil
}

func (i impl) Start(ctx context.Context, id string) (resp interviewapimodels.StepResponse, err error) {
	err = i.withSession(ctx, id, true, func(session *interviewmanager.Session, logger *log.Entry) error {
		if session.State() != interviewmanager.StateInit {
			return errors.Wrapf(ErrInterviewActive, "состояние %s", session.State())
		}
		greeting := i.gpt.GenerateGreeting(ctx)
		audio := i.tts.TextToSpeech(ctx, greeting, "greeting")
		if err := session.SetState(interviewmanager.StateAwaitingGreetingResponse); err != nil {
			return err
		}
		resp = i.buildStep(greeting, audio, session.State(), false)
		return nil
	})
	i.observeStep(interviewmanager.StateInit, err)
	return resp, err
}

func (i impl) NextStep(ctx context.Context, id, text string) (resp interviewapimodels.StepResponse, err error) {
	var startState interviewmanager.State
	err = i.withSession(ctx, id, true, func(session *interviewmanager.Session, logger *log.Entry) error {
		startState = session.State()
		switch startState {
		case interviewmanager.StateAwaitingGreetingResponse:
			resp, err = i.handleGreetingResponse(ctx, session, text)
		case interviewmanager.StateGreetingAcknowledged:
			resp, err = i.handleFirstQuestion(ctx, session)
		case interviewmanager.StateListening:
			resp, err = i.handleAnswer(ctx, session, logger, text)
		case interviewmanager.StateAcknowledgedAnswer:
			resp, err = i.handleNextQuestion(ctx, session)
		default:
			logger.WithField("state", string(startState)).Warn("запрос шага интервью в неожиданном состоянии")
			return errors.Wrapf(ErrUnexpectedState, "%s", startState)
		}
		return err
	})
	i.observeStep(startState, err)
	return resp, err
}

func (i impl) handleGreetingResponse(ctx context.Context, session *interviewmanager.Session, text string) (interviewapimodels.StepResponse, error) {
	if err := session.RecordGreetingResponse(text); err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	ack := i.gpt.GenerateGreetingAck(ctx, text)
	audio := i.tts.TextToSpeech(ctx, ack, "greeting_ack")
	if err := session.SetState(interviewmanager.StateGreetingAcknowledged); err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	return i.buildStep(ack, audio, session.State(), false), nil
}

func (i impl) handleFirstQuestion(ctx context.Context, session *interviewmanager.Session) (interviewapimodels.StepResponse, error) {
	_, err := session.PrepareFirstQuestion()
	if errors.Is(err, interviewmanager.ErrNoQuestions) {
		return i.closing(ctx, session), nil
	}
	if err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	return i.askCurrentQuestion(ctx, session)
}

func (i impl) handleAnswer(ctx context.Context, session *interviewmanager.Session, logger *log.Entry, text string) (interviewapimodels.StepResponse, error) {
	if err := session.SetState(interviewmanager.StateProcessingAnswer); err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	question, err := session.LastQuestionAsked()
	if err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	evaluation, err := i.gpt.EvaluateAnswer(ctx, question, text)
	if err != nil {
		logger.WithError(err).Warn("оценка ответа недоступна, используется ответ по умолчанию")
		evaluation = gpthandler.Evaluation{Acknowledgement: AckOnEvalError, Note: NoteOnEvalError}
	}
	if _, err = session.RecordAnswerAndEvaluation(text, evaluation.Note); err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	audio := i.tts.TextToSpeech(ctx, evaluation.Acknowledgement, fmt.Sprintf("ack_%d", session.CurrentIndex()))
	if err = session.SetState(interviewmanager.StateAcknowledgedAnswer); err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	return i.buildStep(evaluation.Acknowledgement, audio, session.State(), false), nil
}

func (i impl) handleNextQuestion(ctx context.Context, session *interviewmanager.Session) (interviewapimodels.StepResponse, error) {
	transition, err := session.PrepareNextQuestion()
	if err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	switch transition.State {
	case interviewmanager.StateAskingQuestion:
		return i.askCurrentQuestion(ctx, session)
	case interviewmanager.StateClosing:
		return i.closing(ctx, session), nil
	}
	return interviewapimodels.StepResponse{}, errors.Wrapf(ErrUnexpectedState, "после перехода к следующему вопросу: %s", transition.State)
}

func (i impl) askCurrentQuestion(ctx context.Context, session *interviewmanager.Session) (interviewapimodels.StepResponse, error) {
	question, err := session.GetCurrentQuestion()
	if err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	audio := i.tts.TextToSpeech(ctx, question, fmt.Sprintf("question_%d", session.CurrentIndex()))
	if err = session.SetState(interviewmanager.StateListening); err != nil {
		return interviewapimodels.StepResponse{}, err
	}
	return i.buildStep(question, audio, session.State(), false), nil
}

// closing оставляет сессию в CLOSING, FINISHED выставляется при получении отчета
func (i impl) closing(ctx context.Context, session *interviewmanager.Session) interviewapimodels.StepResponse {
	audio := i.tts.TextToSpeech(ctx, ClosingText, "closing")
	return i.buildStep(ClosingText, audio, session.State(), true)
}

func (i impl) buildStep(transcript, audioFile string, state interviewmanager.State, finished bool) interviewapimodels.StepResponse {
	resp := interviewapimodels.StepResponse{
		Transcript: transcript,
		State:      state,
		IsFinished: finished,
	}
	if audioFile != "" {
		audioURL := AudioURLPrefix + audioFile
		resp.AudioURL = &audioURL
	} else if transcript != "" && i.tts.Enabled() {
		resp.Transcript += AudioUnavailable
	}
	return resp
}

func (i impl) observeStep(state interviewmanager.State, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusFail
	}
	metrics.Steps.WithLabelValues(string(state), status).Inc()
}

func (i impl) GetState(ctx context.Context, id string) (resp interviewapimodels.StateResponse, err error) {
	err = i.withSession(ctx, id, false, func(session *interviewmanager.Session, logger *log.Entry) error {
		resp = interviewapimodels.StateResponse{
			State:                session.State(),
			CurrentQuestionIndex: session.CurrentIndex(),
			QuestionsCount:       session.QuestionsCount(),
			AnsweredCount:        len(session.Responses()),
			AllowedOperations:    session.AllowedOperations(),
		}
		return nil
	})
	return resp, err
}

func (i impl) GetReport(ctx context.Context, id string) (resp interviewapimodels.ReportResponse, err error) {
	err = i.withSession(ctx, id, true, func(session *interviewmanager.Session, logger *log.Entry) error {
		state := session.State()
		if state != interviewmanager.StateClosing && state != interviewmanager.StateFinished {
			return errors.Wrapf(ErrNotCompleted, "состояние %s", state)
		}
		records, err := session.GetFinalData()
		if err != nil {
			return err
		}
		resp = interviewapimodels.ReportResponse{
			Responses:        records,
			GreetingResponse: session.GreetingResponse(),
			QuestionsCount:   session.QuestionsCount(),
		}
		for _, rec := range records {
			if rec.IsFlagged() {
				resp.FlaggedCount++
			}
		}
		return nil
	})
	return resp, err
}

func (i impl) ReportPDF(ctx context.Context, id string) ([]byte, error) {
	report, err := i.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	file, err := i.pdfExport.GenerateReport(report)
	if err != nil {
		i.getLogger(id).WithError(err).Error("ошибка формирования PDF отчета")
		return nil, errors.Wrap(err, "ошибка формирования PDF отчета")
	}
	return file, nil
}

func (i impl) ReportXLSX(ctx context.Context, id string) ([]byte, error) {
	report, err := i.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	buf, err := i.xlsExport.ExportReport(report)
	if err != nil {
		i.getLogger(id).WithError(err).Error("ошибка формирования xlsx отчета")
		return nil, errors.Wrap(err, "ошибка формирования xlsx отчета")
	}
	return buf.Bytes(), nil
}

func (i impl) SendReport(ctx context.Context, id, email string) error {
	report, err := i.GetReport(ctx, id)
	if err != nil {
		return err
	}
	if i.mailer == nil {
		return smtp.ErrNotConfigured
	}
	return i.mailer.SendEMail(email, "Interview Report", reportText(report))
}

func reportText(report interviewapimodels.ReportResponse) string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("Answered %d of %d questions.\r\n\r\n", len(report.Responses), report.QuestionsCount))
	if report.GreetingResponse != "" {
		builder.WriteString(fmt.Sprintf("Greeting response: %s\r\n\r\n", report.GreetingResponse))
	}
	for idx, rec := range report.Responses {
		builder.WriteString(fmt.Sprintf("%d. %s\r\nAnswer: %s\r\nEvaluation: %s\r\n", idx+1, rec.Question, rec.Answer, rec.Evaluation))
		if rec.Flag != nil {
			builder.WriteString(fmt.Sprintf("Flag: %s\r\n", *rec.Flag))
		}
		builder.WriteString("\r\n")
	}
	return builder.String()
}

func IsSafeFileName(fileName string) bool {
	return fileName != "" && !strings.ContainsAny(fileName, `/\`) && !strings.Contains(fileName, "..")
}

func (i impl) GetAudio(ctx context.Context, fileName string) ([]byte, error) {
	if !IsSafeFileName(fileName) {
		log.WithField("file_name", fileName).Warn("запрошено некорректное имя аудио файла")
		return nil, ErrInvalidFileName
	}
	if i.audioStorage == nil {
		return nil, ErrAudioUnavailable
	}
	return i.audioStorage.GetFile(ctx, fileName)
}

func (i impl) Clear(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	success, err := lock.WithDelay(ctx, lockKey(id), i.lockWait, func() error {
		return i.sessionStore.Delete(id)
	})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления сессии интервью")
	}
	if !success {
		return ErrSessionBusy
	}
	i.getLogger(id).Info("сессия интервью удалена")
	return nil
}
