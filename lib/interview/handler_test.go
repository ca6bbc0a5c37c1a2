package interviewhandler

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	filestorage "mock-interview-backend/lib/file-storage"
	gpthandler "mock-interview-backend/lib/gpt"
	interviewmanager "mock-interview-backend/lib/interview/manager"
	resumeparser "mock-interview-backend/lib/resume"
	interviewapimodels "mock-interview-backend/models/api/interview"
	dbmodels "mock-interview-backend/models/db"
)

type memStore struct {
	mu   sync.Mutex
	recs map[string]dbmodels.InterviewSession
}

func newMemStore() *memStore {
	return &memStore{recs: map[string]dbmodels.InterviewSession{}}
}

func (m *memStore) Create(rec dbmodels.InterviewSession) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.UpdatedAt = time.Now()
	m.recs[rec.ID] = rec
	return rec.ID, nil
}

func (m *memStore) GetByID(id string) (*dbmodels.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) Update(id string, state string, data string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return errors.New("not found")
	}
	rec.State = state
	rec.Data = data
	m.recs[id] = rec
	return nil
}

func (m *memStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recs, id)
	return nil
}

func (m *memStore) DeleteExpired(updatedBefore time.Time) (int64, error) {
	return 0, nil
}

type fakeParser struct{}

func (fakeParser) ExtractText(fileName string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", resumeparser.ErrNoText
	}
	return string(content), nil
}

type fakeGPT struct {
	questions    []string
	questionsErr error
	evalErr      error
}

func (f *fakeGPT) GenerateQuestions(ctx context.Context, resumeText string) ([]string, error) {
	if f.questionsErr != nil {
		return nil, f.questionsErr
	}
	return f.questions, nil
}

func (f *fakeGPT) EvaluateAnswer(ctx context.Context, question, answer string) (gpthandler.Evaluation, error) {
	if f.evalErr != nil {
		return gpthandler.Evaluation{}, f.evalErr
	}
	return gpthandler.Evaluation{Acknowledgement: "Thanks.", Note: "Good: " + question}, nil
}

func (f *fakeGPT) GenerateGreeting(ctx context.Context) string {
	return "Hello! How are you?"
}

func (f *fakeGPT) GenerateGreetingAck(ctx context.Context, greetingResponse string) string {
	return "Glad to hear."
}

type fakeTTS struct {
	fail bool
}

func (f fakeTTS) TextToSpeech(ctx context.Context, text, label string) string {
	if f.fail {
		return ""
	}
	return label + ".wav"
}

func (f fakeTTS) Enabled() bool {
	return true
}

type fakeAudioStorage struct {
	files map[string][]byte
}

func (f fakeAudioStorage) UploadFile(ctx context.Context, fileName string, data []byte, contentType string) error {
	f.files[fileName] = data
	return nil
}

func (f fakeAudioStorage) GetFile(ctx context.Context, fileName string) ([]byte, error) {
	data, ok := f.files[fileName]
	if !ok {
		return nil, filestorage.ErrFileNotFound
	}
	return data, nil
}

func (f fakeAudioStorage) MakeBucket(ctx context.Context) error {
	return nil
}

type fakePDF struct{}

func (fakePDF) GenerateReport(report interviewapimodels.ReportResponse) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

type fakeXLS struct{}

func (fakeXLS) ExportReport(report interviewapimodels.ReportResponse) (*bytes.Buffer, error) {
	return bytes.NewBufferString("xlsx"), nil
}

type fakeMailer struct {
	to      string
	message string
}

func (f *fakeMailer) SendEMail(to, subject, message string) error {
	f.to = to
	f.message = message
	return nil
}

type testEnv struct {
	handler impl
	store   *memStore
	gpt     *fakeGPT
	mailer  *fakeMailer
}

func newTestEnv(questions ...string) *testEnv {
	env := &testEnv{
		store:  newMemStore(),
		gpt:    &fakeGPT{questions: questions},
		mailer: &fakeMailer{},
	}
	env.handler = impl{
		sessionStore: env.store,
		resumeParser: fakeParser{},
		gpt:          env.gpt,
		tts:          fakeTTS{},
		audioStorage: fakeAudioStorage{files: map[string][]byte{"greeting.wav": []byte("RIFF")}},
		pdfExport:    fakePDF{},
		xlsExport:    fakeXLS{},
		mailer:       env.mailer,
		keepGreeting: true,
		lockWait:     time.Second,
	}
	return env
}

func (e *testEnv) create(t *testing.T) string {
	resp, err := e.handler.CreateSession(context.Background(), "", "cv.pdf", []byte("Go developer"))
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestInterviewFlow(t *testing.T) {
	ctx := context.Background()

	t.Run(`full interview`, func(t *testing.T) {
		env := newTestEnv("Q1", "Q2")
		id := env.create(t)

		step, err := env.handler.Start(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Hello! How are you?", step.Transcript)
		require.Equal(t, interviewmanager.StateAwaitingGreetingResponse, step.State)
		require.NotNil(t, step.AudioURL)
		require.Equal(t, AudioURLPrefix+"greeting.wav", *step.AudioURL)

		step, err = env.handler.NextStep(ctx, id, "Fine, thanks")
		require.NoError(t, err)
		require.Equal(t, "Glad to hear.", step.Transcript)
		require.Equal(t, interviewmanager.StateGreetingAcknowledged, step.State)

		step, err = env.handler.NextStep(ctx, id, "")
		require.NoError(t, err)
		require.Equal(t, "Q1", step.Transcript)
		require.Equal(t, interviewmanager.StateListening, step.State)
		require.Equal(t, AudioURLPrefix+"question_0.wav", *step.AudioURL)

		step, err = env.handler.NextStep(ctx, id, "my first answer")
		require.NoError(t, err)
		require.Equal(t, "Thanks.", step.Transcript)
		require.Equal(t, interviewmanager.StateAcknowledgedAnswer, step.State)

		_, err = env.handler.GetReport(ctx, id)
		require.True(t, errors.Is(err, ErrNotCompleted))

		step, err = env.handler.NextStep(ctx, id, "")
		require.NoError(t, err)
		require.Equal(t, "Q2", step.Transcript)

		step, err = env.handler.NextStep(ctx, id, "badword1 answer")
		require.NoError(t, err)
		require.False(t, step.IsFinished)

		step, err = env.handler.NextStep(ctx, id, "")
		require.NoError(t, err)
		require.True(t, step.IsFinished)
		require.Equal(t, ClosingText, step.Transcript)
		require.Equal(t, interviewmanager.StateClosing, step.State)

		state, err := env.handler.GetState(ctx, id)
		require.NoError(t, err)
		require.Equal(t, 2, state.CurrentQuestionIndex)
		require.Equal(t, 2, state.AnsweredCount)

		report, err := env.handler.GetReport(ctx, id)
		require.NoError(t, err)
		require.Len(t, report.Responses, 2)
		require.Equal(t, "Fine, thanks", report.GreetingResponse)
		require.Equal(t, "Good: Q1", report.Responses[0].Evaluation)
		require.Equal(t, 1, report.FlaggedCount)

		state, err = env.handler.GetState(ctx, id)
		require.NoError(t, err)
		require.Equal(t, interviewmanager.StateFinished, state.State)

		_, err = env.handler.NextStep(ctx, id, "more")
		require.True(t, errors.Is(err, ErrUnexpectedState))

		pdfFile, err := env.handler.ReportPDF(ctx, id)
		require.NoError(t, err)
		require.Equal(t, []byte("%PDF-fake"), pdfFile)

		require.NoError(t, env.handler.SendReport(ctx, id, "hr@example.com"))
		require.Equal(t, "hr@example.com", env.mailer.to)
		require.Contains(t, env.mailer.message, "Answer: my first answer")
		require.Contains(t, env.mailer.message, "Flag: inappropriate")
	})

	t.Run(`evaluator failure uses default acknowledgement`, func(t *testing.T) {
		env := newTestEnv("Q1")
		env.gpt.evalErr = errors.New("llm down")
		id := env.create(t)
		_, err := env.handler.Start(ctx, id)
		require.NoError(t, err)
		_, err = env.handler.NextStep(ctx, id, "hi")
		require.NoError(t, err)
		_, err = env.handler.NextStep(ctx, id, "")
		require.NoError(t, err)

		step, err := env.handler.NextStep(ctx, id, "answer")
		require.NoError(t, err)
		require.Equal(t, AckOnEvalError, step.Transcript)

		state, err := env.handler.GetState(ctx, id)
		require.NoError(t, err)
		require.Equal(t, interviewmanager.StateAcknowledgedAnswer, state.State)
		require.Equal(t, 1, state.AnsweredCount)
	})

	t.Run(`audio failure marks transcript`, func(t *testing.T) {
		env := newTestEnv("Q1")
		env.handler.tts = fakeTTS{fail: true}
		id := env.create(t)
		step, err := env.handler.Start(ctx, id)
		require.NoError(t, err)
		require.Nil(t, step.AudioURL)
		require.Equal(t, "Hello! How are you?"+AudioUnavailable, step.Transcript)
	})

	t.Run(`start twice rejected`, func(t *testing.T) {
		env := newTestEnv("Q1")
		id := env.create(t)
		_, err := env.handler.Start(ctx, id)
		require.NoError(t, err)
		_, err = env.handler.Start(ctx, id)
		require.True(t, errors.Is(err, ErrInterviewActive))
	})

	t.Run(`next step before start rejected and not saved`, func(t *testing.T) {
		env := newTestEnv("Q1")
		id := env.create(t)
		before := env.store.recs[id].Data
		_, err := env.handler.NextStep(ctx, id, "hi")
		require.True(t, errors.Is(err, ErrUnexpectedState))
		require.Equal(t, before, env.store.recs[id].Data)
	})
}

func TestSessionLookup(t *testing.T) {
	ctx := context.Background()

	t.Run(`unknown session`, func(t *testing.T) {
		env := newTestEnv("Q1")
		_, err := env.handler.GetState(ctx, "")
		require.True(t, errors.Is(err, ErrSessionNotFound))
		_, err = env.handler.GetState(ctx, "not-a-uuid")
		require.True(t, errors.Is(err, ErrSessionNotFound))
		_, err = env.handler.Start(ctx, "a0c8d7e2-1111-4a3b-9c3d-000000000000")
		require.True(t, errors.Is(err, ErrSessionNotFound))
	})

	t.Run(`new upload replaces previous session`, func(t *testing.T) {
		env := newTestEnv("Q1")
		first := env.create(t)
		resp, err := env.handler.CreateSession(ctx, first, "cv.docx", []byte("Go developer"))
		require.NoError(t, err)
		require.NotEqual(t, first, resp.SessionID)
		_, err = env.handler.GetState(ctx, first)
		require.True(t, errors.Is(err, ErrSessionNotFound))
	})

	t.Run(`failed upload keeps previous session`, func(t *testing.T) {
		env := newTestEnv("Q1")
		first := env.create(t)
		_, err := env.handler.Start(ctx, first)
		require.NoError(t, err)

		env.gpt.questionsErr = errors.New("llm down")
		_, err = env.handler.CreateSession(ctx, first, "cv.pdf", []byte("Go developer"))
		require.Error(t, err)
		_, err = env.handler.CreateSession(ctx, first, "cv.pdf", nil)
		require.True(t, errors.Is(err, resumeparser.ErrNoText))

		state, err := env.handler.GetState(ctx, first)
		require.NoError(t, err)
		require.Equal(t, interviewmanager.StateAwaitingGreetingResponse, state.State)
		require.Len(t, env.store.recs, 1)
	})

	t.Run(`unsupported resume`, func(t *testing.T) {
		env := newTestEnv("Q1")
		_, err := env.handler.CreateSession(ctx, "", "cv.txt", []byte("text"))
		require.True(t, errors.Is(err, resumeparser.ErrUnsupportedType))
		require.Empty(t, env.store.recs)
	})

	t.Run(`clear`, func(t *testing.T) {
		env := newTestEnv("Q1")
		id := env.create(t)
		require.NoError(t, env.handler.Clear(ctx, id))
		require.NoError(t, env.handler.Clear(ctx, id))
		require.Empty(t, env.store.recs)
	})
}

func TestGetAudio(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv("Q1")

	t.Run(`existing file`, func(t *testing.T) {
		data, err := env.handler.GetAudio(ctx, "greeting.wav")
		require.NoError(t, err)
		require.Equal(t, []byte("RIFF"), data)
	})

	t.Run(`missing file`, func(t *testing.T) {
		_, err := env.handler.GetAudio(ctx, "closing.wav")
		require.True(t, errors.Is(err, filestorage.ErrFileNotFound))
	})

	t.Run(`unsafe names`, func(t *testing.T) {
		for _, name := range []string{"", "../secret", "a/b.wav", `a\b.wav`} {
			_, err := env.handler.GetAudio(ctx, name)
			require.True(t, errors.Is(err, ErrInvalidFileName), name)
		}
	})
}
