package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	filestorage "mock-interview-backend/lib/file-storage"
	interviewhandler "mock-interview-backend/lib/interview"
	interviewmanager "mock-interview-backend/lib/interview/manager"
	"mock-interview-backend/middleware"
	interviewapimodels "mock-interview-backend/models/api/interview"
)

const testCookie = "interview_session"

type fakeInterview struct {
	interviewhandler.Provider
	lastID   string
	lastText string
	err      error
}

func (f *fakeInterview) CreateSession(ctx context.Context, previousID, fileName string, content []byte) (interviewapimodels.CreateResponse, error) {
	f.lastID = previousID
	if f.err != nil {
		return interviewapimodels.CreateResponse{}, f.err
	}
	return interviewapimodels.CreateResponse{SessionID: "new-session", QuestionsCount: 3}, nil
}

func (f *fakeInterview) NextStep(ctx context.Context, id, text string) (interviewapimodels.StepResponse, error) {
	f.lastID = id
	f.lastText = text
	if f.err != nil {
		return interviewapimodels.StepResponse{}, f.err
	}
	return interviewapimodels.StepResponse{Transcript: "Q1", State: interviewmanager.StateListening}, nil
}

func (f *fakeInterview) GetAudio(ctx context.Context, fileName string) ([]byte, error) {
	if fileName == "greeting.wav" {
		return []byte("RIFF"), nil
	}
	return nil, filestorage.ErrFileNotFound
}

func newTestApp(fake *fakeInterview) *fiber.App {
	interviewhandler.Instance = fake
	app := fiber.New()
	app.Use(middleware.InterviewSession(testCookie))
	InitInterviewApiRouters(app, testCookie, time.Hour)
	InitReportApiRouters(app)
	InitAudioApiRouters(app)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	result := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(body, &result))
	return result
}

func TestInterviewApi(t *testing.T) {
	t.Run(`upload sets session cookie`, func(t *testing.T) {
		fake := &fakeInterview{}
		app := newTestApp(fake)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("resume", "cv.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/interview/upload", body)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "old-session"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "old-session", fake.lastID)
		require.Contains(t, resp.Header.Get(fiber.HeaderSetCookie), testCookie+"=new-session")

		result := decodeBody(t, resp)
		require.Equal(t, "success", result["status"])
	})

	t.Run(`upload without file`, func(t *testing.T) {
		app := newTestApp(&fakeInterview{})
		req := httptest.NewRequest(http.MethodPost, "/interview/upload", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`next step passes trimmed text and session`, func(t *testing.T) {
		fake := &fakeInterview{}
		app := newTestApp(fake)
		req := httptest.NewRequest(http.MethodPost, "/interview/next_step", strings.NewReader(`{"text": "  hello  "}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "s1"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "s1", fake.lastID)
		require.Equal(t, "hello", fake.lastText)

		result := decodeBody(t, resp)
		data := result["data"].(map[string]interface{})
		require.Equal(t, "LISTENING", data["state"])
		require.Nil(t, data["audio_url"])
	})

	t.Run(`error statuses`, func(t *testing.T) {
		cases := map[error]int{
			interviewhandler.ErrSessionNotFound:                        fiber.StatusBadRequest,
			errors.Wrap(interviewhandler.ErrUnexpectedState, "FINISHED"): fiber.StatusBadRequest,
			interviewhandler.ErrSessionBusy:                            fiber.StatusConflict,
			errors.New("llm down"):                                     fiber.StatusInternalServerError,
		}
		for stepErr, status := range cases {
			app := newTestApp(&fakeInterview{err: stepErr})
			req := httptest.NewRequest(http.MethodPost, "/interview/next_step", strings.NewReader(`{"text": "a"}`))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, status, resp.StatusCode, stepErr.Error())
			require.Equal(t, "fail", decodeBody(t, resp)["status"])
		}
	})

	t.Run(`audio`, func(t *testing.T) {
		app := newTestApp(&fakeInterview{})
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/audio/greeting.wav", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "audio/wav", resp.Header.Get(fiber.HeaderContentType))

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/audio/missing.wav", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
