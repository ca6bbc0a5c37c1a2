package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	apimodels "mock-interview-backend/models/api"
)

const testCookie = "interview_session"

type notification struct {
	Code    int    `json:"code"`
	Method  string `json:"method"`
	Path    string `json:"path"`
	Session string `json:"session"`
	Error   string `json:"error"`
}

func newNotifyServer(t *testing.T) (*httptest.Server, chan notification) {
	received := make(chan notification, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err == nil {
			var n notification
			if json.Unmarshal(body, &n) == nil {
				received <- n
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, received
}

func newNotifyApp(addr string) *fiber.App {
	app := fiber.New()
	app.Use(InterviewSession(testCookie))
	app.Use(ErrNotify(addr))
	app.Post("/fail", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("boom"))
	})
	app.Post("/bad", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("bad"))
	})
	return app
}

func TestErrNotify(t *testing.T) {
	t.Run(`server error is reported with request data`, func(t *testing.T) {
		srv, received := newNotifyServer(t)
		app := newNotifyApp(srv.URL)

		req := httptest.NewRequest(http.MethodPost, "/fail", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "session-a"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		// следующий запрос переиспользует контекст fiber
		next := httptest.NewRequest(http.MethodPost, "/bad", nil)
		next.AddCookie(&http.Cookie{Name: testCookie, Value: "session-b"})
		_, err = app.Test(next)
		require.NoError(t, err)

		select {
		case n := <-received:
			require.Equal(t, fiber.StatusInternalServerError, n.Code)
			require.Equal(t, http.MethodPost, n.Method)
			require.Equal(t, "/fail", n.Path)
			require.Equal(t, "session-a", n.Session)
			require.Equal(t, "boom", n.Error)
		case <-time.After(5 * time.Second):
			t.Fatal("уведомление не получено")
		}
	})

	t.Run(`client error is not reported`, func(t *testing.T) {
		srv, received := newNotifyServer(t)
		app := newNotifyApp(srv.URL)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/bad", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		select {
		case <-received:
			t.Fatal("уведомление для 4xx не ожидается")
		case <-time.After(200 * time.Millisecond):
		}
	})
}

func TestInterviewSession(t *testing.T) {
	app := fiber.New()
	app.Use(InterviewSession(testCookie))
	var seen []string
	app.Get("/", func(ctx *fiber.Ctx) error {
		seen = append(seen, GetSessionID(ctx))
		return ctx.SendStatus(fiber.StatusOK)
	})

	for _, id := range []string{"first", "second"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: id})
		_, err := app.Test(req)
		require.NoError(t, err)
	}
	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	require.Equal(t, []string{"first", "second", ""}, seen)
}
