package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	httpapi "github.com/formforge/backend/api/http"
	"github.com/formforge/backend/api/http/handlers"
	"github.com/formforge/backend/pkg/formschema"
	"github.com/formforge/backend/pkg/health"
	"github.com/formforge/backend/pkg/user"
)

// stubProvider records prompts and plays back a canned completion.
type stubProvider struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubProvider) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// memUserRepo is an in-memory user.Repository with store-assigned ids.
type memUserRepo struct {
	users  []user.User
	nextID int64
	err    error
}

func (m *memUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	m.nextID++
	u.ID = m.nextID
	m.users = append(m.users, u)
	return u, nil
}

func (m *memUserRepo) List(_ context.Context) ([]user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]user.User(nil), m.users...), nil
}

func newTestApp(promptUC formschema.UseCase, userUC user.UseCase) *fiber.App {
	app := fiber.New()
	httpapi.Register(app,
		handlers.NewPromptHandler(promptUC),
		handlers.NewUserHandler(userUC),
		handlers.NewHealthHandler(health.NewService()),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	return doJSON(t, app, http.MethodPost, path, body)
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	return doJSON(t, app, http.MethodGet, path, "")
}
