package routes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentmarks_backend/internals/features/students/marks/repository"
	"studentmarks_backend/internals/features/students/marks/service"
	"studentmarks_backend/internals/features/students/marks/views"
	helper "studentmarks_backend/internals/helpers"
)

type downStore struct {
	*repository.MemoryStudentMarkStore
}

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func newApp(store repository.StudentMarkStore) *fiber.App {
	app := fiber.New(fiber.Config{Views: views.NewEngine(), ErrorHandler: helper.FromFiberError})
	SetupRoutes(app, service.NewStudentMarkService(store, 0))
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func TestHealth(t *testing.T) {
	resp, body := get(t, newApp(repository.NewMemoryStudentMarkStore()), "/health")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"OK"`)

	resp, body = get(t, newApp(downStore{repository.NewMemoryStudentMarkStore()}), "/health")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body, `"status":"DOWN"`)
}

func TestMetricsEndpoint(t *testing.T) {
	resp, body := get(t, newApp(repository.NewMemoryStudentMarkStore()), "/metrics")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "go_goroutines")
}

func TestMountedRoutes(t *testing.T) {
	app := newApp(repository.NewMemoryStudentMarkStore())

	resp, _ := get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := get(t, app, "/result?id=nonexistent")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Error fetching data", body)

	resp, body = get(t, app, "/nope")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Page not found", body)
}

func TestSubmitBudgetSharedAcrossFormAndAPI(t *testing.T) {
	app := newApp(repository.NewMemoryStudentMarkStore())

	form := url.Values{}
	for i, sub := range []string{"Math", "Sci", "Eng", "Hist"} {
		n := string(rune('1' + i))
		form.Set("subject"+n, sub)
		form.Set("marks"+n, "50")
	}
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusFound, resp.StatusCode)
	}

	body := `{"name":"Bob","subjects":[{"subject_name":"A","marks":1},{"subject_name":"B","marks":1},{"subject_name":"C","marks":1},{"subject_name":"D","marks":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/students/marks", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
