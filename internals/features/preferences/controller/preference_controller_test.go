package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"motivaku_backend/internals/datastore"
	preferenceRoute "motivaku_backend/internals/features/preferences/route"
)

func newTestApp(store *datastore.MemStore) *fiber.App {
	app := fiber.New()
	preferenceRoute.PreferenceRoutes(app.Group("/api"), store)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func postJSON(app *fiber.App, method, path, body string) (*http.Response, error) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return app.Test(req, -1)
}

func TestGetPreferencesBeforeCreate(t *testing.T) {
	app := newTestApp(datastore.New())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/preferences", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "null", strings.TrimSpace(string(body)))
}

func TestSetPreferences(t *testing.T) {
	app := newTestApp(datastore.New())

	resp, err := postJSON(app, "POST", "/api/preferences",
		`{"nickname":"김철수","goal":"수능 1등급","target_date":"2026-11-19"}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string]any
	decodeBody(t, resp, &got)
	require.Equal(t, "김철수", got["nickname"])
	require.Equal(t, "09:00", got["notification_time"])
	require.Equal(t, true, got["notifications_enabled"])
	require.Equal(t, float64(0), got["streak"])
}

func TestSetPreferencesReplacesExisting(t *testing.T) {
	app := newTestApp(datastore.New())

	resp, err := postJSON(app, "POST", "/api/preferences", `{"nickname":"A","goal":"g1"}`)
	require.NoError(t, err)
	var first map[string]any
	decodeBody(t, resp, &first)

	// POST is create-or-replace: the settings client saves this way
	resp, err = postJSON(app, "POST", "/api/preferences", `{"nickname":"B","goal":"g2"}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var second map[string]any
	decodeBody(t, resp, &second)

	require.NotEqual(t, first["preference_id"], second["preference_id"])
	require.Equal(t, "B", second["nickname"])
}

func TestSetPreferencesValidation(t *testing.T) {
	app := newTestApp(datastore.New())

	// nickname required
	resp, err := postJSON(app, "POST", "/api/preferences", `{"goal":"g"}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// target_date must be an ISO date
	resp, err = postJSON(app, "POST", "/api/preferences",
		`{"nickname":"A","goal":"g","target_date":"11/19/2026"}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePreferencesWithoutRecord(t *testing.T) {
	app := newTestApp(datastore.New())

	// a patch must not silently create the record
	resp, err := postJSON(app, "PATCH", "/api/preferences", `{"nickname":"X"}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdatePreferencesMerges(t *testing.T) {
	store := datastore.New()
	app := newTestApp(store)

	store.Preferences.Set(datastore.SetPreferenceInput{Nickname: "김철수", Goal: "수능 1등급"})

	resp, err := postJSON(app, "PATCH", "/api/preferences", `{"dark_mode":true,"streak":3}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string]any
	decodeBody(t, resp, &got)
	require.Equal(t, true, got["dark_mode"])
	require.Equal(t, float64(3), got["streak"])
	require.Equal(t, "김철수", got["nickname"])
}

func TestPreferenceSummary(t *testing.T) {
	store := datastore.New()
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/preferences/summary", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	target := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	store.Preferences.Set(datastore.SetPreferenceInput{
		Nickname:   "김철수",
		Goal:       "수능 1등급",
		TargetDate: target,
	})

	resp, err = app.Test(httptest.NewRequest("GET", "/api/preferences/summary", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string]any
	decodeBody(t, resp, &got)
	require.Equal(t, "김철수", got["nickname"])
	require.Equal(t, float64(5), got["days_left"])
}
