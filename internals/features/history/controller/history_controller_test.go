package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"motivaku_backend/internals/datastore"
	historyRoute "motivaku_backend/internals/features/history/route"
)

func newTestApp(store *datastore.MemStore) *fiber.App {
	app := fiber.New()
	historyRoute.HistoryRoutes(app.Group("/api"), store)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestAddHistory(t *testing.T) {
	store := datastore.New()
	app := newTestApp(store)

	quote := store.Quotes.All()[0]
	req := httptest.NewRequest("POST", "/api/history",
		strings.NewReader(`{"quote_id":"`+quote.QuoteID+`"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string]any
	decodeBody(t, resp, &got)
	require.Equal(t, quote.QuoteID, got["quote_id"])
	require.NotEmpty(t, got["viewed_at"])
}

func TestGetHistoryTruncatesToTen(t *testing.T) {
	store := datastore.New()
	app := newTestApp(store)

	quotes := store.Quotes.All()
	for i := 0; i < 12; i++ {
		store.History.Add(quotes[i].QuoteID)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/history", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entries []map[string]any
	decodeBody(t, resp, &entries)
	require.Len(t, entries, 10)

	// newest first: the last added view leads the listing
	require.Equal(t, quotes[11].QuoteID, entries[0]["quote_id"])
	require.Equal(t, quotes[2].QuoteID, entries[9]["quote_id"])

	// every entry carries its joined quote
	for _, e := range entries {
		require.NotNil(t, e["quote"])
	}
}

func TestClearHistory(t *testing.T) {
	store := datastore.New()
	app := newTestApp(store)

	store.History.Add(store.Quotes.All()[0].QuoteID)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/history", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.Empty(t, store.History.All())
}
