package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"motivaku_backend/internals/datastore"
	favoriteRoute "motivaku_backend/internals/features/favorites/route"
)

func newTestApp(store *datastore.MemStore) *fiber.App {
	app := fiber.New()
	favoriteRoute.FavoriteRoutes(app.Group("/api"), store)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func addFavorite(t *testing.T, app *fiber.App, quoteID string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/favorites",
		strings.NewReader(`{"quote_id":"`+quoteID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAddAndListFavorites(t *testing.T) {
	store := datastore.New()
	app := newTestApp(store)

	quote := store.Quotes.All()[0]
	resp := addFavorite(t, app, quote.QuoteID)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/favorites", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var favorites []map[string]any
	decodeBody(t, resp, &favorites)
	require.Len(t, favorites, 1)
	require.Equal(t, quote.QuoteID, favorites[0]["quote_id"])

	joined, ok := favorites[0]["quote"].(map[string]any)
	require.True(t, ok, "favorite should be joined with its quote")
	require.Equal(t, quote.QuoteText, joined["quote_text"])
}

func TestAddFavoriteTwiceKeepsOneEntry(t *testing.T) {
	store := datastore.New()
	app := newTestApp(store)

	quote := store.Quotes.All()[0]
	addFavorite(t, app, quote.QuoteID)
	addFavorite(t, app, quote.QuoteID)

	require.Len(t, store.Favorites.All(), 1)
}

func TestFavoriteWithDanglingReference(t *testing.T) {
	store := datastore.New()
	app := newTestApp(store)

	// the reference is weak; a favorite may outlive (or precede) its quote
	addFavorite(t, app, uuid.NewString())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/favorites", nil), -1)
	require.NoError(t, err)

	var favorites []map[string]any
	decodeBody(t, resp, &favorites)
	require.Len(t, favorites, 1)
	require.Nil(t, favorites[0]["quote"])
}

func TestRemoveFavorite(t *testing.T) {
	store := datastore.New()
	app := newTestApp(store)

	quote := store.Quotes.All()[0]
	addFavorite(t, app, quote.QuoteID)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/favorites/"+quote.QuoteID, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.Empty(t, store.Favorites.All())

	// removing again is still a 204, not an error
	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/favorites/"+quote.QuoteID, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAddFavoriteValidation(t *testing.T) {
	app := newTestApp(datastore.New())

	resp := addFavorite(t, app, "not-a-uuid")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
