package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lighty7/taro/internal/adapters/catalog"
	httpadapter "github.com/lighty7/taro/internal/adapters/http"
	"github.com/lighty7/taro/internal/adapters/synth"
	"github.com/lighty7/taro/internal/app"
	"github.com/lighty7/taro/internal/domain"
)

// topRNG keeps the deck in catalog order and never reverses a card.
type topRNG struct{}

func (topRNG) Intn(n int) int { return n - 1 }

func newServer(t *testing.T, limiter *httpadapter.RateLimiter) *echo.Echo {
	t.Helper()
	svc := app.NewReadingService(catalog.NewEmbeddedStore(), synth.NewPaced(0, slog.Default()), topRNG{}, slog.Default())

	e := echo.New()
	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(slog.Default()))
	if limiter != nil {
		e.Use(httpadapter.RateLimitMiddleware(limiter))
	}
	httpadapter.NewHandler(svc, domain.SpreadThreeCard).Register(e)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(newServer(t, nil), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestReadSpread_Default(t *testing.T) {
	rec := get(newServer(t, nil), "/v1/reading")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp httpadapter.ReadingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.SpreadThreeCard, resp.Spread.Type)
	require.Len(t, resp.Cards, 3)
	assert.Equal(t, "The Past", resp.Cards[0].Position)
	assert.Equal(t, "The Fool", resp.Cards[0].Card.Name)
	assert.Equal(t, "New beginnings, optimism, trust in life", resp.Cards[0].Meaning)
	assert.True(t, resp.Interpretation.Available)
	assert.Contains(t, resp.Interpretation.Text, `The "Past, Present, Future" spread`)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), resp.Meta.RequestID)
}

func TestReadSpread_SingleCardFool(t *testing.T) {
	rec := get(newServer(t, nil), "/v1/reading?spread=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpadapter.ReadingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	want, err := domain.Synthesize([]domain.DrawnCard{{
		Card: &domain.Card{Name: "The Fool", Arcana: domain.Major, Suit: domain.SuitNone, Keywords: []string{"Beginnings", "Freedom"}},
	}}, "Single Card Draw")
	require.NoError(t, err)
	assert.Equal(t, want, resp.Interpretation.Text)
}

func TestReadSpread_Picks(t *testing.T) {
	rec := get(newServer(t, nil), "/v1/reading?spread=3&picks=77,21")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpadapter.ReadingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Cards, 3)
	assert.Equal(t, "King of Pentacles", resp.Cards[0].Card.Name)
	assert.Equal(t, "The World", resp.Cards[1].Card.Name)
	assert.Equal(t, "The Fool", resp.Cards[2].Card.Name)
}

func TestReadSpread_BadRequests(t *testing.T) {
	e := newServer(t, nil)
	for _, target := range []string{
		"/v1/reading?spread=4",
		"/v1/reading?spread=abc",
		"/v1/reading?spread=1&picks=0,1",
		"/v1/reading?picks=x",
		"/v1/reading?picks=-1",
		"/v1/reading?picks=78",
	} {
		rec := get(e, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)

		var body httpadapter.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Error, target)
	}
}

func TestListSpreads(t *testing.T) {
	rec := get(newServer(t, nil), "/v1/spreads")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpadapter.SpreadsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Spreads, 3)
	assert.Equal(t, "The Horseshoe", resp.Spreads[2].Name)
	assert.Len(t, resp.Spreads[2].Positions, 5)
}

func TestListCards(t *testing.T) {
	e := newServer(t, nil)

	tests := map[string]int{
		"/v1/cards":                  78,
		"/v1/cards?filter=major":     22,
		"/v1/cards?filter=Cups":      14,
		"/v1/cards?filter=pentacles": 14,
	}
	for target, want := range tests {
		rec := get(e, target)
		require.Equal(t, http.StatusOK, rec.Code, target)

		var resp httpadapter.CardsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, want, resp.Count, target)
		assert.Len(t, resp.Cards, want, target)
	}

	rec := get(e, "/v1/cards?filter=minor")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCard(t *testing.T) {
	e := newServer(t, nil)

	rec := get(e, "/v1/cards/16")
	require.Equal(t, http.StatusOK, rec.Code)
	var card httpadapter.CardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "The Tower", card.Name)
	assert.Equal(t, domain.SuitNone, card.Suit)

	assert.Equal(t, http.StatusNotFound, get(e, "/v1/cards/78").Code)
	assert.Equal(t, http.StatusBadRequest, get(e, "/v1/cards/tower").Code)
}

func TestRateLimit(t *testing.T) {
	e := newServer(t, httpadapter.NewRateLimiter(0.001, 2))

	assert.Equal(t, http.StatusOK, get(e, "/healthz").Code)
	assert.Equal(t, http.StatusOK, get(e, "/healthz").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(e, "/healthz").Code)
}
