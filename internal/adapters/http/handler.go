package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lighty7/taro/internal/app"
	"github.com/lighty7/taro/internal/domain"
)

type Handler struct {
	svc           *app.ReadingService
	defaultSpread domain.SpreadType
}

func NewHandler(svc *app.ReadingService, defaultSpread domain.SpreadType) *Handler {
	return &Handler{svc: svc, defaultSpread: defaultSpread}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/spreads", h.ListSpreads)
	e.GET("/v1/cards", h.ListCards)
	e.GET("/v1/cards/:id", h.GetCard)
	e.GET("/v1/reading", h.ReadSpread)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListSpreads(c echo.Context) error {
	spreads, err := h.svc.Spreads(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	out := SpreadsResponse{Spreads: make([]SpreadResponse, len(spreads))}
	for i, s := range spreads {
		out.Spreads[i] = toSpread(s)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListCards(c echo.Context) error {
	f, err := domain.ParseGalleryFilter(c.QueryParam("filter"))
	if err != nil {
		return mapError(c, err)
	}
	cards, err := h.svc.Gallery(c.Request().Context(), f)
	if err != nil {
		return mapError(c, err)
	}

	out := CardsResponse{Filter: f, Count: len(cards), Cards: make([]CardResponse, len(cards))}
	for i := range cards {
		out.Cards[i] = toCard(&cards[i])
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetCard(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be an integer"})
	}
	card, err := h.svc.Card(c.Request().Context(), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toCard(card))
}

func (h *Handler) ReadSpread(c echo.Context) error {
	st := h.defaultSpread
	if raw := c.QueryParam("spread"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrInvalidSpreadType.Error()})
		}
		st = domain.SpreadType(n)
	}

	picks, err := parsePicks(c.QueryParam("picks"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "picks must be a comma-separated list of non-negative integers"})
	}

	resp, err := h.svc.ReadSpread(c.Request().Context(), app.ReadSpreadRequest{
		SpreadType: st,
		Picks:      picks,
	})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, toResponse(resp, requestID))
}

func parsePicks(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	picks := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, domain.ErrCardNotInDeck
		}
		picks = append(picks, n)
	}
	return picks, nil
}

func toResponse(r app.ReadSpreadResponse, requestID string) ReadingResponse {
	cards := make([]DrawnResponse, len(r.Cards))
	for i, dc := range r.Cards {
		cards[i] = DrawnResponse{
			Position: dc.Position,
			Reversed: dc.Reversed,
			Meaning:  dc.Meaning(),
			Card:     toCard(dc.Card),
		}
	}
	return ReadingResponse{
		ID:     r.ID,
		Spread: toSpread(r.Spread),
		Cards:  cards,
		Interpretation: InterpretationResp{
			Text:      r.Interpretation.Text,
			Available: r.Interpretation.Available,
		},
		Meta: MetaResp{
			RequestID: requestID,
			LatencyMS: r.LatencyMS,
		},
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrCardNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidSpreadType),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrTooManyPicks),
		errors.Is(err, domain.ErrCardNotInDeck):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled):
		slog.Warn("request cancelled", "request_id", requestID)
		return c.NoContent(http.StatusServiceUnavailable)
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
