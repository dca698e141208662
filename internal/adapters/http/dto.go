package http

import "github.com/lighty7/taro/internal/domain"

// ReadingResponse is the JSON shape returned by GET /v1/reading.
type ReadingResponse struct {
	ID             string             `json:"id"`
	Spread         SpreadResponse     `json:"spread"`
	Cards          []DrawnResponse    `json:"cards"`
	Interpretation InterpretationResp `json:"interpretation"`
	Meta           MetaResp           `json:"meta"`
}

type SpreadResponse struct {
	Type        domain.SpreadType `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Positions   []string          `json:"positions"`
}

type CardResponse struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Number      string        `json:"number"`
	Arcana      domain.Arcana `json:"arcana"`
	Suit        domain.Suit   `json:"suit"`
	Upright     string        `json:"upright"`
	Reversed    string        `json:"reversed"`
	Description string        `json:"description"`
	Keywords    []string      `json:"keywords"`
	Image       string        `json:"image"`
}

type DrawnResponse struct {
	Position string       `json:"position"`
	Reversed bool         `json:"reversed"`
	Meaning  string       `json:"meaning"`
	Card     CardResponse `json:"card"`
}

type InterpretationResp struct {
	Text      string `json:"text"`
	Available bool   `json:"available"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

type SpreadsResponse struct {
	Spreads []SpreadResponse `json:"spreads"`
}

type CardsResponse struct {
	Filter domain.GalleryFilter `json:"filter"`
	Count  int                  `json:"count"`
	Cards  []CardResponse       `json:"cards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toSpread(s domain.SpreadDefinition) SpreadResponse {
	return SpreadResponse{
		Type:        s.Type,
		Name:        s.Name,
		Description: s.Description,
		Positions:   s.Positions,
	}
}

func toCard(c *domain.Card) CardResponse {
	return CardResponse{
		ID:          c.ID,
		Name:        c.Name,
		Number:      c.Number,
		Arcana:      c.Arcana,
		Suit:        c.Suit,
		Upright:     c.Upright,
		Reversed:    c.Reversed,
		Description: c.Description,
		Keywords:    c.Keywords,
		Image:       c.Image,
	}
}
