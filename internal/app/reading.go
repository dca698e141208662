package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lighty7/taro/internal/domain"
	"github.com/lighty7/taro/internal/ports"
)

// UnavailableText replaces the interpretation when synthesis fails.
const UnavailableText = "The interpretation is unavailable right now."

// ReadSpreadRequest is the application-level input (no HTTP types).
// Picks[i] is the index, in the remaining deck, of the card chosen for the
// i-th draw. Missing picks take the top card.
type ReadSpreadRequest struct {
	SpreadType domain.SpreadType
	Picks      []int
}

// ReadSpreadResponse is the application-level output.
type ReadSpreadResponse struct {
	ID             string
	Spread         domain.SpreadDefinition
	Cards          []domain.DrawnCard
	Interpretation Interpretation
	LatencyMS      int64
}

// Interpretation is the synthesized text, or a placeholder when Available is false.
type Interpretation struct {
	Text      string
	Available bool
}

// ReadingService creates sessions and turns completed ones into readings.
type ReadingService struct {
	catalogs ports.CatalogSource
	synth    ports.Synthesizer
	rng      domain.RNG
	logger   *slog.Logger
}

func NewReadingService(cs ports.CatalogSource, synth ports.Synthesizer, rng domain.RNG, logger *slog.Logger) *ReadingService {
	return &ReadingService{
		catalogs: cs,
		synth:    synth,
		rng:      rng,
		logger:   logger,
	}
}

func (s *ReadingService) catalog(ctx context.Context) (*domain.Catalog, error) {
	c, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return c, nil
}

// NewSession starts an interactive reading for spread type t.
func (s *ReadingService) NewSession(ctx context.Context, t domain.SpreadType) (*domain.Session, error) {
	c, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	sess, err := domain.NewSession(c, t, s.rng)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return sess, nil
}

// Interpret synthesizes a revealed reading. Synthesis failures degrade to
// UnavailableText; only context errors are returned.
func (s *ReadingService) Interpret(ctx context.Context, r domain.Reading) (Interpretation, error) {
	text, err := s.synth.Synthesize(ctx, r.Cards, r.Spread.Name)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Interpretation{}, err
		}
		s.logger.WarnContext(ctx, "interpretation unavailable", "spread", r.Spread.Name, "error", err)
		return Interpretation{Text: UnavailableText}, nil
	}
	return Interpretation{Text: text, Available: true}, nil
}

// ReadSpread performs a complete reading in one call: shuffle, draw every
// position, interpret.
func (s *ReadingService) ReadSpread(ctx context.Context, req ReadSpreadRequest) (ReadSpreadResponse, error) {
	sess, err := s.NewSession(ctx, req.SpreadType)
	if err != nil {
		return ReadSpreadResponse{}, err
	}
	if len(req.Picks) > sess.RemainingToDraw() {
		return ReadSpreadResponse{}, domain.ErrTooManyPicks
	}

	for i := 0; sess.RemainingToDraw() > 0; i++ {
		idx := 0
		if i < len(req.Picks) {
			idx = req.Picks[i]
		}
		if _, err := sess.DrawAt(idx); err != nil {
			return ReadSpreadResponse{}, fmt.Errorf("draw %d: %w", i+1, err)
		}
	}

	reading, err := sess.Reading()
	if err != nil {
		return ReadSpreadResponse{}, err
	}

	start := time.Now()
	interp, err := s.Interpret(ctx, reading)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return ReadSpreadResponse{}, fmt.Errorf("interpret: %w", err)
	}

	return ReadSpreadResponse{
		ID:             uuid.NewString(),
		Spread:         reading.Spread,
		Cards:          reading.Cards,
		Interpretation: interp,
		LatencyMS:      latency,
	}, nil
}

func (s *ReadingService) Spreads(ctx context.Context) ([]domain.SpreadDefinition, error) {
	c, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Spreads(), nil
}

// Gallery lists catalog cards matching f, in catalog order.
func (s *ReadingService) Gallery(ctx context.Context, f domain.GalleryFilter) ([]domain.Card, error) {
	c, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Filter(f), nil
}

func (s *ReadingService) Card(ctx context.Context, id int) (*domain.Card, error) {
	c, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Card(id)
}
