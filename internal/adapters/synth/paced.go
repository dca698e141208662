package synth

import (
	"context"
	"log/slog"
	"time"

	"github.com/lighty7/taro/internal/domain"
)

// Paced implements ports.Synthesizer with the rule-based domain.Synthesize,
// held back by a fixed delay so a reveal does not land instantly.
// The delay never changes the text.
type Paced struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewPaced(delay time.Duration, logger *slog.Logger) *Paced {
	return &Paced{delay: delay, logger: logger}
}

func (p *Paced) Synthesize(ctx context.Context, cards []domain.DrawnCard, spreadName string) (string, error) {
	if p.delay > 0 {
		t := time.NewTimer(p.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	text, err := domain.Synthesize(cards, spreadName)
	if err != nil {
		return "", err
	}
	p.logger.DebugContext(ctx, "synthesized reading", "spread", spreadName, "cards", len(cards), "delay", p.delay)
	return text, nil
}
