package ports

import (
	"context"

	"github.com/lighty7/taro/internal/domain"
)

// Synthesizer turns a completed spread into interpretation text.
type Synthesizer interface {
	Synthesize(ctx context.Context, cards []domain.DrawnCard, spreadName string) (string, error)
}
