package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lighty7/taro/internal/domain"
)

//go:embed data/major_arcana.json data/spreads.yaml
var dataFS embed.FS

const (
	majorFile   = "data/major_arcana.json"
	spreadsFile = "data/spreads.yaml"
)

// majorRecord is the on-disk shape of a Major Arcana entry.
type majorRecord struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Number      string   `json:"number"`
	Upright     string   `json:"upright"`
	Reversed    string   `json:"reversed"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// EmbeddedStore builds the catalog from embedded data files on first use.
type EmbeddedStore struct {
	once    sync.Once
	catalog *domain.Catalog
	err     error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	s.catalog, s.err = build()
}

// Catalog returns the validated catalog. Every call returns the same instance.
func (s *EmbeddedStore) Catalog(_ context.Context) (*domain.Catalog, error) {
	s.once.Do(s.init)
	return s.catalog, s.err
}

func build() (*domain.Catalog, error) {
	raw, err := dataFS.ReadFile(majorFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded majors: %w", err)
	}
	var majors []majorRecord
	if err := json.Unmarshal(raw, &majors); err != nil {
		return nil, fmt.Errorf("parse embedded majors: %w", err)
	}

	raw, err = dataFS.ReadFile(spreadsFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded spreads: %w", err)
	}
	var spreads []domain.SpreadDefinition
	if err := yaml.Unmarshal(raw, &spreads); err != nil {
		return nil, fmt.Errorf("parse embedded spreads: %w", err)
	}

	cards := make([]domain.Card, 0, len(majors)+len(domain.Suits)*len(ranks))
	for _, m := range majors {
		cards = append(cards, domain.Card{
			ID:          m.ID,
			Name:        m.Name,
			Number:      m.Number,
			Arcana:      domain.Major,
			Suit:        domain.SuitNone,
			Upright:     m.Upright,
			Reversed:    m.Reversed,
			Description: m.Description,
			Keywords:    m.Keywords,
			Image:       majorImage(m.ID),
		})
	}
	cards = append(cards, minorArcana(len(majors))...)

	c, err := domain.NewCatalog(cards, spreads)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}
