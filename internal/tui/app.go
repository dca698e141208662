// Package tui is the interactive terminal front end: it owns one reading
// session and turns key presses into session transitions.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lighty7/taro/internal/app"
	"github.com/lighty7/taro/internal/domain"
)

// View selects which screen is shown.
type View int

const (
	ViewReading View = iota
	ViewGallery
)

// deckWindow is how many face-down cards are shown around the cursor.
const deckWindow = 21

// AppModel is the top-level Bubble Tea model. All session mutation happens
// inside Update, so the session never sees concurrent access.
type AppModel struct {
	ctx     context.Context
	svc     *app.ReadingService
	session *domain.Session
	logger  *slog.Logger

	view    View
	cursor  int
	reading int // bumped on every new reading so stale interpretations are dropped

	interpreting   bool
	interpretation *app.Interpretation
	spinner        spinner.Model
	notice         string

	filter        int
	gallery       []domain.Card
	galleryOffset int

	width  int
	height int
}

// NewAppModel wraps an existing session.
func NewAppModel(ctx context.Context, svc *app.ReadingService, session *domain.Session, logger *slog.Logger) AppModel {
	return AppModel{
		ctx:     ctx,
		svc:     svc,
		session: session,
		logger:  logger,
		spinner: spinner.New(spinner.WithSpinner(spinner.Moon)),
	}
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.interpreting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case InterpretationMsg:
		return m.handleInterpretation(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m AppModel) handleInterpretation(msg InterpretationMsg) (tea.Model, tea.Cmd) {
	if msg.Reading != m.reading {
		return m, nil
	}
	m.interpreting = false
	if msg.Err != nil {
		m.logger.Warn("interpretation failed", "error", msg.Err)
		m.interpretation = &app.Interpretation{Text: app.UnavailableText}
		return m, nil
	}
	m.interpretation = &msg.Interpretation
	return m, nil
}

func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "g":
		return m.toggleGallery()
	}

	if m.view == ViewGallery {
		return m.handleGalleryKey(msg)
	}
	return m.handleReadingKey(msg)
}

func (m AppModel) handleReadingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch key := msg.String(); key {
	case "1", "3", "5":
		t := domain.SpreadType(key[0] - '0')
		if err := m.session.SelectSpread(t); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.logger.Debug("spread selected", "spread", t)
		return m.newReading(), nil

	case "n":
		m.session.Reset()
		m.logger.Debug("new reading", "spread", m.session.Spread().Type)
		return m.newReading(), nil

	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(m.session.Deck())-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = max(len(m.session.Deck())-1, 0)

	case "enter", " ":
		return m.draw()
	}

	return m, nil
}

func (m AppModel) newReading() AppModel {
	m.reading++
	m.cursor = 0
	m.interpreting = false
	m.interpretation = nil
	return m
}

func (m AppModel) draw() (tea.Model, tea.Cmd) {
	dc, err := m.session.DrawAt(m.cursor)
	if err != nil {
		// Stale or over-full draws are ignored; the session is unchanged.
		if errors.Is(err, domain.ErrSpreadAlreadyFull) {
			m.notice = "The spread is complete. Press n for a new reading."
		} else {
			m.notice = err.Error()
		}
		return m, nil
	}
	m.logger.Debug("card drawn", "card", dc.Card.Name, "position", dc.Position, "reversed", dc.Reversed)

	if m.cursor >= len(m.session.Deck()) {
		m.cursor = max(len(m.session.Deck())-1, 0)
	}
	if m.session.Phase() != domain.PhaseRevealed {
		return m, nil
	}

	reading, err := m.session.Reading()
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.interpreting = true
	return m, tea.Batch(m.spinner.Tick, interpretCmd(m.ctx, m.svc, reading, m.reading))
}

// interpretCmd runs the synthesizer off the update loop, pacing delay included.
func interpretCmd(ctx context.Context, svc *app.ReadingService, reading domain.Reading, n int) tea.Cmd {
	return func() tea.Msg {
		in, err := svc.Interpret(ctx, reading)
		return InterpretationMsg{Reading: n, Interpretation: in, Err: err}
	}
}

func (m AppModel) toggleGallery() (tea.Model, tea.Cmd) {
	if m.view == ViewGallery {
		m.view = ViewReading
		return m, nil
	}
	m.view = ViewGallery
	return m.loadGallery(), nil
}

func (m AppModel) loadGallery() AppModel {
	cards, err := m.svc.Gallery(m.ctx, domain.GalleryFilters[m.filter])
	if err != nil {
		m.notice = err.Error()
		return m
	}
	m.gallery = cards
	m.galleryOffset = 0
	return m
}

func (m AppModel) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = ViewReading
	case "tab":
		m.filter = (m.filter + 1) % len(domain.GalleryFilters)
		return m.loadGallery(), nil
	case "shift+tab":
		m.filter = (m.filter + len(domain.GalleryFilters) - 1) % len(domain.GalleryFilters)
		return m.loadGallery(), nil
	case "down", "j":
		if m.galleryOffset < len(m.gallery)-1 {
			m.galleryOffset++
		}
	case "up", "k":
		if m.galleryOffset > 0 {
			m.galleryOffset--
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m AppModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Celestia"))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render("The Oracle of the Stars"))
	b.WriteString("\n\n")

	if m.view == ViewGallery {
		b.WriteString(m.galleryView())
	} else {
		b.WriteString(m.readingView())
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(NoticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help()))
	return b.String()
}

func (m AppModel) readingView() string {
	spread := m.session.Spread()
	drawn := m.session.Drawn()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", CardNameStyle.Render(spread.Name), MeaningStyle.Render(spread.Description))

	for i, pos := range spread.Positions {
		b.WriteString(PositionStyle.Render(pos))
		if i < len(drawn) {
			b.WriteString(renderDrawn(drawn[i]))
		} else {
			b.WriteString(EmptySlotStyle.Render("·"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.session.Phase() == domain.PhaseSelecting {
		fmt.Fprintf(&b, "Choose a card: %d remaining\n", m.session.RemainingToDraw())
		b.WriteString(m.deckView())
		b.WriteString("\n")
		return b.String()
	}

	switch {
	case m.interpreting:
		b.WriteString(m.spinner.View())
		b.WriteString(" Consulting the stars...")
	case m.interpretation != nil:
		width := 72
		if m.width > 8 && m.width-4 < width {
			width = m.width - 4
		}
		b.WriteString(InterpretationStyle.Width(width).Render(m.interpretation.Text))
	}
	b.WriteString("\n")
	return b.String()
}

func renderDrawn(dc domain.DrawnCard) string {
	name := CardNameStyle.Render(dc.Card.Name)
	if dc.Reversed {
		name += " " + ReversedStyle.Render("(reversed)")
	}
	return name + "  " + MeaningStyle.Render(dc.Meaning())
}

// deckView renders a window of face-down cards around the cursor.
func (m AppModel) deckView() string {
	n := len(m.session.Deck())
	if n == 0 {
		return ""
	}
	start := max(m.cursor-deckWindow/2, 0)
	end := min(start+deckWindow, n)
	start = max(end-deckWindow, 0)

	var b strings.Builder
	if start > 0 {
		b.WriteString(EmptySlotStyle.Render("‹ "))
	}
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(CursorStyle.Render("▓"))
		} else {
			b.WriteString(FaceDownStyle.Render("▒"))
		}
	}
	if end < n {
		b.WriteString(EmptySlotStyle.Render(" ›"))
	}
	fmt.Fprintf(&b, "  %d/%d", m.cursor+1, n)
	return b.String()
}

func (m AppModel) galleryView() string {
	var b strings.Builder
	for i, f := range domain.GalleryFilters {
		label := strings.ToUpper(string(f[:1])) + string(f[1:])
		if i == m.filter {
			b.WriteString(ActiveTabStyle.Render(label))
		} else {
			b.WriteString(InactiveTabStyle.Render(label))
		}
	}
	fmt.Fprintf(&b, "  %d cards\n\n", len(m.gallery))

	rows := 12
	if m.height > 10 {
		rows = m.height - 9
	}
	end := min(m.galleryOffset+rows, len(m.gallery))
	for _, c := range m.gallery[m.galleryOffset:end] {
		fmt.Fprintf(&b, "%-6s %s  %s\n", c.Number, CardNameStyle.Render(c.Name), MeaningStyle.Render(strings.Join(c.Keywords, ", ")))
	}
	return b.String()
}

func (m AppModel) help() string {
	if m.view == ViewGallery {
		return "tab/shift+tab filter • ↑/↓ scroll • g/esc back • q quit"
	}
	if m.session.Phase() == domain.PhaseSelecting {
		return "←/→ move • enter draw • 1/3/5 spread • n new • g gallery • q quit"
	}
	return "n new reading • 1/3/5 spread • g gallery • q quit"
}

// Interpretation returns the current interpretation, if one has arrived.
func (m AppModel) Interpretation() (app.Interpretation, bool) {
	if m.interpretation == nil {
		return app.Interpretation{}, false
	}
	return *m.interpretation, true
}

// Session exposes the session driven by the model.
func (m AppModel) Session() *domain.Session {
	return m.session
}

var _ tea.Model = AppModel{}
