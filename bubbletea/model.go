// Package bubbletea implements the interactive search modal as a Bubble Tea
// program. Typing updates the query, network results stream in as the
// orchestrator reports changes, and Enter picks the highlighted result.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/search"
	"github.com/mattn/go-runewidth"
)

// ChangedMsg reports that the orchestrator state changed.
type ChangedMsg struct{}

// Notifier coalesces orchestrator changes into ChangedMsg values. Pass
// Notify to search.WithOnChange.
type Notifier struct {
	ch   chan struct{}
	done chan struct{}
}

// NewNotifier returns a Notifier with room for one pending change.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1), done: make(chan struct{})}
}

// Close releases the pending wait. Call it once the program has exited.
func (n *Notifier) Close() {
	close(n.done)
}

// Notify records a change without blocking.
func (n *Notifier) Notify(search.Status) {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

func (n *Notifier) wait() tea.Msg {
	select {
	case <-n.ch:
		return ChangedMsg{}
	case <-n.done:
		return nil
	}
}

// Model is the search modal.
type Model struct {
	ctx       context.Context
	spotlight *search.Spotlight
	notifier  *Notifier

	input           textinput.Model
	styles          *Styles
	showTranslation bool
	width           int
	maxResults      int

	results  []spotlight.Result
	groups   []*spotlight.Group
	cursor   int
	selected spotlight.Result
}

// Option configures a Model.
type Option func(*Model)

// WithTranslation shows translated resource names and descriptions.
func WithTranslation(show bool) Option {
	return func(m *Model) {
		m.showTranslation = show
	}
}

// WithMaxResults bounds the number of rendered results.
func WithMaxResults(n int) Option {
	return func(m *Model) {
		m.maxResults = n
	}
}

// NewModel returns a modal over s. notifier must be the one registered
// with the orchestrator behind s.
func NewModel(ctx context.Context, s *search.Spotlight, notifier *Notifier, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search players, instances, settings, mods..."
	ti.Prompt = "> "
	ti.Focus()

	m := &Model{
		ctx:        ctx,
		spotlight:  s,
		notifier:   notifier,
		input:      ti,
		styles:     NewStyles(),
		width:      80,
		maxResults: 30,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Selected returns the result picked with Enter, or nil if the modal was
// dismissed.
func (m *Model) Selected() spotlight.Result {
	return m.selected
}

// Init starts the cursor blink and listens for orchestrator changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.notifier.wait)
}

// Update handles key presses, window resizes and orchestrator changes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case ChangedMsg:
		m.refresh()
		return m, m.notifier.wait

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.spotlight.Close()
			return m, tea.Quit
		case "enter":
			if len(m.results) == 0 {
				return m, nil
			}
			m.selected = m.results[m.cursor]
			return m, tea.Quit
		case "up", "ctrl+p", "shift+tab":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n", "tab":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.spotlight.SetQuery(m.ctx, value)
		m.cursor = 0
		m.refresh()
	}
	return m, cmd
}

// refresh reloads results, keeping the cursor in range.
func (m *Model) refresh() {
	m.groups = spotlight.GroupResults(m.spotlight.Results())
	m.results = spotlight.FlattenGroups(m.groups)
	if m.cursor >= len(m.results) {
		m.cursor = max(len(m.results)-1, 0)
	}
}

// View renders the input, grouped results and a status line.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if strings.TrimSpace(m.input.Value()) != "" && len(m.results) == 0 && !m.spotlight.Searching() {
		b.WriteString(m.styles.Dim.Render("No results."))
		b.WriteString("\n")
	}

	n := 0
	for _, g := range m.groups {
		if n >= m.maxResults {
			break
		}
		b.WriteString(m.styles.Heading.Render(fmt.Sprintf("%s (%d)", g.Title, g.Count())))
		b.WriteString("\n")
		for _, r := range g.Results {
			if n >= m.maxResults {
				break
			}
			b.WriteString(m.renderResult(r, n == m.cursor))
			b.WriteString("\n")
			n++
		}
	}

	b.WriteString("\n")
	b.WriteString(m.status())
	return b.String()
}

func (m *Model) renderResult(r spotlight.Result, selected bool) string {
	width := max(m.width-4, 20)
	title := runewidth.Truncate(spotlight.DisplayTitle(r, m.showTranslation), width, "…")
	line := "  " + title
	if selected {
		line = m.styles.Selected.Render("> " + title)
	}
	if tagged, ok := r.(spotlight.Tagged); ok && len(tagged.Tags()) > 0 {
		line += " " + m.styles.Tags.Render("["+strings.Join(tagged.Tags(), ", ")+"]")
	}
	if desc := spotlight.DisplayDescription(r, m.showTranslation); desc != "" {
		desc = strings.Join(strings.Fields(desc), " ")
		line += "\n    " + m.styles.Dim.Render(runewidth.Truncate(desc, width-2, "…"))
	}
	return line
}

func (m *Model) status() string {
	if m.spotlight.Searching() {
		return m.styles.Status.Render("Searching...")
	}
	return m.styles.Help.Render("↑/↓ move • enter select • esc close")
}
