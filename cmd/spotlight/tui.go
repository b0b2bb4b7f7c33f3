package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/spotlight/bubbletea"
	"github.com/fwojciec/spotlight/search"
)

// Run executes the tui command. The picked result is activated after the
// modal closes so its output lands on the normal screen.
func (c *TuiCmd) Run(deps *Dependencies) error {
	notifier := bubbletea.NewNotifier()
	defer notifier.Close()

	s, err := newSpotlight(deps, c.Offline, deps.Config.Search.Debounce, search.WithOnChange(notifier.Notify))
	if err != nil {
		return printError(deps, err)
	}
	defer s.Close()

	model := bubbletea.NewModel(deps.Ctx, s, notifier,
		bubbletea.WithTranslation(deps.Config.ShowTranslation()),
	)

	opts := []tea.ProgramOption{tea.WithContext(deps.Ctx), tea.WithOutput(deps.Stdout)}
	if _, ok := deps.Stdin.(*os.File); !ok && deps.Stdin != nil {
		opts = append(opts, tea.WithInput(deps.Stdin))
	}
	if !c.Inline {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return printError(deps, err)
	}

	selected := model.Selected()
	if selected == nil {
		return nil
	}
	host := &printHost{w: deps.Stdout, history: deps.History}
	if err := s.Select(deps.Ctx, host, selected); err != nil {
		return printError(deps, err)
	}
	return nil
}
