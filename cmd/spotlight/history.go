package main

import (
	"fmt"
)

// Run executes the visit command.
func (c *VisitCmd) Run(deps *Dependencies) error {
	if err := deps.History.Visit(deps.Ctx, c.Route); err != nil {
		return printError(deps, err)
	}
	return nil
}

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	routes, err := deps.History.ListHistory(deps.Ctx)
	if err != nil {
		return printError(deps, err)
	}

	if len(routes) == 0 {
		fmt.Fprintln(deps.Stdout, "No history yet.")
		return nil
	}

	for _, r := range routes {
		fmt.Fprintln(deps.Stdout, r)
	}
	return nil
}

// Run executes the history remove command.
func (c *HistoryRemoveCmd) Run(deps *Dependencies) error {
	if err := deps.History.RemoveHistory(deps.Ctx, c.Prefix); err != nil {
		return printError(deps, err)
	}
	return nil
}

// Run executes the history replace command.
func (c *HistoryReplaceCmd) Run(deps *Dependencies) error {
	if err := deps.History.ReplaceHistory(deps.Ctx, c.From, c.To); err != nil {
		return printError(deps, err)
	}
	return nil
}
