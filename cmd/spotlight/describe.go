package main

import (
	"fmt"

	"github.com/fwojciec/spotlight"
)

// Run executes the describe command.
func (c *DescribeCmd) Run(deps *Dependencies) error {
	source, err := spotlight.ParseSource(c.Source)
	if err != nil {
		return printError(deps, err)
	}

	body, err := deps.Describer.FetchResourceDescription(deps.Ctx, source, c.ID)
	if err != nil {
		if spotlight.ErrorCode(err) == spotlight.EUNAVAILABLE {
			fmt.Fprintln(deps.Stderr, "Hint: CurseForge requires CURSEFORGE_API_KEY")
		}
		return printError(deps, err)
	}

	fmt.Fprintln(deps.Stdout, body)
	return nil
}
