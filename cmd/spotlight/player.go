package main

import (
	"fmt"

	"github.com/fwojciec/spotlight"
)

// Run executes the player add command.
func (c *PlayerAddCmd) Run(deps *Dependencies) error {
	player := &spotlight.Player{
		Name:        c.Name,
		PlayerType:  spotlight.PlayerType(c.Type),
		AuthServer:  c.AuthServer,
		AuthAccount: c.AuthAccount,
		Avatar:      c.Avatar,
	}
	if err := deps.Players.CreatePlayer(deps.Ctx, player); err != nil {
		return printError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Added player %q (%s, uuid %s)\n", player.Name, player.ID, player.UUID)
	return nil
}

// Run executes the player list command.
func (c *PlayerListCmd) Run(deps *Dependencies) error {
	players, err := deps.Players.FindPlayers(deps.Ctx, spotlight.PlayerFilter{})
	if err != nil {
		return printError(deps, err)
	}

	if len(players) == 0 {
		fmt.Fprintln(deps.Stdout, "No players found. Use 'spotlight player add' to create one.")
		return nil
	}

	for _, p := range players {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.ID, p.Name, p.Description())
	}
	return nil
}

// Run executes the player delete command.
func (c *PlayerDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Players.DeletePlayer(deps.Ctx, c.ID); err != nil {
		if spotlight.ErrorCode(err) == spotlight.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: player %q not found. Use 'spotlight player list' to see available players.\n", c.ID)
			return err
		}
		return printError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted player %s\n", c.ID)
	return nil
}
