package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config spotlight.Config

	DB        *sqlite.DB
	Players   spotlight.PlayerService
	Instances spotlight.InstanceService
	History   spotlight.HistoryService
	Mods      spotlight.ModDatabase
	ModImport ModImporter

	// Network stack, wired only for commands that reach remote sources.
	Searcher   spotlight.Searcher
	Describer  spotlight.ResourceDescriber
	Translator spotlight.QueryTranslator

	// Color enables colored output.
	Color bool
}

// ModImporter loads translation records from CSV.
type ModImporter interface {
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Config  string `type:"path" env:"SPOTLIGHT_CONFIG" help:"Config file (.yaml, .yml or .toml)"`
	Lang    string `env:"SPOTLIGHT_LANG" help:"Display language, e.g. en or zh-Hans"`

	Search   SearchCmd   `cmd:"" help:"Search players, instances, history and remote resources"`
	Repl     ReplCmd     `cmd:"" help:"Interactive search session reading queries from stdin"`
	Tui      TuiCmd      `cmd:"" help:"Interactive search modal"`
	Player   PlayerCmd   `cmd:"" help:"Manage players"`
	Instance InstanceCmd `cmd:"" help:"Manage instances"`
	Visit    VisitCmd    `cmd:"" help:"Record a visited route"`
	History  HistoryCmd  `cmd:"" help:"Inspect and edit routing history"`
	Mods     ModsCmd     `cmd:"" help:"Manage the mod translation database"`
	Describe DescribeCmd `cmd:"" help:"Show the description of a remote resource"`
	Settings SettingsCmd `cmd:"" help:"Print the effective configuration"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string        `arg:"" help:"Search query"`
	Timeout time.Duration `default:"15s" help:"Maximum time to wait for network results"`
	Offline bool          `help:"Skip the network search"`
	Enter   bool          `help:"Activate the first result"`
	Select  int           `help:"Activate the result at this 1-based position"`
	Plain   bool          `help:"Print unnumbered results without truncation or color"`
}

// ReplCmd is the "repl" subcommand.
type ReplCmd struct {
	Offline bool `help:"Skip network searches"`
	Watch   bool `default:"true" negatable:"" help:"Reload local state when the database changes"`
}

// TuiCmd is the "tui" subcommand.
type TuiCmd struct {
	Offline bool `help:"Skip network searches"`
	Inline  bool `help:"Render below the prompt instead of in the alternate screen"`
}

// PlayerCmd groups the player subcommands.
type PlayerCmd struct {
	Add    PlayerAddCmd    `cmd:"" help:"Add a player"`
	List   PlayerListCmd   `cmd:"" help:"List players"`
	Delete PlayerDeleteCmd `cmd:"" help:"Delete a player"`
}

// PlayerAddCmd is the "player add" subcommand.
type PlayerAddCmd struct {
	Name        string `arg:"" help:"Player name"`
	Type        string `default:"offline" enum:"offline,3rdparty,microsoft" help:"Account type"`
	AuthServer  string `help:"Authentication server name for third-party accounts"`
	AuthAccount string `help:"Account identifier, e.g. an email"`
	Avatar      string `help:"Avatar URL"`
}

// PlayerListCmd is the "player list" subcommand.
type PlayerListCmd struct{}

// PlayerDeleteCmd is the "player delete" subcommand.
type PlayerDeleteCmd struct {
	ID string `arg:"" help:"Player ID"`
}

// InstanceCmd groups the instance subcommands.
type InstanceCmd struct {
	Add    InstanceAddCmd    `cmd:"" help:"Add an instance"`
	List   InstanceListCmd   `cmd:"" help:"List instances"`
	Delete InstanceDeleteCmd `cmd:"" help:"Delete an instance"`
}

// InstanceAddCmd is the "instance add" subcommand.
type InstanceAddCmd struct {
	Name          string `arg:"" help:"Instance name"`
	Version       string `arg:"" help:"Game version"`
	Loader        string `default:"Unknown" enum:"Unknown,Fabric,Forge,NeoForge,Quilt" help:"Mod loader"`
	LoaderVersion string `help:"Mod loader version"`
	Icon          string `help:"Icon path or URL"`
	Starred       bool   `help:"Star the instance"`
}

// InstanceListCmd is the "instance list" subcommand.
type InstanceListCmd struct{}

// InstanceDeleteCmd is the "instance delete" subcommand.
type InstanceDeleteCmd struct {
	ID string `arg:"" help:"Instance ID"`
}

// VisitCmd is the "visit" subcommand.
type VisitCmd struct {
	Route string `arg:"" help:"Route, e.g. /settings/java"`
}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List    HistoryListCmd    `cmd:"" default:"1" help:"List visited routes, oldest first"`
	Remove  HistoryRemoveCmd  `cmd:"" help:"Remove routes starting with a prefix"`
	Replace HistoryReplaceCmd `cmd:"" help:"Replace a substring in every route"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct{}

// HistoryRemoveCmd is the "history remove" subcommand.
type HistoryRemoveCmd struct {
	Prefix string `arg:"" help:"Route prefix"`
}

// HistoryReplaceCmd is the "history replace" subcommand.
type HistoryReplaceCmd struct {
	From string `arg:"" help:"Substring to replace"`
	To   string `arg:"" help:"Replacement"`
}

// ModsCmd groups the translation database subcommands.
type ModsCmd struct {
	Import    ModsImportCmd    `cmd:"" help:"Import mod records from CSV"`
	Lookup    ModsLookupCmd    `cmd:"" help:"Look up the translated name of a slug"`
	Translate ModsTranslateCmd `cmd:"" help:"Show how a Chinese query is rewritten"`
}

// ModsImportCmd is the "mods import" subcommand.
type ModsImportCmd struct {
	Path string `arg:"" type:"existingfile" help:"CSV file: mcmod_id,curseforge_slug,modrinth_slug,name[,subname[,abbr]]"`
}

// ModsLookupCmd is the "mods lookup" subcommand.
type ModsLookupCmd struct {
	Slug   string `arg:"" help:"Resource slug"`
	Source string `default:"Modrinth" help:"Source the slug belongs to"`
}

// ModsTranslateCmd is the "mods translate" subcommand.
type ModsTranslateCmd struct {
	Query string `arg:"" help:"Query to translate"`
}

// DescribeCmd is the "describe" subcommand.
type DescribeCmd struct {
	Source string `arg:"" help:"CurseForge or Modrinth"`
	ID     string `arg:"" help:"Resource ID"`
}

// SettingsCmd is the "settings" subcommand.
type SettingsCmd struct{}
