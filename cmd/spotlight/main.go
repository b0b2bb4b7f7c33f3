package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/goquery"
	"github.com/fwojciec/spotlight/htmltomarkdown"
	spotlighthttp "github.com/fwojciec/spotlight/http"
	"github.com/fwojciec/spotlight/search"
	spotslog "github.com/fwojciec/spotlight/slog"
	"github.com/fwojciec/spotlight/sqlite"
	"github.com/fwojciec/spotlight/strutil"
	"github.com/fwojciec/spotlight/toml"
	"github.com/fwojciec/spotlight/yaml"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Config file path. Empty means the default location, if present.
	ConfigPath string

	// Input for interactive commands.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Searcher overrides the network searcher, for end-to-end testing.
	Searcher spotlight.Searcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Color:  isTerminal(stdout),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("spotlight"),
		kong.Description("Search a Minecraft launcher's players, instances, history and mod catalogs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'spotlight --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)

	configPath := cli.Config
	if configPath == "" {
		configPath = m.ConfigPath
	}
	cfg, err := loadConfig(configPath, filepath.Dir(m.DBPath))
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", spotlight.ErrorMessage(err))
		return err
	}
	if cli.Lang != "" {
		cfg.Language = cli.Lang
	}
	if key := os.Getenv("CURSEFORGE_API_KEY"); key != "" {
		cfg.CurseForgeAPIKey = key
	}
	deps.Config = cfg

	if cmd == "settings" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SPOTLIGHT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	mods := sqlite.NewModDatabase(m.DB)
	deps.DB = m.DB
	deps.Players = sqlite.NewPlayerService(m.DB)
	deps.Instances = sqlite.NewInstanceService(m.DB)
	deps.History = sqlite.NewHistoryService(m.DB)
	deps.Mods = mods
	deps.ModImport = mods
	deps.Translator = &search.Translator{Mods: mods}

	switch cmd {
	case "search", "repl", "tui", "describe":
		if err := m.wireNetwork(deps); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", spotlight.ErrorMessage(err))
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireNetwork builds the remote search stack: provider clients behind a
// shared per-host rate limiter, logging, a response cache, and query
// translation through the mod database.
func (m *Main) wireNetwork(deps *Dependencies) error {
	cfg := deps.Config
	logger := deps.Logger

	limiter := spotlighthttp.NewHostLimiter(cfg.RateLimit, 2)
	opts := []spotlighthttp.Option{
		spotlighthttp.WithTimeout(cfg.HTTPTimeout),
		spotlighthttp.WithUserAgent(cfg.UserAgent),
		spotlighthttp.WithRateLimiter(limiter),
	}

	modrinth := spotlighthttp.NewModrinthService(opts...)
	curseforge := spotlighthttp.NewCurseForgeService(
		goquery.NewDescriptionConverter(htmltomarkdown.NewConverter()),
		append(opts, spotlighthttp.WithAPIKey(cfg.CurseForgeAPIKey))...,
	)

	router := &search.SourceRouter{
		Resources: map[spotlight.Source]spotlight.ResourceService{
			spotlight.SourceCurseForge: spotslog.NewLoggingResourceService(curseforge, logger),
			spotlight.SourceModrinth:   spotslog.NewLoggingResourceService(modrinth, logger),
		},
		Describers: map[spotlight.Source]spotlight.ResourceDescriber{
			spotlight.SourceCurseForge: spotslog.NewLoggingResourceDescriber(curseforge, logger),
			spotlight.SourceModrinth:   spotslog.NewLoggingResourceDescriber(modrinth, logger),
		},
	}
	deps.Describer = router

	if m.Searcher != nil {
		deps.Searcher = m.Searcher
		return nil
	}

	scorer, err := newScorer(cfg.Search.Scorer)
	if err != nil {
		return err
	}

	resources := &search.TranslatingResourceService{
		Next:       search.NewResponseCache(router),
		Mods:       deps.Mods,
		Translator: deps.Translator,
	}
	network := search.NewNetworkSearcher(resources, scorer, cfg.Search, logger)
	if cfg.CurseForgeAPIKey == "" {
		logger.Warn("CURSEFORGE_API_KEY not set; searching Modrinth only")
		network.Sources = []spotlight.Source{spotlight.SourceModrinth}
	}
	deps.Searcher = spotslog.NewLoggingSearcher(network, logger)
	return nil
}

// newScorer resolves a scorer name. The bigram Dice coefficient is the default.
func newScorer(name string) (spotlight.Scorer, error) {
	if name == "" || strings.EqualFold(name, "dice") {
		return search.DiceScorer, nil
	}
	s, err := strutil.NewScorer(name)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// loadConfig applies the config file at path over the defaults. With an
// empty path, config.yaml or config.toml in dir is used when present.
func loadConfig(path, dir string) (spotlight.Config, error) {
	cfg := spotlight.DefaultConfig()

	explicit := path != ""
	candidates := []string{path}
	if !explicit {
		candidates = []string{
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.yml"),
			filepath.Join(dir, "config.toml"),
		}
	}

	for _, p := range candidates {
		var err error
		switch ext := strings.ToLower(filepath.Ext(p)); ext {
		case ".yaml", ".yml":
			err = yaml.LoadConfig(p, &cfg)
		case ".toml":
			err = toml.LoadConfig(p, &cfg)
		default:
			return cfg, spotlight.Errorf(spotlight.EINVALID, "unsupported config file extension %q", ext)
		}
		if spotlight.ErrorCode(err) == spotlight.ENOTFOUND && !explicit {
			continue
		}
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a tint handler on stderr, colored when stderr is a
// terminal. Debug records are shown only when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    !isTerminal(w),
		TimeFormat: "15:04:05.000",
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func defaultDBPath() string {
	if path := os.Getenv("SPOTLIGHT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "spotlight.db"
	}
	dir := filepath.Join(home, ".spotlight")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "spotlight.db")
}

// printError reports err on stderr in the CLI's error format and returns it.
func printError(deps *Dependencies, err error) error {
	var e *spotlight.Error
	if errors.As(err, &e) {
		fmt.Fprintf(deps.Stderr, "error: %s\n", e.Message)
	} else {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
	}
	return err
}
