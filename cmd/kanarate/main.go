package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"kanarate/internal/cli"
	"kanarate/internal/config"
	"kanarate/internal/corpus"
	"kanarate/internal/kana"
	"kanarate/internal/rate"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version bool   `short:"v" help:"Show version information"`
	Config  string `short:"c" type:"path" help:"Path to TOML config file (optional)"`

	Rates RatesCmd `cmd:"" default:"withargs" help:"Per-show articulation rate table"`
	Dist  DistCmd  `cmd:"" help:"Per-show rate distribution payloads"`
}

// globals carries state shared by the commands
type globals struct {
	cfg config.Config
}

func main() {
	// The config file only moves flag defaults, so it must be loaded
	// before kong resolves them.
	cfg, err := config.Load(peekConfigPath(os.Args[1:]))
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("kanarate"),
		kong.Description("Articulation-rate analyzer for Japanese subtitles"),
		kong.UsageOnError(),
		kong.Vars{
			"version":      version,
			"default_root": cfg.Root,
			"default_unit": cfg.Unit,
			"default_bins": fmt.Sprintf("%d", cfg.Bins),
			"default_out":  cfg.Out,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	if err := ctx.Run(&globals{cfg: cfg}); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// peekConfigPath extracts the --config value ahead of the main parse.
func peekConfigPath(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case len(arg) > len("--config=") && arg[:len("--config=")] == "--config=":
			return arg[len("--config="):]
		case len(arg) > len("-c=") && arg[:len("-c=")] == "-c=":
			return arg[len("-c="):]
		}
	}
	return ""
}

// newReader builds the shared phonological reader.
func newReader() (rate.Reader, error) {
	reader, err := kana.NewReader()
	if err != nil {
		return nil, fmt.Errorf("failed to load reading dictionary: %w", err)
	}
	return reader, nil
}

// collectShows wraps corpus discovery with the configured backup folder.
func collectShows(root string, includeBackup bool, g *globals) ([]corpus.Show, error) {
	return corpus.CollectShows(root, includeBackup, g.cfg.BackupDir)
}

// useTUI reports whether the interactive scan view should run.
func useTUI(plain bool) bool {
	return !plain && isatty.IsTerminal(os.Stdout.Fd())
}
