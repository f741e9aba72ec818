package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/learntrack/learntrack/internal/cli"
	"github.com/learntrack/learntrack/internal/constants"
	apperrors "github.com/learntrack/learntrack/internal/errors"
	"github.com/learntrack/learntrack/internal/logger"
	"github.com/learntrack/learntrack/internal/storage"
	"github.com/learntrack/learntrack/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path. A .json extension selects a plain JSON store instead of SQLite." type:"path" default:"~/.config/learntrack/learntrack.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize learntrack storage."`
	New      cli.NewCmd      `cmd:"" help:"Start a new challenge."`
	List     cli.ListCmd     `cmd:"" help:"List all challenges."`
	Use      cli.UseCmd      `cmd:"" help:"Select the active challenge."`
	Log      cli.LogCmd      `cmd:"" help:"Log what you learned for a day."`
	Unlog    cli.UnlogCmd    `cmd:"" help:"Remove a day's entry."`
	Status   cli.StatusCmd   `cmd:"" help:"Show a challenge's calendar and stats."`
	Complete cli.CompleteCmd `cmd:"" help:"Mark a challenge complete."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete a challenge."`
	Export   cli.ExportCmd   `cmd:"" help:"Export all data to a backup file."`
	Import   cli.ImportCmd   `cmd:"" help:"Replace all data from a backup file."`
	Clear    cli.ClearCmd    `cmd:"" help:"Delete all stored data."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track daily progress on multi-day learning challenges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		// Logging is best-effort; the tracker still works without it.
		fmt.Fprintf(os.Stderr, "Warning: could not set up logging: %v\n", err)
	}

	gateway := storage.ForPath(CLI.Config)
	defer gateway.Close()

	st := store.New(gateway)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		st.Load()
	}

	appCtx := &cli.Context{
		Store:   st,
		Gateway: gateway,
		Debug:   CLI.Debug,
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
