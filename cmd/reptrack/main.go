package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/reptrack/reptrack/internal/cli"
	"github.com/reptrack/reptrack/internal/cli/backups"
	"github.com/reptrack/reptrack/internal/cli/system"
	"github.com/reptrack/reptrack/internal/constants"
	"github.com/reptrack/reptrack/internal/keyring"
	"github.com/reptrack/reptrack/internal/logger"
	"github.com/reptrack/reptrack/internal/storage"
	"github.com/reptrack/reptrack/internal/storage/postgres"
	"github.com/reptrack/reptrack/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the OS keyring instead." type:"string" default:"~/.config/reptrack/reptrack.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd    `cmd:"" help:"Initialize reptrack storage and your profile."`
	Doctor   system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Keyring  system.KeyringCmd `cmd:"" help:"Manage database credentials in the OS keyring."`
	Habit    cli.HabitCmd      `cmd:"" help:"Manage habits and daily completion logs."`
	Progress cli.ProgressCmd   `cmd:"" help:"Show progress metrics, streaks, and muscle balance."`
	Insights cli.InsightsCmd   `cmd:"" help:"Show rule-based training insights."`
	Coach    cli.CoachCmd      `cmd:"" help:"Show coaching recommendations."`
	Water    cli.WaterCmd      `cmd:"" help:"Track daily water intake."`
	Measure  cli.MeasureCmd    `cmd:"" help:"Record and review body measurements."`
	Profile  cli.ProfileCmd    `cmd:"" help:"Show or update your profile."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Fitness habit tracker with streaks, analytics, and coaching"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := expandPath(CLI.Config)

	// A stored keyring connection string overrides the default sqlite path,
	// but never an explicit --config.
	if config == expandPath(constants.DefaultConfigPath) {
		if connStr, err := keyring.GetConnectionString(); err == nil {
			config = connStr
		}
	}

	var store storage.Provider
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if _, err := postgres.ValidateConnString(config); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Store credentials with 'reptrack keyring set' instead of embedding them.\n")
			os.Exit(1)
		}
		store = postgres.New(config)
	} else {
		store = sqlite.NewStore(config)
	}

	// Logs live under the default config dir even for postgres backends.
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(expandPath(constants.DefaultConfigPath))}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := cli.NewContext(store)

	// The init command manages its own lifecycle; everything else needs a
	// loaded store.
	if selected := ctx.Selected(); selected != nil && selected.Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
