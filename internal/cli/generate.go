package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/xtaldev/sgdb/internal/database"
	"github.com/xtaldev/sgdb/internal/store"
	"github.com/xtaldev/sgdb/internal/symmetry"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	ConfigPath string
	Config     Config
}

// GenerateSummary is the success payload of a generate run.
type GenerateSummary struct {
	RunID    string `json:"run_id"`
	Groups   int    `json:"groups"`
	Settings int    `json:"settings"`
	Skipped  int    `json:"skipped"`
	Output   string `json:"output"`
	SkipLog  string `json:"skip_log"`
	Database string `json:"database,omitempty"`
}

func (s GenerateSummary) String() string {
	msg := fmt.Sprintf("Wrote %d space groups (%d settings, %d skipped) to %s; skip log at %s",
		s.Groups, s.Settings, s.Skipped, s.Output, s.SkipLog)
	if s.Database != "" {
		msg += fmt.Sprintf("; SQLite copy at %s", s.Database)
	}
	return msg
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts, Config: DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "generate <settings-file>",
		Short: "Generate the reflection condition database",
		Long: `Generate the reflection condition database for a list of space-group
settings.

The settings file (CUE or JSON) lists records of number, symbol and
qualifier in processing order. For every setting the ten reflection zones
are sampled and the minimal congruence conditions inferred; results are
assembled per group number and written as nested JSON. Settings that cannot
be resolved are recorded in the skip log and never abort the run.

Example:
  sgdb generate settings_list.json -o reflection_conditions.json
  sgdb generate --config sgdb.yaml --db conditions.sqlite`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settingsPath := ""
			if len(args) == 1 {
				settingsPath = args[0]
			}
			return runGenerate(opts, settingsPath, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.Flags().StringVarP(&opts.Config.Output, "output", "o", opts.Config.Output, "output JSON path")
	cmd.Flags().StringVar(&opts.Config.SkipLog, "log", opts.Config.SkipLog, "skip log path")
	cmd.Flags().StringVar(&opts.Config.Database, "db", "", "optional SQLite output path")
	cmd.Flags().StringVar(&opts.Config.Table, "table", "", "space-group table overriding the bundled one")
	cmd.Flags().IntVar(&opts.Config.MaxIndex, "max-index", opts.Config.MaxIndex, "sampling window bound")

	return cmd
}

func runGenerate(opts *GenerateOptions, settingsPath string, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	cfg, err := mergeConfig(opts, settingsPath, cmd)
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	// Fatal setup failures: bad settings file, unloadable table,
	// unwritable skip log. No partial output is produced past this point
	// without a corresponding log record.
	settings, loadErrors := LoadSettings(cfg.Settings, LoadModeFailFast)
	if len(loadErrors) > 0 {
		return WrapExitError(ExitCommandError, "failed to load settings", loadErrors[0])
	}
	logger.Info("settings loaded", "path", cfg.Settings, "count", len(settings))

	table, err := loadTable(cfg.Table)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load space-group table", err)
	}

	runID := uuid.New().String()
	logger.Info("starting run", "run_id", runID, "max_index", cfg.MaxIndex)

	skipLog, err := database.OpenSkipLog(cfg.SkipLog, runID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open skip log", err)
	}
	db, stats, buildErr := database.Build(settings, table, database.BuildOptions{
		MaxIndex: cfg.MaxIndex,
		Log:      skipLog,
		Logger:   logger,
	})
	if closeErr := skipLog.Close(); closeErr != nil && buildErr == nil {
		buildErr = closeErr
	}
	if buildErr != nil {
		return WrapExitError(ExitCommandError, "build failed", buildErr)
	}

	if err := database.WriteFile(db, cfg.Output); err != nil {
		return WrapExitError(ExitCommandError, "failed to write database", err)
	}

	if cfg.Database != "" {
		if err := saveSQLite(cmd.Context(), cfg.Database, db); err != nil {
			return WrapExitError(ExitCommandError, "failed to save SQLite database", err)
		}
	}

	return formatter.Success(GenerateSummary{
		RunID:    runID,
		Groups:   stats.Groups,
		Settings: stats.Settings,
		Skipped:  stats.Skipped,
		Output:   cfg.Output,
		SkipLog:  cfg.SkipLog,
		Database: cfg.Database,
	})
}

// mergeConfig layers config file values under explicit flags and the
// positional settings path.
func mergeConfig(opts *GenerateOptions, settingsPath string, cmd *cobra.Command) (Config, error) {
	cfg := opts.Config
	if opts.ConfigPath != "" {
		fileCfg, err := LoadConfig(opts.ConfigPath)
		if err != nil {
			return cfg, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		flagCfg := cfg
		cfg = fileCfg
		flags := cmd.Flags()
		if flags.Changed("output") {
			cfg.Output = flagCfg.Output
		}
		if flags.Changed("log") {
			cfg.SkipLog = flagCfg.SkipLog
		}
		if flags.Changed("db") {
			cfg.Database = flagCfg.Database
		}
		if flags.Changed("table") {
			cfg.Table = flagCfg.Table
		}
		if flags.Changed("max-index") {
			cfg.MaxIndex = flagCfg.MaxIndex
		}
	}
	if settingsPath != "" {
		cfg.Settings = settingsPath
	}
	if cfg.Settings == "" {
		return cfg, NewExitError(ExitCommandError, "no settings file: pass a path or set it in --config")
	}
	if cfg.MaxIndex <= 0 {
		return cfg, NewExitError(ExitCommandError, "--max-index must be positive")
	}
	return cfg, nil
}

func loadTable(path string) (*symmetry.Table, error) {
	if path == "" {
		return symmetry.DefaultTable()
	}
	return symmetry.LoadTable(path)
}

func saveSQLite(ctx context.Context, path string, db *database.Database) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Save(ctx, db)
}
