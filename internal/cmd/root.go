package cmd

import (
	"fmt"
	"os"

	"github.com/harrison/minigrep/internal/config"
	"github.com/harrison/minigrep/internal/display"
	"github.com/harrison/minigrep/internal/logger"
	"github.com/harrison/minigrep/internal/runner"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for minigrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the lines of a file that contain a query string",
		Long: `minigrep reads a file and prints every line that contains the query
as a plain substring, in the order the lines appear in the file.

Matching is case-sensitive unless the CASE_INSENSITIVE environment
variable is set (to any value) or --ignore-case is given.

Settings are loaded from .minigrep/config.yaml if present.
CLI flags override settings file values.

Flags must come before the query; everything from the query on is
positional. Use -- to search for a query that starts with a dash.

Examples:
  minigrep to poem.txt
  CASE_INSENSITIVE=1 minigrep to poem.txt
  minigrep --highlight --color always frog poem.txt
  minigrep -- -v notes.txt`,
		Version: Version,
		// Arguments are validated by config.Build so missing ones surface as
		// MissingArgumentError rather than a cobra usage error.
		Args: cobra.ArbitraryArgs,
		RunE: runSearch,
		// Silence usage on errors to avoid duplicate help text; main prints the error
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flag parsing stops at the query, so the positionals reach config.Build verbatim.
	cmd.Flags().SetInterspersed(false)
	// Declared here so cobra does not claim -v as a version shorthand.
	cmd.Flags().Bool("version", false, "Print the minigrep version")
	cmd.Flags().BoolP("ignore-case", "i", false, "Match case-insensitively (same as setting CASE_INSENSITIVE)")
	cmd.Flags().String("config", "", "Path to settings file (default: .minigrep/config.yaml)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity on stderr (trace, debug, info, warn, error)")
	cmd.Flags().String("color", "", "When to color highlighted matches (auto, always, never)")
	cmd.Flags().Bool("highlight", false, "Highlight the query inside each printed line")

	return cmd
}

// runSearch implements the root command
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Build(append([]string{cmd.Name()}, args...), os.LookupEnv)
	if err != nil {
		return err
	}
	if ignoreCase, _ := cmd.Flags().GetBool("ignore-case"); ignoreCase {
		cfg.CaseSensitive = false
	}

	settings, missingPath, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), settings.LogLevel)
	if missingPath != "" {
		log.LogWarn(fmt.Sprintf("settings file %s not found, using defaults", missingPath))
	}
	log.LogTrace(fmt.Sprintf("settings: log_level=%s color=%s highlight=%t", settings.LogLevel, settings.Color, settings.Highlight))

	mode := display.ColorNever
	if settings.Highlight {
		mode = display.ColorMode(settings.Color)
	}

	return runner.Run(cfg, runner.Options{
		Printer: display.NewPrinter(cmd.OutOrStdout(), mode),
		Logger:  log,
	})
}

// loadSettings loads the settings file and applies flags that were set explicitly.
// missingPath is set when the file named by --config does not exist.
func loadSettings(cmd *cobra.Command) (settings *config.Settings, missingPath string, err error) {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath != "" {
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			missingPath = configPath
		}
		settings, err = config.LoadSettings(configPath)
	} else {
		var dir string
		dir, err = os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get working directory: %w", err)
		}
		settings, err = config.LoadSettingsFromDir(dir)
	}
	if err != nil {
		return nil, "", err
	}

	var logLevel, colorMode *string
	var highlight *bool
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorMode = &v
	}
	if cmd.Flags().Changed("highlight") {
		v, _ := cmd.Flags().GetBool("highlight")
		highlight = &v
	}
	settings.MergeWithFlags(logLevel, colorMode, highlight)

	if err := settings.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid settings: %w", err)
	}

	return settings, missingPath, nil
}
