package cmd

import (
	"fmt"

	"github.com/harrison/lgrep/internal/config"
	"github.com/harrison/lgrep/internal/display"
	"github.com/harrison/lgrep/internal/logger"
	"github.com/harrison/lgrep/internal/matcher"
	"github.com/harrison/lgrep/internal/scanner"
	"github.com/harrison/lgrep/internal/search"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Author is shown next to the version.
var Author = "lgrep contributors"

// NewRootCommand creates and returns the root cobra command for lgrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lgrep [flags] PATTERN [GLOB...]",
		Short: "Search files or standard input for lines matching a pattern",
		Long: `lgrep prints every line matching PATTERN as <path>:<line>:<text>.

PATTERN is a regular expression (RE2 syntax) unless --fixed-strings is set.
Each GLOB selects files relative to --dir (default "."); candidate paths keep
the directory prefix as typed, so use "./*.txt" or "**/*.txt" rather than
"*.txt". Without a GLOB, standard input is searched and the path is empty.
Line numbers start at 0.

Configuration is read from --config, $LGREP_CONFIG or ./.lgrep.yaml;
command-line flags take precedence.`,
		Example: `  lgrep 'fn main' '**/*.rs' -r
  lgrep -F 'a.b' './*.txt'
  cat log.txt | lgrep '^ERROR'`,
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runSearch,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (%s)\n", Author))

	cmd.Flags().BoolP("recursive", "r", false, "Descend into subdirectories while resolving globs")
	cmd.Flags().BoolP("fixed-strings", "F", false, "Treat PATTERN as a literal string instead of a regular expression")
	cmd.Flags().StringP("dir", "C", ".", "Directory globs are resolved from")
	cmd.Flags().String("encoding", "", "Input encoding, e.g. utf-8, latin1, utf-16 (default utf-8)")
	cmd.Flags().String("color", "", "Highlight matches: auto, always or never (default auto)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity on stderr: trace, debug, info, warn, error (default warn)")
	cmd.Flags().String("config", "", "Path to config file (default: $LGREP_CONFIG or ./.lgrep.yaml)")

	return cmd
}

// runSearch loads configuration, compiles the pattern and runs the search.
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	mode, err := matcher.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	colorMode, err := display.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}

	// Compile before any file or stdin I/O so a bad pattern fails fast.
	m, err := matcher.Compile(args[0], mode)
	if err != nil {
		return err
	}

	sc, err := scanner.New(scanner.Options{Encoding: cfg.Encoding})
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	req := search.Request{
		Globs:     args[1:],
		Root:      dir,
		Recursive: cfg.Recursive,
	}

	stderr := cmd.ErrOrStderr()
	printer := display.NewPrinter(cmd.OutOrStdout(), colorMode, m)
	searcher := &search.Searcher{
		Matcher: m,
		Scanner: sc,
		Sink:    printer,
		Logger:  log,
		Stdin:   cmd.InOrStdin(),
		OnNoFiles: func(req search.Request) {
			display.NoFilesMatched(req.Globs, req.Root, req.Recursive).
				Display(stderr, display.ShouldColor(stderr, colorMode))
		},
	}

	log.LogDebug(fmt.Sprintf("searching for %q (%s mode, color %t)", args[0], mode, printer.Colored()))
	summary, err := searcher.Run(req)
	if err != nil {
		return err
	}
	log.LogInfo(fmt.Sprintf("%d match(es) in %d input(s)", summary.Matches, summary.Files))

	return nil
}

// loadConfig reads the config file and applies explicitly set flags over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFlag, _ := cmd.Flags().GetString("config")
	configPath, required, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to locate config: %w", err)
	}

	load := config.LoadConfig
	if required {
		load = config.LoadRequiredConfig
	}
	cfg, err := load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	flags := cmd.Flags()
	var mode *string
	if flags.Changed("fixed-strings") {
		fixed, _ := flags.GetBool("fixed-strings")
		v := matcher.ModeRegex.String()
		if fixed {
			v = matcher.ModeLiteral.String()
		}
		mode = &v
	}

	cfg.MergeWithFlags(
		changedString(flags, "log-level"),
		changedString(flags, "encoding"),
		mode,
		changedString(flags, "color"),
		changedBool(flags, "recursive"),
	)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// changedString returns the flag value if it was set on the command line, nil otherwise.
func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetString(name)
	return &v
}

// changedBool returns the flag value if it was set on the command line, nil otherwise.
func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetBool(name)
	return &v
}
