// Package cli provides the cobra command tree of lint-gost-tex.
//
// The root command lints a document; subcommands list rules, manage the
// baseline, watch for changes, serve MCP and run the packaging tasks.
// Services are injected by the composition root through SetServices.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driving"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
)

// version is set by the composition root.
var version = "dev"

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

var (
	lintService     driving.LintService
	baselineService driving.BaselineService
	watchService    driving.WatchService
	releaseService  driving.ReleaseService
	ruleCatalog     driving.RuleCatalog
)

// Services holds the driving ports the commands call.
type Services struct {
	Lint     driving.LintService
	Baseline driving.BaselineService
	Watch    driving.WatchService
	Release  driving.ReleaseService
	Rules    driving.RuleCatalog
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	lintService = s.Lint
	baselineService = s.Baseline
	watchService = s.Watch
	releaseService = s.Release
	ruleCatalog = s.Rules
}

// SetVersion sets the version reported by the version command and stamped
// into built artifacts.
func SetVersion(v string) {
	version = v
}

var (
	configPath   string
	rootPath     string
	outputFormat string
	useBaseline  bool
	verbose      bool
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "lint-gost-tex",
	Short: "Check LaTeX sources against GOST report formatting rules",
	Long: `Lints a LaTeX document: the root .tex file and the files it
\include's or \input's. Every rule violation is printed with its
location, rule ID and the offending line.

Exits with status 1 when issues are found.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		logger.SetOutput(cmd.ErrOrStderr())
		if outputFormat != formatText && outputFormat != formatJSON {
			return fmt.Errorf("%w: unknown format %q (want text or json)", domain.ErrInvalidInput, outputFormat)
		}
		return nil
	},
	RunE: runLint,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default lint-gost-tex.toml)")
	flags.StringVar(&rootPath, "root", "", "root .tex file, overriding the config")
	flags.StringVarP(&outputFormat, "format", "f", formatText, "output format: text or json")
	flags.BoolVar(&useBaseline, "baseline", false, "hide issues recorded in the baseline")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// lintOptions builds the options shared by every command that lints.
func lintOptions() domain.LintOptions {
	return domain.LintOptions{
		ConfigPath:    configPath,
		Root:          rootPath,
		ApplyBaseline: useBaseline,
	}
}

func runLint(cmd *cobra.Command, _ []string) error {
	if lintService == nil {
		return errors.New("lint service not configured")
	}

	report, err := lintService.Lint(cmd.Context(), lintOptions())
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	if report.HasIssues() {
		return domain.ErrIssuesFound
	}
	return nil
}
