// Command lint-gost-tex checks LaTeX sources against GOST report
// formatting rules.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gost-tex/lint-gost-tex/internal/adapters/driven/config/file"
	"github.com/gost-tex/lint-gost-tex/internal/adapters/driven/filesystem"
	"github.com/gost-tex/lint-gost-tex/internal/adapters/driven/release/github"
	"github.com/gost-tex/lint-gost-tex/internal/adapters/driven/release/gobuild"
	"github.com/gost-tex/lint-gost-tex/internal/adapters/driven/storage/sqlite"
	"github.com/gost-tex/lint-gost-tex/internal/adapters/driving/cli"
	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/services"
	"github.com/gost-tex/lint-gost-tex/internal/rules"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	words := filesystem.NewWordlistLoader()
	registry := rules.NewRegistry()
	rules.RegisterDefaults(registry, words)

	lint := services.NewLintService(
		file.NewConfigLoader(),
		filesystem.NewDocumentLoader(),
		registry,
	)
	baselines := sqlite.NewFactory()
	lint.SetBaselineStores(baselines)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Lint:     lint,
		Baseline: services.NewBaselineService(lint, baselines),
		Watch:    services.NewWatchService(lint, filesystem.NewWatcher()),
		Release: services.NewReleaseService(
			gobuild.NewBuilder(gobuild.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}),
			github.NewPublisher(),
		),
		Rules: services.NewRuleCatalogService(registry),
	})

	return exitCode(cli.Execute())
}

// exitCode maps command errors to the process exit status. Lint findings
// exit 1 without an error message; tool failures keep the tool's status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, domain.ErrIssuesFound) {
		return 1
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var toolErr *domain.ToolError
	if errors.As(err, &toolErr) && toolErr.Code > 0 {
		return toolErr.Code
	}
	return 1
}
