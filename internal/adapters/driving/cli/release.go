package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// Environment variables read by publish.
const (
	EnvPublishUsername = "LINT_GOST_TEX_PUBLISH_USERNAME"
	EnvPublishPassword = "LINT_GOST_TEX_PUBLISH_PASSWORD"
	EnvPublishRepo     = "LINT_GOST_TEX_PUBLISH_REPO"
)

// DefaultRepository receives releases when LINT_GOST_TEX_PUBLISH_REPO is unset.
const DefaultRepository = "gost-tex/lint-gost-tex"

var (
	buildVersion string
	buildTargets []string
	buildPackage string
	buildBinary  string
	publishTag   string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build release archives into dist/",
	Long: `Cross-compiles the linter with the Go toolchain for every target and
packs each binary into dist/<binary>_<version>_<os>_<arch>.tar.gz.

Fails with the toolchain's exit status when compilation fails.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload dist/ to the release of a tag",
	Long: `Uploads every file in dist/ to the GitHub release of --tag, creating
the release if needed.

Credentials come from LINT_GOST_TEX_PUBLISH_USERNAME and
LINT_GOST_TEX_PUBLISH_PASSWORD. With the username __token__ the password
is sent as a bearer token. The repository defaults to
LINT_GOST_TEX_PUBLISH_REPO.`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove dist/, build/ and *.egg-info",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func init() {
	buildCmd.Flags().StringVar(&buildVersion, "version", "", "version to stamp (default: this binary's version)")
	buildCmd.Flags().StringSliceVar(&buildTargets, "target", nil, "os/arch target, repeatable (default: linux, darwin, windows)")
	buildCmd.Flags().StringVar(&buildPackage, "package", "./cmd/lint-gost-tex", "main package to build")
	buildCmd.Flags().StringVar(&buildBinary, "binary", "lint-gost-tex", "binary name")
	publishCmd.Flags().StringVar(&publishTag, "tag", "", "release tag (default: v<version>)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(cleanCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if releaseService == nil {
		return errors.New("release service not configured")
	}

	opts := domain.BuildOptions{
		Package: buildPackage,
		Binary:  buildBinary,
		Version: buildVersion,
	}
	if opts.Version == "" {
		opts.Version = version
	}
	for _, value := range buildTargets {
		target, err := domain.ParseTarget(value)
		if err != nil {
			return err
		}
		opts.Targets = append(opts.Targets, target)
	}

	artifacts, err := releaseService.Build(cmd.Context(), opts)
	if err != nil {
		return err
	}
	for _, artifact := range artifacts {
		cmd.Printf("%s\n", filepath.Join(domain.DefaultDistDir, artifact.Name))
	}
	cmd.Printf("Built %d artifact(s).\n", len(artifacts))
	return nil
}

func runPublish(cmd *cobra.Command, _ []string) error {
	if releaseService == nil {
		return errors.New("release service not configured")
	}

	repo := os.Getenv(EnvPublishRepo)
	if repo == "" {
		repo = DefaultRepository
	}
	tag := publishTag
	if tag == "" {
		tag = "v" + version
	}

	artifacts, err := releaseService.Publish(cmd.Context(), domain.PublishOptions{
		Repository: repo,
		Tag:        tag,
		Credentials: domain.Credentials{
			Username: os.Getenv(EnvPublishUsername),
			Password: os.Getenv(EnvPublishPassword),
		},
	})
	if err != nil {
		return err
	}
	cmd.Printf("Published %d artifact(s) to %s@%s.\n", len(artifacts), repo, tag)
	return nil
}

func runClean(cmd *cobra.Command, _ []string) error {
	if releaseService == nil {
		return errors.New("release service not configured")
	}

	removed, err := releaseService.Clean(cmd.Context(), "")
	if err != nil {
		return err
	}
	for _, path := range removed {
		cmd.Printf("removed %s\n", filepath.Base(path))
	}
	return nil
}
