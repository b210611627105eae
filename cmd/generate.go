package cmd

import (
	"fmt"

	"github.com/haproxy-tools/matrixgen/internal/cache"
	"github.com/haproxy-tools/matrixgen/internal/config"
	"github.com/haproxy-tools/matrixgen/internal/matrix"
	"github.com/haproxy-tools/matrixgen/internal/output"
	"github.com/haproxy-tools/matrixgen/internal/versions"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:          "generate <ref-name>",
	Short:        "Generate the build matrix for a git ref",
	Long:         `Generate the build matrix for the given git ref name.`,
	RunE:         runGenerate,
	SilenceUsage: true,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		_ = cmd.Usage()
		return fmt.Errorf("requires exactly one ref argument")
	}

	ref := args[0]

	cfg, err := config.NewLoader().LoadForGenerate(cmd)
	if err != nil {
		return err
	}

	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		cfg.CacheDir = ""
	}

	level := hclog.Info
	if cfg.Verbose {
		level = hclog.Debug
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "matrixgen",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})

	logger.Info("generating matrix", "ref", ref)

	resolver, err := versions.New(cfg.GithubToken, cfg.GithubAPIURL, logger)
	if err != nil {
		return err
	}
	resolver.LibreSSLURL = cfg.LibreSSLURL

	// The persistent cache is best-effort: failing to open it falls back to
	// plain network resolution.
	if cfg.CacheDir != "" {
		store, err := cache.Open(cfg.CacheDir, cfg.CacheMaxAge)
		if err != nil {
			logger.Warn("failed to open resolution cache", "error", err)
		} else {
			defer store.Close()
			resolver.Store = store
		}
	}

	entries := matrix.NewBuilder(resolver).Build(cmd.Context(), ref)

	if err := output.Print(cmd.OutOrStdout(), entries); err != nil {
		return err
	}

	if cfg.GithubOutput != "" {
		logger.Debug("appending matrix to step output", "path", cfg.GithubOutput)

		if err := output.AppendGitHubOutput(cfg.GithubOutput, entries); err != nil {
			return err
		}
	}

	return nil
}
