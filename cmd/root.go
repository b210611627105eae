package cmd

import (
	"fmt"
	"os"

	"github.com/haproxy-tools/matrixgen/internal/config"
	"github.com/haproxy-tools/matrixgen/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matrixgen <ref-name>",
	Short: "HAProxy CI build matrix generator",
	Long: `Generates the build matrix for HAProxy's GitHub Actions workflow.

Given a git ref name, matrixgen enumerates the compiler, feature, and TLS
library combinations to build, prints the matrix as JSON on standard
output, and appends the workflow hand-off line to $GITHUB_OUTPUT when set.`,
	RunE:         runGenerate,
	SilenceUsage: true,
	Args:         cobra.ArbitraryArgs,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("cache-dir", "", "Directory for the persistent resolution cache")
	rootCmd.PersistentFlags().Duration("cache-max-age", config.DefaultCacheMaxAge, "Maximum age of cached resolutions")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable the persistent resolution cache")
	rootCmd.AddCommand(generateCmd)
}
