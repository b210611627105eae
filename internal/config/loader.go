package config

import (
	"os"
	"path/filepath"

	"github.com/haproxy-tools/matrixgen/internal/versions"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Loader handles configuration loading from various sources
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadForGenerate loads configuration specifically for matrix generation
func (l *Loader) LoadForGenerate(cmd *cobra.Command) (*Config, error) {
	l.setupViperDefaults()
	l.loadGlobalConfig()
	l.loadLocalConfig()
	l.bindEnvironment()
	l.bindCommandFlags(cmd)

	return Load()
}

// setupViperDefaults sets up default values for viper
func (l *Loader) setupViperDefaults() {
	viper.SetDefault("github_api_url", DefaultGithubAPIURL)
	viper.SetDefault("libressl_url", versions.DefaultLibreSSLURL)
	viper.SetDefault("cache_dir", "")
	viper.SetDefault("cache_max_age", DefaultCacheMaxAge)
	viper.SetDefault("verbose", DefaultVerbose)
}

// loadGlobalConfig loads global configuration from the user config directory
func (l *Loader) loadGlobalConfig() {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}

		configHome = filepath.Join(home, ".config")
	}

	globalDir := filepath.Join(configHome, "matrixgen")

	for _, ext := range []string{"yml", "yaml", "json", "toml"} {
		globalPath := filepath.Join(globalDir, "config."+ext)

		if _, err := os.Stat(globalPath); err == nil {
			viper.SetConfigFile(globalPath)

			if err := viper.ReadInConfig(); err == nil {
				break
			}
		}
	}
}

// loadLocalConfig merges local configuration found by walking up from the
// working directory. Merging (rather than re-reading) keeps global values
// that the local file does not mention.
func (l *Loader) loadLocalConfig() {
	cwd, err := os.Getwd()
	if err != nil {
		return // silently ignore, resolution simply skips local config
	}

	localPath := FindLocalConfig(cwd)
	if localPath != "" {
		viper.SetConfigFile(localPath)
		_ = viper.MergeInConfig()
	}
}

// bindEnvironment binds the variables the CI runner provides
func (l *Loader) bindEnvironment() {
	_ = viper.BindEnv("github_token", "GITHUB_TOKEN")
	_ = viper.BindEnv("github_api_url", "GITHUB_API_URL")
	_ = viper.BindEnv("github_output", "GITHUB_OUTPUT")
}

// bindCommandFlags binds command flags to viper
func (l *Loader) bindCommandFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("cache_max_age", cmd.Flags().Lookup("cache-max-age"))
}
