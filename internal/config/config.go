package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/haproxy-tools/matrixgen/internal/versions"
	"github.com/spf13/viper"
)

// Default configuration values
const (
	DefaultGithubAPIURL = "https://api.github.com/"
	DefaultCacheMaxAge  = 24 * time.Hour
	DefaultVerbose      = false
)

// Holds the configuration options for matrixgen
type Config struct {
	// Token used to authenticate GitHub API requests (raises rate limits)
	GithubToken string

	// Override for the GitHub API endpoint (empty means api.github.com)
	GithubAPIURL string

	// Path of the GitHub Actions step output file, when running in a workflow
	GithubOutput string

	// LibreSSL release listing scraped for the newest version
	LibreSSLURL string

	// Directory for the persistent resolution cache (empty disables caching)
	CacheDir string

	// Maximum age before a cached resolution is refetched
	CacheMaxAge time.Duration

	// Enable verbose output
	Verbose bool
}

func Load() (*Config, error) {
	cfg := &Config{
		GithubToken:  viper.GetString("github_token"),
		GithubAPIURL: viper.GetString("github_api_url"),
		GithubOutput: viper.GetString("github_output"),
		LibreSSLURL:  viper.GetString("libressl_url"),
		CacheDir:     viper.GetString("cache_dir"),
		CacheMaxAge:  viper.GetDuration("cache_max_age"),
		Verbose:      viper.GetBool("verbose"),
	}

	// Apply defaults if not set
	if cfg.GithubAPIURL == "" {
		cfg.GithubAPIURL = DefaultGithubAPIURL
	}

	if cfg.LibreSSLURL == "" {
		cfg.LibreSSLURL = versions.DefaultLibreSSLURL
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GithubAPIURL != "" {
		if _, err := url.Parse(c.GithubAPIURL); err != nil {
			return fmt.Errorf("invalid github api url: %v", err)
		}
	}

	if _, err := url.Parse(c.LibreSSLURL); err != nil {
		return fmt.Errorf("invalid libressl url: %v", err)
	}

	if c.CacheMaxAge < 0 {
		return fmt.Errorf("cache max age cannot be negative: %s", c.CacheMaxAge)
	}

	// Resolve cache directory path
	if c.CacheDir != "" {
		abs, err := filepath.Abs(c.CacheDir)
		if err != nil {
			return fmt.Errorf("invalid cache directory: %v", err)
		}

		c.CacheDir = abs
	}

	// Resolve step output file path
	if c.GithubOutput != "" {
		abs, err := filepath.Abs(c.GithubOutput)
		if err != nil {
			return fmt.Errorf("invalid github output path: %v", err)
		}

		c.GithubOutput = abs
	}

	return nil
}
