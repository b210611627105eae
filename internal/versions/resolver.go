// Package versions resolves "latest" TLS library markers to concrete
// release version strings using the upstream listing endpoints.
//
// Resolution never fails the generator: any transport error, unexpected
// status, or unparsable payload collapses into a fixed sentinel value that
// is carried through the matrix in place of a real version. Each marker is
// fetched over the network at most once per process run.
package versions

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/oauth2"
)

// Sentinels substituted when remote discovery fails.
const (
	OpenSSLFailed  = "OPENSSL_VERSION=failed_to_detect"
	LibreSSLFailed = "LIBRESSL_VERSION=failed_to_detect"
)

// DefaultLibreSSLURL is the release listing scraped for LibreSSL versions.
const DefaultLibreSSLURL = "https://cdn.openbsd.org/pub/OpenBSD/LibreSSL/"

// maxCachedLookups bounds the per-run memoization, comfortably above the
// two lookup categories in use.
const maxCachedLookups = 5

// Store persists resolved versions across runs. Implemented by the bbolt
// cache; a nil Store disables persistence.
type Store interface {
	Get(marker string) (string, bool)
	Put(marker, value string) error
}

// Resolver looks up the newest upstream releases. Exported fields may be
// overridden before first use; tests point them at local servers.
type Resolver struct {
	// GitHub serves the OpenSSL tag listing.
	GitHub *github.Client

	// HTTPClient fetches the LibreSSL listing. No overall request
	// timeout is set; the transport defaults apply.
	HTTPClient *http.Client

	// LibreSSLURL is the directory listing scraped for LibreSSL releases.
	LibreSSLURL string

	// Store, when non-nil, persists successful resolutions across runs.
	// Sentinels are never written to it.
	Store Store

	logger hclog.Logger
	memo   *lru.Cache[string, string]
}

// New creates a resolver. A non-empty token authenticates GitHub requests,
// which raises the API rate limit; a non-empty apiURL redirects them, e.g.
// to a GitHub Enterprise host or a test server.
func New(token, apiURL string, logger hclog.Logger) (*Resolver, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(hc)
	if apiURL != "" {
		base, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url %q: %w", apiURL, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		client.BaseURL = base
	}

	memo, err := lru.New[string, string](maxCachedLookups)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup cache: %w", err)
	}

	return &Resolver{
		GitHub:      client,
		HTTPClient:  http.DefaultClient,
		LibreSSLURL: DefaultLibreSSLURL,
		logger:      logger,
		memo:        memo,
	}, nil
}

// LatestOpenSSL resolves a latest-OpenSSL marker to "OPENSSL_VERSION=<v>",
// or the sentinel when the tag listing cannot be read.
func (r *Resolver) LatestOpenSSL(ctx context.Context, marker string) string {
	return r.resolve(ctx, marker, r.fetchOpenSSL)
}

// LatestLibreSSL resolves a latest-LibreSSL marker to "LIBRESSL_VERSION=<v>",
// or the sentinel when the release listing cannot be read.
func (r *Resolver) LatestLibreSSL(ctx context.Context, marker string) string {
	return r.resolve(ctx, marker, r.fetchLibreSSL)
}

// resolve memoizes fetch results per marker. Sentinels are memoized for the
// run like any other result, so a failing endpoint is not hammered once per
// compiler leg, but they never reach the persistent store.
func (r *Resolver) resolve(ctx context.Context, marker string, fetch func(context.Context) (string, bool)) string {
	if v, ok := r.memo.Get(marker); ok {
		return v
	}

	if r.Store != nil {
		if v, ok := r.Store.Get(marker); ok {
			r.memo.Add(marker, v)
			r.logger.Debug("resolved from cache", "marker", marker, "version", v)
			return v
		}
	}

	v, ok := fetch(ctx)
	r.memo.Add(marker, v)

	if ok && r.Store != nil {
		if err := r.Store.Put(marker, v); err != nil {
			r.logger.Warn("failed to persist resolution", "marker", marker, "error", err)
		}
	}

	return v
}
