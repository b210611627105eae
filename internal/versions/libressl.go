package versions

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	libresslPrefix = "libressl-"
	libresslSuffix = ".tar.gz.asc"
)

// fetchLibreSSL scrapes the release directory listing and keeps the version
// from the last signature file on the page, relying on the listing's sort
// order to surface the newest release.
func (r *Resolver) fetchLibreSSL(ctx context.Context) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.LibreSSLURL, nil)
	if err != nil {
		return LibreSSLFailed, false
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return LibreSSLFailed, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return LibreSSLFailed, false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return LibreSSLFailed, false
	}

	var version string
	var found bool
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if v, ok := extractLibreSSLVersion(href); ok {
			version = v
			found = true
		}
	})
	if !found {
		return LibreSSLFailed, false
	}

	r.logger.Debug("resolved latest libressl", "version", version)

	return "LIBRESSL_VERSION=" + version, true
}

// extractLibreSSLVersion pulls the version out of a release signature file
// name such as "libressl-3.8.2.tar.gz.asc".
func extractLibreSSLVersion(href string) (string, bool) {
	start := strings.Index(href, libresslPrefix)
	if start == -1 {
		return "", false
	}

	rest := href[start+len(libresslPrefix):]
	end := strings.Index(rest, libresslSuffix)
	if end == -1 {
		return "", false
	}

	return rest[:end], true
}
