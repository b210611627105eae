package versions

import (
	"context"
	"strings"
)

const (
	opensslOwner     = "openssl"
	opensslRepo      = "openssl"
	opensslTagPrefix = "openssl-"
)

// fetchOpenSSL reads the first page of the openssl/openssl tag listing and
// keeps the byte-wise greatest release tag. The comparison is deliberately
// not semver-aware: "openssl-3.9.0" outranks "openssl-3.10.0".
func (r *Resolver) fetchOpenSSL(ctx context.Context) (string, bool) {
	tags, _, err := r.GitHub.Repositories.ListTags(ctx, opensslOwner, opensslRepo, nil)
	if err != nil {
		return OpenSSLFailed, false
	}

	var latest string
	for _, tag := range tags {
		name := tag.GetName()
		if strings.Contains(name, opensslTagPrefix) && name > latest {
			latest = name
		}
	}

	version := strings.TrimPrefix(latest, opensslTagPrefix)
	r.logger.Debug("resolved latest openssl", "tag", latest)

	return "OPENSSL_VERSION=" + version, true
}
