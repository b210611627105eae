// Package ssl enumerates the TLS library configurations exercised by the CI
// matrix and derives the build flags each one needs.
package ssl

import "strings"

// Markers identifying which TLS library a configuration builds against.
// Version-pinned OpenSSL markers use the form "OPENSSL_VERSION=<version>".
const (
	// Stock builds against whatever TLS library the runner image ships.
	Stock = "stock"

	// QuicTLS builds against the QUIC-enabled OpenSSL fork.
	QuicTLS = "QUICTLS=yes"

	// BoringSSL is not currently in the candidate list but the flag rules
	// still recognize it as QUIC-capable in case it is reinstated.
	BoringSSL = "BORINGSSL=yes"

	// OpenSSLLatest and LibreSSLLatest are placeholders replaced by a
	// concrete version string at generation time.
	OpenSSLLatest  = "OPENSSL_VERSION=latest"
	LibreSSLLatest = "LIBRESSL_VERSION=latest"
)

// Candidates returns the TLS markers to test, in emission order. Stable
// branches only build against pinned versions; the development branch
// additionally probes the latest OpenSSL and LibreSSL releases.
func Candidates(stable bool) []string {
	markers := []string{
		Stock,
		"OPENSSL_VERSION=1.0.2u",
		"OPENSSL_VERSION=1.1.1s",
		QuicTLS,
	}

	if !stable {
		markers = append(markers, OpenSSLLatest, LibreSSLLatest)
	}

	return markers
}

// Flags returns the build flags for a TLS marker. The in-tree OpenSSL
// integration is always enabled; QUIC-capable libraries get USE_QUIC, and
// everything except the stock library points the build at the custom install
// prefix prepared by the workflow.
func Flags(marker string) []string {
	flags := []string{"USE_OPENSSL=1"}

	if marker == BoringSSL || marker == QuicTLS || strings.Contains(marker, "LIBRESSL") {
		flags = append(flags, "USE_QUIC=1")
	}

	if marker != Stock {
		flags = append(flags, "SSL_LIB=${HOME}/opt/lib")
		flags = append(flags, "SSL_INC=${HOME}/opt/include")
	}

	return flags
}

// WantsLatestLibreSSL reports whether marker asks for the latest LibreSSL
// release to be resolved.
func WantsLatestLibreSSL(marker string) bool {
	return strings.Contains(marker, "LIBRESSL") && strings.Contains(marker, "latest")
}

// WantsLatestOpenSSL reports whether marker asks for the latest OpenSSL
// release to be resolved.
func WantsLatestOpenSSL(marker string) bool {
	return strings.Contains(marker, "OPENSSL") && strings.Contains(marker, "latest")
}

// CleanMarker derives the display form of a TLS marker for entry names:
// the "_VERSION" qualifier is dropped and the rest lowercased, so
// "OPENSSL_VERSION=1.1.1s" reads "openssl=1.1.1s".
func CleanMarker(marker string) string {
	return strings.ToLower(strings.ReplaceAll(marker, "_VERSION", ""))
}
