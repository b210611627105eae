// Package matrix enumerates the CI build configurations for a git ref: the
// cross product of runner image, compiler, feature set, and TLS library that
// the workflow fans out over.
package matrix

import (
	"context"
	"fmt"

	"github.com/haproxy-tools/matrixgen/internal/branch"
	"github.com/haproxy-tools/matrixgen/internal/ssl"
)

// VersionResolver turns a "latest" TLS marker into a concrete version
// string. Implementations absorb their own failures and return a sentinel
// instead of an error.
type VersionResolver interface {
	LatestOpenSSL(ctx context.Context, marker string) string
	LatestLibreSSL(ctx context.Context, marker string) string
}

// Builder produces the ordered build matrix for a ref.
type Builder struct {
	resolver VersionResolver
}

// NewBuilder creates a builder. The resolver is consulted only when the ref
// classifies as a development branch, since stable branches never carry
// latest markers.
func NewBuilder(resolver VersionResolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build enumerates every configuration for refName in a fixed order: the
// Linux leg per compiler (no features, all features, ASAN, compression
// backends, TLS candidates), then the macOS leg. The order is not meaningful
// to the orchestrator but keeps output reproducible.
func (b *Builder) Build(ctx context.Context, refName string) []Entry {
	stable := branch.Stable(refName)

	var entries []Entry

	osName := branch.LinuxOS(refName)
	for _, cc := range linuxCompilers {
		entries = append(entries, Entry{
			Name:   fmt.Sprintf("%s, %s, no features", osName, cc),
			OS:     osName,
			Target: targetLinux,
			CC:     cc,
			Flags:  []string{},
		})

		entries = append(entries, Entry{
			Name:   fmt.Sprintf("%s, %s, all features", osName, cc),
			OS:     osName,
			Target: targetLinux,
			CC:     cc,
			Flags:  featureFlags(),
		})

		entries = append(entries, Entry{
			Name:   fmt.Sprintf("%s, %s, ASAN, all features", osName, cc),
			OS:     osName,
			Target: targetLinux,
			CC:     cc,
			Flags:  append(asanFlags(), featureFlags()...),
		})

		for _, compression := range compressions() {
			entries = append(entries, Entry{
				Name:   fmt.Sprintf("%s, %s, gz=%s", osName, cc, cleanCompression(compression)),
				OS:     osName,
				Target: targetLinux,
				CC:     cc,
				Flags:  []string{compression},
			})
		}

		for _, marker := range ssl.Candidates(stable) {
			// Flags derive from the marker as listed; resolving a
			// latest marker afterwards only changes the version
			// string recorded on the entry.
			flags := ssl.Flags(marker)

			if ssl.WantsLatestLibreSSL(marker) {
				marker = b.resolver.LatestLibreSSL(ctx, marker)
			}

			if ssl.WantsLatestOpenSSL(marker) {
				marker = b.resolver.LatestOpenSSL(ctx, marker)
			}

			entries = append(entries, Entry{
				Name:   fmt.Sprintf("%s, %s, ssl=%s", osName, cc, ssl.CleanMarker(marker)),
				OS:     osName,
				Target: targetLinux,
				CC:     cc,
				SSL:    marker,
				Flags:  flags,
			})
		}
	}

	osName = branch.MacOS(refName)
	for _, cc := range macOSCompilers {
		entries = append(entries, Entry{
			Name:   fmt.Sprintf("%s, %s, no features", osName, cc),
			OS:     osName,
			Target: targetMacOS,
			CC:     cc,
			Flags:  []string{},
		})
	}

	return entries
}
