package matrix

import "strings"

// Build targets per platform leg.
const (
	targetLinux = "linux-glibc"
	targetMacOS = "osx"
)

// Compilers exercised per platform. The Linux leg builds with both gcc and
// clang; macOS runners only carry clang.
var (
	linuxCompilers = []string{"gcc", "clang"}
	macOSCompilers = []string{"clang"}
)

// featureFlags returns the flag set enabling every optional add-on:
// compression, tracing, regex, scripting, TLS, systemd integration, and the
// vendor device-detection libraries (pointed at the dummy SDKs shipped in
// the source tree). Returned fresh on every call so callers may append.
func featureFlags() []string {
	return []string{
		"USE_ZLIB=1",
		"USE_OT=1",
		"OT_INC=${HOME}/opt-ot/include",
		"OT_LIB=${HOME}/opt-ot/lib",
		"OT_RUNPATH=1",
		"USE_PCRE=1",
		"USE_PCRE_JIT=1",
		"USE_LUA=1",
		"USE_OPENSSL=1",
		"USE_SYSTEMD=1",
		"USE_WURFL=1",
		"WURFL_INC=addons/wurfl/dummy",
		"WURFL_LIB=addons/wurfl/dummy",
		"USE_DEVICEATLAS=1",
		"DEVICEATLAS_SRC=addons/deviceatlas/dummy",
		"USE_PROMEX=1",
		"USE_51DEGREES=1",
		"51DEGREES_SRC=addons/51degrees/dummy/pattern",
	}
}

// asanFlags returns the address-sanitizer flags that prefix an
// all-features build.
func asanFlags() []string {
	return []string{
		"USE_OBSOLETE_LINKER=1",
		`DEBUG_CFLAGS="-g -fsanitize=address"`,
		`LDFLAGS="-fsanitize=address"`,
		`CPU_CFLAGS.generic="-O1"`,
	}
}

// compressions lists the compression backends tested in isolation.
func compressions() []string {
	return []string{"USE_ZLIB=1"}
}

// cleanCompression derives the display form of a compression flag:
// "USE_ZLIB=1" reads "zlib".
func cleanCompression(flag string) string {
	name := strings.TrimPrefix(flag, "USE_")
	name = strings.TrimSuffix(name, "=1")

	return strings.ToLower(name)
}
