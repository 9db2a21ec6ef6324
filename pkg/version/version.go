// Package version reports the evsavings build version.
package version

// version is set at build time with -ldflags "-X github.com/rshade/evsavings/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Overwritten by the linker.

// GetVersion returns the build version, or "dev" for untagged builds.
func GetVersion() string {
	if version == "" {
		return "dev"
	}
	return version
}
