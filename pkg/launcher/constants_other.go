//go:build !windows

package launcher

const (
	// DefaultEntryFile is the file that marks a version directory as
	// launchable.
	DefaultEntryFile = "bitwig-studio"

	// DefaultInstallRoot is used when no preference record exists yet.
	DefaultInstallRoot = "/opt/bitwig-studio"
)
