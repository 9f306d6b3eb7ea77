//go:build windows

package launcher

const (
	// DefaultEntryFile is the file that marks a version directory as
	// launchable.
	DefaultEntryFile = "Bitwig Studio.exe"

	// DefaultInstallRoot is used when no preference record exists yet.
	DefaultInstallRoot = `C:\Program Files\Bitwig Studio`
)
