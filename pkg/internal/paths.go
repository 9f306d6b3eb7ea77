package internal

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// ConfigDir returns the per-user configuration directory for appName as seen
// by rt.
//
// Behavior:
//   - Windows: APPDATA\<appName>. If APPDATA is not set, an error is returned.
//   - Unix-like systems: XDG_CONFIG_HOME/<appName> when set, otherwise
//     $HOME/.config/<appName>.
//
// The directory is not created.
func ConfigDir(rt *toolkit.Runtime, appName string) (string, error) {
	if runtime.GOOS == "windows" {
		if appData := strings.TrimSpace(rt.Get("APPDATA")); appData != "" {
			return filepath.Join(appData, appName), nil
		}
		return "", fmt.Errorf("APPDATA environment variable not set")
	}
	if xdg := strings.TrimSpace(rt.Get("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := rt.GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// ConfigDirOr is ConfigDir with a fallback for environments where no
// directory can be resolved.
func ConfigDirOr(rt *toolkit.Runtime, appName, fallback string) string {
	dir, err := ConfigDir(rt, appName)
	if err != nil || dir == "" {
		return fallback
	}
	return dir
}
