package cli

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/verlaunch/pkg/internal"
	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are the tool's own options. They are separate from the
// preference record, which the launcher rewrites on every run.
type Settings struct {
	// EntryFile marks a version directory as launchable.
	EntryFile string `mapstructure:"entryFile"`

	// Namespace is the key the preference record is stored under.
	Namespace string `mapstructure:"namespace"`

	// Store selects the backend: auto, file or registry.
	Store string `mapstructure:"store"`

	// StoreDir is where the file store keeps records.
	StoreDir string `mapstructure:"storeDir"`

	// DefaultRoot seeds the install root of a fresh record.
	DefaultRoot string `mapstructure:"defaultRoot"`
}

const (
	StoreAuto     = "auto"
	StoreFile     = "file"
	StoreRegistry = "registry"
)

// settingsFlags maps viper keys to the persistent flags that override them.
var settingsFlags = map[string]string{
	"entryFile": "entry-file",
	"namespace": "namespace",
	"store":     "store",
	"storeDir":  "store-dir",
}

// LoadSettings merges defaults, an optional settings file, VERLAUNCH_*
// environment variables and flags, in increasing order of precedence. When
// path is empty settings.yaml in the user config directory is read if it
// exists.
func LoadSettings(rt *toolkit.Runtime, path string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("entryFile", launcher.DefaultEntryFile)
	v.SetDefault("namespace", launcher.DefaultNamespace)
	v.SetDefault("store", StoreAuto)
	cfgDir := internal.ConfigDirOr(rt, launcher.DefaultAppName,
		filepath.Join("~", ".config", launcher.DefaultAppName))
	v.SetDefault("storeDir", cfgDir)
	v.SetDefault("defaultRoot", launcher.DefaultInstallRoot)

	v.SetEnvPrefix("VERLAUNCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfgDir, "settings.yaml")
	}
	resolved, err := toolkit.ExpandPath(rt, toolkit.ExpandEnv(rt, path))
	if err != nil {
		return Settings{}, fmt.Errorf("unable to expand settings path %q: %w", path, err)
	}
	data, err := rt.ReadFile(resolved)
	switch {
	case err == nil:
		if err := v.ReadConfig(strings.NewReader(string(data))); err != nil {
			return Settings{}, fmt.Errorf("unable to parse settings %s: %w", resolved, err)
		}
	case explicit:
		return Settings{}, fmt.Errorf("unable to read settings %s: %w", resolved, err)
	}

	if flags != nil {
		for key, name := range settingsFlags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, err
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, s.Validate()
}

// Validate rejects settings the launcher cannot work with.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.EntryFile) == "" {
		return fmt.Errorf("entryFile must not be empty")
	}
	if strings.ContainsAny(s.EntryFile, `/\`) {
		return fmt.Errorf("entryFile %q must be a file name, not a path", s.EntryFile)
	}
	switch s.Store {
	case StoreAuto, StoreFile, StoreRegistry:
	default:
		return fmt.Errorf("store %q is not one of auto, file, registry", s.Store)
	}
	return nil
}

// StoreKind resolves auto to the platform's default backend.
func (s Settings) StoreKind() string {
	if s.Store != StoreAuto {
		return s.Store
	}
	if runtime.GOOS == "windows" {
		return StoreRegistry
	}
	return StoreFile
}
