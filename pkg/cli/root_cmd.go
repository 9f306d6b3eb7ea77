package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/log"
	"github.com/jlrickert/verlaunch/pkg/prompt"
	"github.com/jlrickert/verlaunch/pkg/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Deps carries everything the commands need. Zero-valued collaborators are
// built from Runtime and Settings in PersistentPreRunE; tests set them to
// fakes.
type Deps struct {
	Runtime *toolkit.Runtime

	In  io.Reader
	Out io.Writer
	Err io.Writer

	SettingsPath string
	LogFile      string
	LogLevel     string
	LogJSON      bool

	Settings Settings

	Logger   *slog.Logger
	Store    store.Store
	Gateway  launcher.Gateway
	Launcher launcher.VersionLauncher

	shutdown func() error
}

func (d *Deps) stream() *toolkit.Stream {
	if d.Runtime == nil {
		return nil
	}
	return d.Runtime.Stream()
}

func (d *Deps) in() io.Reader {
	if d.In != nil {
		return d.In
	}
	if s := d.stream(); s != nil && s.In != nil {
		return s.In
	}
	return os.Stdin
}

func (d *Deps) out() io.Writer {
	if d.Out != nil {
		return d.Out
	}
	if s := d.stream(); s != nil && s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (d *Deps) errOut() io.Writer {
	if d.Err != nil {
		return d.Err
	}
	if s := d.stream(); s != nil && s.Err != nil {
		return s.Err
	}
	return os.Stderr
}

// NewRootCmd builds the root cobra command. Running it without a subcommand
// performs one launch decision.
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:     "verlaunch",
		Short:   "launch an installed version of an application",
		Long:    "verlaunch finds the installed versions below an install location and starts one, asking only when it cannot decide on its own.",
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Runtime == nil {
				return fmt.Errorf("runtime is required")
			}
			if err := deps.Runtime.Validate(); err != nil {
				return fmt.Errorf("invalid runtime: %w", err)
			}

			settings, err := LoadSettings(deps.Runtime, deps.SettingsPath, cmd.Flags())
			if err != nil {
				return err
			}
			deps.Settings = settings

			if deps.Logger == nil {
				lg, shutdown, err := log.NewLogger(log.LoggerConfig{
					Version: Version,
					Out:     deps.errOut(),
					File:    deps.LogFile,
					Level:   log.ParseLevel(deps.LogLevel),
					JSON:    deps.LogJSON,
				})
				if err != nil {
					return err
				}
				deps.Logger = lg
				deps.shutdown = shutdown
			}

			if deps.Store == nil {
				s, err := newStore(deps.Runtime, settings)
				if err != nil {
					return err
				}
				deps.Store = s
			}
			if deps.Launcher == nil {
				deps.Launcher = launcher.NewExecutor(settings.EntryFile)
			}
			if deps.Gateway == nil {
				deps.Gateway = newGateway(deps)
			}

			cmd.SetContext(log.ContextWithLogger(cmd.Context(), deps.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, deps)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&deps.LogFile, "log-file", "", "write logs to file (default stderr)")
	flags.StringVar(&deps.LogLevel, "log-level", "warn", "minimum log level")
	flags.BoolVar(&deps.LogJSON, "log-json", false, "output logs as JSON")
	flags.StringVar(&deps.SettingsPath, "settings", "", "path to settings file")
	flags.String("entry-file", launcher.DefaultEntryFile, "file that marks a version directory as launchable")
	flags.String("namespace", launcher.DefaultNamespace, "key the preference record is stored under")
	flags.String("store", StoreAuto, "preference store: auto, file or registry")
	flags.String("store-dir", "", "directory for the file store")

	cmd.AddCommand(
		NewScanCmd(deps),
		NewConfigCmd(deps),
		NewResetCmd(deps),
		NewVersionCmd(),
	)

	return cmd
}

func newStore(rt *toolkit.Runtime, settings Settings) (store.Store, error) {
	switch settings.StoreKind() {
	case StoreRegistry:
		s, err := store.NewRegistryStore()
		if err != nil {
			return nil, fmt.Errorf("registry store: %w", err)
		}
		return s, nil
	default:
		return store.NewFileStore(rt, settings.StoreDir), nil
	}
}

// newGateway uses terminal forms when both ends of the session are a
// terminal and the headless gateway otherwise.
func newGateway(deps *Deps) launcher.Gateway {
	in, out := deps.in(), deps.out()
	if isTerminal(in) && isTerminal(out) {
		f := prompt.NewForm(in, out)
		f.Accessible = os.Getenv("ACCESSIBLE") != ""
		return f
	}
	return prompt.Headless{}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
