package cli

import (
	"fmt"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/prompt"
	"github.com/jlrickert/verlaunch/pkg/store"
	"github.com/spf13/cobra"
)

// NewScanCmd returns the `verlaunch scan` command.
//
// Usage examples:
//
//	verlaunch scan
//	verlaunch scan "/opt/bitwig-studio"
func NewScanCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [DIR]",
		Short: "list the installed versions",
		Long:  "List the versions found in DIR, or in the saved install location when DIR is omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var root, current string
			if len(args) == 1 {
				root = args[0]
			} else {
				rec, err := store.LoadOrReset(ctx, deps.Store, deps.Settings.Namespace,
					launcher.DefaultRecord(deps.Settings.DefaultRoot))
				if err != nil {
					return fmt.Errorf("unable to load preferences: %w", err)
				}
				root = rec.InstallRoot
				current = rec.LastSelected
			}

			found := launcher.NewScanner(deps.Settings.EntryFile).Scan(ctx, root)
			if found.Len() == 0 {
				return fmt.Errorf("no versions found in %s", root)
			}
			fmt.Fprint(cmd.OutOrStdout(), prompt.RenderVersions(found.Sorted(), current))
			return nil
		},
	}
}
