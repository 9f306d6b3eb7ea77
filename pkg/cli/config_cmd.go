package cli

import (
	"fmt"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/store"
	"github.com/spf13/cobra"
)

// NewConfigCmd returns the `verlaunch config` command, which prints the
// saved preference record.
func NewConfigCmd(deps *Deps) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			def := launcher.DefaultRecord(deps.Settings.DefaultRoot)

			rec := def
			if !template {
				var err error
				rec, err = store.LoadOrReset(ctx, deps.Store, deps.Settings.Namespace, def)
				if err != nil {
					return fmt.Errorf("unable to load preferences: %w", err)
				}
			}

			data, err := store.Encode(rec)
			if err != nil {
				return fmt.Errorf("unable to serialize preferences: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, "print the default record instead of the saved one")
	return cmd
}

// NewResetCmd returns the `verlaunch reset` command, which replaces the saved
// preference record with the default one.
func NewResetCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "forget the saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			def := launcher.DefaultRecord(deps.Settings.DefaultRoot)
			if err := deps.Store.Save(ctx, deps.Settings.Namespace, def); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "preferences reset (%s store)\n", deps.Store.Name())
			return nil
		},
	}
}

// NewVersionCmd returns the `verlaunch version` command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Args:  cobra.NoArgs,
		// The version command needs no runtime, store or logger.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
