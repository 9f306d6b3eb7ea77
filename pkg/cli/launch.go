package cli

import (
	"fmt"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/log"
	"github.com/jlrickert/verlaunch/pkg/prompt"
	"github.com/jlrickert/verlaunch/pkg/store"
	"github.com/spf13/cobra"
)

// runLaunch loads the preference record, runs one decision pass and writes
// the updated record back.
func runLaunch(cmd *cobra.Command, deps *Deps) error {
	ctx := cmd.Context()
	lg := log.FromContext(ctx)
	ns := deps.Settings.Namespace

	rec, err := store.LoadOrReset(ctx, deps.Store, ns, launcher.DefaultRecord(deps.Settings.DefaultRoot))
	if err != nil {
		return fmt.Errorf("unable to load preferences: %w", err)
	}

	engine := launcher.NewEngine(
		launcher.NewScanner(deps.Settings.EntryFile),
		deps.Launcher,
		deps.Gateway,
	)
	updated, outcome, err := engine.Decide(ctx, rec)
	if err != nil {
		return err
	}
	lg.Info("decision complete", "path", outcome.Path, "version", outcome.Version)

	if err := deps.Store.Save(ctx, ns, updated); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), prompt.RenderOutcome(outcome))
	return nil
}
