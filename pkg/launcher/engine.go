package launcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/jlrickert/verlaunch/pkg/log"
)

// State names the path a decision pass took.
type State string

const (
	StateEmptyPrompt          State = "empty-prompt"
	StateOneVersionAutoLaunch State = "one-version-auto-launch"
	StateRememberedAutoLaunch State = "remembered-auto-launch"
	StateInteractive          State = "interactive"
	StateLaunched             State = "launched"
	StateClosedWithoutLaunch  State = "closed-without-launch"
)

// Outcome describes how a decision pass ended.
type Outcome struct {
	// Path lists the states visited after scanning, ending in StateLaunched
	// or StateClosedWithoutLaunch.
	Path []State

	// Version is the launched version, empty when nothing was launched.
	Version string

	// InstallRoot is the root the launched version was started from.
	InstallRoot string
}

// Launched reports whether the pass started a version.
func (o Outcome) Launched() bool {
	return len(o.Path) > 0 && o.Path[len(o.Path)-1] == StateLaunched
}

// Final returns the terminal state.
func (o Outcome) Final() State {
	if len(o.Path) == 0 {
		return ""
	}
	return o.Path[len(o.Path)-1]
}

// Engine decides which version to start. It owns no state of its own; every
// effect goes through Scanner, Launcher and Gateway so the policy can be
// exercised with fakes.
type Engine struct {
	Scanner  VersionScanner
	Launcher VersionLauncher
	Gateway  Gateway
}

// NewEngine wires an Engine.
func NewEngine(scanner VersionScanner, launcher VersionLauncher, gateway Gateway) *Engine {
	return &Engine{Scanner: scanner, Launcher: launcher, Gateway: gateway}
}

// Decide runs one decision pass over rec and returns the record to persist.
//
// Scan and launch failures are absorbed into the policy. The only errors
// returned are gateway failures, in which case the returned record reflects
// the updates made before the failure and should not be saved.
func (e *Engine) Decide(ctx context.Context, rec PreferenceRecord) (PreferenceRecord, Outcome, error) {
	if e.Scanner == nil || e.Launcher == nil || e.Gateway == nil {
		return rec, Outcome{}, errors.New("engine requires a scanner, launcher and gateway")
	}
	lg := log.FromContext(ctx)
	rec = rec.Clone()
	if rec.KnownVersions == nil {
		rec.KnownVersions = VersionSet{}
	}
	var out Outcome

	discovered := e.Scanner.Scan(ctx, rec.InstallRoot)

	if discovered.Len() == 0 {
		out.Path = append(out.Path, StateEmptyPrompt)
		lg.Info("no versions found", "root", rec.InstallRoot)
		dir, ok, err := e.Gateway.PickDirectory(ctx, rec.InstallRoot)
		if err != nil {
			return rec, out, fmt.Errorf("unable to pick directory: %w", err)
		}
		if ok {
			rec.InstallRoot = dir
			// One rescan only; an empty result goes on to the picker.
			discovered = e.Scanner.Scan(ctx, rec.InstallRoot)
		}
	}

	if !discovered.Equal(rec.KnownVersions) && rec.Remember {
		lg.Info("installed versions changed; forgetting remembered choice",
			"known", rec.KnownVersions.Sorted(), "discovered", discovered.Sorted())
		rec.Remember = false
	}

	if only, ok := discovered.Only(); ok {
		out.Path = append(out.Path, StateOneVersionAutoLaunch)
		err := e.Launcher.Launch(ctx, rec.InstallRoot, only)
		if err == nil {
			rec.KnownVersions = discovered
			rec.LastSelected = only
			return rec, e.launched(out, rec.InstallRoot, only), nil
		}
		lg.Warn("single version failed to launch", "version", only, "err", err)
	}

	rec.KnownVersions = discovered

	if rec.Remember {
		out.Path = append(out.Path, StateRememberedAutoLaunch)
		err := e.Launcher.Launch(ctx, rec.InstallRoot, rec.LastSelected)
		if err == nil {
			return rec, e.launched(out, rec.InstallRoot, rec.LastSelected), nil
		}
		// Remember stays set; the picker below lets the user fix it.
		lg.Warn("remembered version failed to launch", "version", rec.LastSelected, "err", err)
	}

	out.Path = append(out.Path, StateInteractive)
	return e.interact(ctx, rec, out)
}

func (e *Engine) interact(ctx context.Context, rec PreferenceRecord, out Outcome) (PreferenceRecord, Outcome, error) {
	lg := log.FromContext(ctx)

	// The toggle starts off so closing the picker after a failed remembered
	// launch forgets the broken choice.
	sel := Selection{
		InstallRoot: rec.InstallRoot,
		Items:       rec.KnownVersions.Sorted(),
	}
	if rec.KnownVersions.Has(rec.LastSelected) {
		sel.Preselected = rec.LastSelected
	}

	for {
		choice, err := e.Gateway.PickOne(ctx, sel)
		if err != nil {
			return rec, out, fmt.Errorf("unable to pick version: %w", err)
		}
		sel.Notice = ""

		switch choice.Action {
		case ActionLaunch:
			if choice.Selected == "" {
				sel.Remember = choice.Remember
				sel.Notice = "Select a version to launch."
				continue
			}
			if err := e.Launcher.Launch(ctx, rec.InstallRoot, choice.Selected); err != nil {
				lg.Warn("selected version failed to launch", "version", choice.Selected, "err", err)
				sel.Preselected = choice.Selected
				sel.Remember = choice.Remember
				sel.Notice = fmt.Sprintf("Unable to launch %s: %v", choice.Selected, err)
				continue
			}
			rec.LastSelected = choice.Selected
			rec.Remember = choice.Remember
			return rec, e.launched(out, rec.InstallRoot, choice.Selected), nil

		case ActionChangeDirectory:
			dir, ok, err := e.Gateway.PickDirectory(ctx, rec.InstallRoot)
			if err != nil {
				return rec, out, fmt.Errorf("unable to pick directory: %w", err)
			}
			sel.Remember = choice.Remember
			sel.Preselected = choice.Selected
			if !ok {
				continue
			}
			rec.InstallRoot = dir
			rec.KnownVersions = e.Scanner.Scan(ctx, dir)
			sel.InstallRoot = dir
			sel.Items = rec.KnownVersions.Sorted()
			if !rec.KnownVersions.Has(sel.Preselected) {
				sel.Preselected = ""
			}
			if len(sel.Items) == 0 {
				sel.Notice = fmt.Sprintf("No versions found in %s.", dir)
			}

		default:
			rec.LastSelected = ""
			if rec.KnownVersions.Has(choice.Selected) {
				rec.LastSelected = choice.Selected
			}
			// Remember implies LastSelected is a member of KnownVersions.
			rec.Remember = choice.Remember && rec.LastSelected != ""
			out.Path = append(out.Path, StateClosedWithoutLaunch)
			lg.Info("closed without launching", "selected", rec.LastSelected, "remember", rec.Remember)
			return rec, out, nil
		}
	}
}

func (e *Engine) launched(out Outcome, root, version string) Outcome {
	out.Path = append(out.Path, StateLaunched)
	out.Version = version
	out.InstallRoot = root
	return out
}
