// Package prompt implements launcher.Gateway for terminals.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/jlrickert/verlaunch/pkg/launcher"
)

// Form asks questions with huh forms on In/Out.
type Form struct {
	In  io.Reader
	Out io.Writer

	// Accessible switches huh to its line-based mode for screen readers and
	// dumb terminals.
	Accessible bool
}

// NewForm returns a Form reading from in and drawing on out.
func NewForm(in io.Reader, out io.Writer) *Form {
	return &Form{In: in, Out: out}
}

func (f *Form) run(ctx context.Context, groups ...*huh.Group) error {
	form := huh.NewForm(groups...).
		WithTheme(huh.ThemeCharm()).
		WithAccessible(f.Accessible)
	if f.In != nil {
		form = form.WithInput(f.In)
	}
	if f.Out != nil {
		form = form.WithOutput(f.Out)
	}
	return form.RunWithContext(ctx)
}

// aborted reports whether err means the user backed out of the form.
func aborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled)
}

// PickDirectory asks for a new install root. The answer must be an existing
// directory.
func (f *Form) PickDirectory(ctx context.Context, current string) (string, bool, error) {
	dir := current
	err := f.run(ctx, huh.NewGroup(
		huh.NewInput().
			Title("Install location").
			Description("Directory containing one folder per installed version").
			Placeholder(launcher.DefaultInstallRoot).
			Value(&dir).
			Validate(validateDir),
	))
	if err != nil {
		if aborted(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("directory prompt failed: %w", err)
	}
	return expandHome(strings.TrimSpace(dir)), true, nil
}

// PickOne shows the versions, the remember toggle and the available actions.
// Aborting the form counts as closing it; the selection the user made, if
// any, and the toggle are still reported.
func (f *Form) PickOne(ctx context.Context, sel launcher.Selection) (launcher.Choice, error) {
	selected := sel.Preselected
	remember := sel.Remember
	action := launcher.ActionLaunch

	header := huh.NewNote().
		Title("Location").
		Description(sel.InstallRoot)

	fields := []huh.Field{header}
	if sel.Notice != "" {
		fields = append(fields, huh.NewNote().Title("Notice").Description(sel.Notice))
	}

	actions := []huh.Option[launcher.Action]{
		huh.NewOption("Launch", launcher.ActionLaunch),
		huh.NewOption("Change location…", launcher.ActionChangeDirectory),
		huh.NewOption("Quit", launcher.ActionClose),
	}

	if len(sel.Items) > 0 {
		if selected == "" {
			selected = sel.Items[0]
		}
		fields = append(fields,
			huh.NewSelect[string]().
				Title("Version").
				Options(huh.NewOptions(sel.Items...)...).
				Value(&selected),
			huh.NewConfirm().
				Title("Remember selection").
				Affirmative("Yes").
				Negative("No").
				Value(&remember),
		)
	} else {
		selected = ""
		action = launcher.ActionChangeDirectory
		fields = append(fields, huh.NewNote().Description("No versions found."))
		actions = actions[1:]
	}

	fields = append(fields,
		huh.NewSelect[launcher.Action]().
			Title("Action").
			Options(actions...).
			Value(&action),
	)

	err := f.run(ctx, huh.NewGroup(fields...))
	if err != nil {
		if aborted(err) {
			return abortChoice(sel, selected, remember), nil
		}
		return launcher.Choice{}, fmt.Errorf("version prompt failed: %w", err)
	}
	return launcher.Choice{Action: action, Selected: selected, Remember: remember}, nil
}

// abortChoice is what an aborted picker reports. Without a preselection the
// first version is only highlighted by the form, so it does not count as a
// selection.
func abortChoice(sel launcher.Selection, selected string, remember bool) launcher.Choice {
	if sel.Preselected == "" && len(sel.Items) > 0 && selected == sel.Items[0] {
		selected = ""
	}
	return launcher.Choice{Action: launcher.ActionClose, Selected: selected, Remember: remember}
}

func validateDir(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("a directory is required")
	}
	info, err := os.Stat(expandHome(s))
	if err != nil {
		return fmt.Errorf("%s does not exist", s)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

var _ launcher.Gateway = (*Form)(nil)
