package prompt

import (
	"context"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/log"
)

// Headless answers every prompt as a user who closes it straight away. It is
// used when there is no terminal to ask on.
type Headless struct{}

func (Headless) PickDirectory(ctx context.Context, current string) (string, bool, error) {
	log.FromContext(ctx).Info("no terminal; keeping install location", "root", current)
	return "", false, nil
}

func (Headless) PickOne(ctx context.Context, sel launcher.Selection) (launcher.Choice, error) {
	log.FromContext(ctx).Info("no terminal; closing version picker",
		"versions", sel.Items, "preselected", sel.Preselected)
	return launcher.Choice{
		Action:   launcher.ActionClose,
		Selected: sel.Preselected,
		Remember: sel.Remember,
	}, nil
}

var _ launcher.Gateway = Headless{}
