package prompt_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/prompt"
	"github.com/stretchr/testify/require"
)

func TestHeadless_PickDirectoryDeclines(t *testing.T) {
	t.Parallel()
	dir, ok, err := prompt.Headless{}.PickDirectory(context.Background(), "/opt/app")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, dir)
}

func TestHeadless_PickOneCloses(t *testing.T) {
	t.Parallel()
	choice, err := prompt.Headless{}.PickOne(context.Background(), launcher.Selection{
		InstallRoot: "/opt/app",
		Items:       []string{"4.3", "4.4"},
		Preselected: "4.3",
		Remember:    true,
	})
	require.NoError(t, err)
	require.Equal(t, launcher.ActionClose, choice.Action)
	require.Equal(t, "4.3", choice.Selected)
	require.True(t, choice.Remember)
}

func TestRenderOutcome(t *testing.T) {
	t.Parallel()
	launched := prompt.RenderOutcome(launcher.Outcome{
		Path:        []launcher.State{launcher.StateInteractive, launcher.StateLaunched},
		Version:     "4.4",
		InstallRoot: "/opt/app",
	})
	require.Contains(t, launched, "launched")
	require.Contains(t, launched, "4.4")
	require.Contains(t, launched, "/opt/app")

	closed := prompt.RenderOutcome(launcher.Outcome{
		Path: []launcher.State{launcher.StateInteractive, launcher.StateClosedWithoutLaunch},
	})
	require.Contains(t, closed, "closed without launching")
}

func TestRenderVersions_MarksCurrent(t *testing.T) {
	t.Parallel()
	out := prompt.RenderVersions([]string{"4.3", "4.4"}, "4.4")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "  4.3", lines[0])
	require.Contains(t, lines[1], "* 4.4")
}
