package prompt_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/prompt"
	"github.com/stretchr/testify/require"
)

// lineReader hands out one line per Read. Every accessible prompt wraps the
// input in its own scanner, so a reader that returned everything at once
// would be drained by the first field.
type lineReader struct {
	lines []string
}

func (r *lineReader) Read(p []byte) (int, error) {
	if len(r.lines) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.lines[0]+"\n")
	r.lines = r.lines[1:]
	return n, nil
}

func newAccessibleForm(out io.Writer, answers ...string) *prompt.Form {
	f := prompt.NewForm(&lineReader{lines: answers}, out)
	f.Accessible = true
	return f
}

func TestForm_PickDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	var out bytes.Buffer
	f := prompt.NewForm(strings.NewReader(filepath.Join(dir, "missing")+"\n"+dir+"\n"), &out)
	f.Accessible = true

	got, ok, err := f.PickDirectory(context.Background(), "")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, dir, got)
	require.Contains(t, out.String(), "does not exist")
}

func TestForm_PickOneLaunch(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	// version 2, remember yes, default action.
	f := newAccessibleForm(&out, "2", "y", "")

	choice, err := f.PickOne(context.Background(), launcher.Selection{
		InstallRoot: "/opt/app",
		Items:       []string{"4.3", "4.4"},
		Notice:      "Unable to launch 5.0",
	})
	require.NoError(t, err)
	require.Equal(t, launcher.Choice{Action: launcher.ActionLaunch, Selected: "4.4", Remember: true}, choice)
	require.Contains(t, out.String(), "/opt/app")
	require.Contains(t, out.String(), "Unable to launch 5.0")
}

func TestForm_PickOneKeepsPreselection(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	// accept the defaults, then quit.
	f := newAccessibleForm(&out, "", "", "3")

	choice, err := f.PickOne(context.Background(), launcher.Selection{
		Items:       []string{"4.3", "4.4"},
		Preselected: "4.4",
	})
	require.NoError(t, err)
	require.Equal(t, launcher.Choice{Action: launcher.ActionClose, Selected: "4.4"}, choice)
}

func TestForm_PickOneWithoutVersions(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	f := newAccessibleForm(&out, "2")

	choice, err := f.PickOne(context.Background(), launcher.Selection{InstallRoot: "/empty"})
	require.NoError(t, err)
	require.Equal(t, launcher.ActionClose, choice.Action)
	require.Empty(t, choice.Selected)
	require.Contains(t, out.String(), "No versions found.")
	require.NotContains(t, out.String(), "Launch")
}
