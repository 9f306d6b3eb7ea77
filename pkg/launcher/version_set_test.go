package launcher_test

import (
	"testing"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVersionSet_EqualIgnoresOrder(t *testing.T) {
	t.Parallel()
	a := launcher.NewVersionSet("4.4", "4.3")
	b := launcher.NewVersionSet("4.3", "4.4")

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(launcher.NewVersionSet("4.3")))
	require.True(t, launcher.VersionSet(nil).Equal(launcher.VersionSet{}))
}

func TestVersionSet_Only(t *testing.T) {
	t.Parallel()
	v, ok := launcher.NewVersionSet("5.0").Only()
	require.True(t, ok)
	require.Equal(t, "5.0", v)

	_, ok = launcher.NewVersionSet("5.0", "5.1").Only()
	require.False(t, ok)
}

func TestVersionSet_YAMLIsSortedList(t *testing.T) {
	t.Parallel()
	data, err := yaml.Marshal(struct {
		V launcher.VersionSet `yaml:"v"`
	}{V: launcher.NewVersionSet("b", "c", "a")})
	require.NoError(t, err)
	require.Equal(t, "v:\n    - a\n    - b\n    - c\n", string(data))
}

func TestVersionSet_YAMLRejectsScalar(t *testing.T) {
	t.Parallel()
	var out struct {
		V launcher.VersionSet `yaml:"v"`
	}
	require.Error(t, yaml.Unmarshal([]byte("v: 4.3\n"), &out))
	require.NoError(t, yaml.Unmarshal([]byte("v:\n"), &out))
	require.Zero(t, out.V.Len())
}
