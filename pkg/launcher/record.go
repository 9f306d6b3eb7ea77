package launcher

// PreferenceRecord is the state carried between runs. It is loaded from a
// store at startup, updated by Engine.Decide and written back at the end of
// the run.
type PreferenceRecord struct {
	// InstallRoot is the directory holding one sub-directory per version.
	InstallRoot string `yaml:"installRoot"`

	// KnownVersions is the set discovered by the last persisted run. It is
	// replaced wholesale, never merged.
	KnownVersions VersionSet `yaml:"knownVersions"`

	// LastSelected is the last chosen version, empty if none.
	LastSelected string `yaml:"lastSelected"`

	// Remember skips the picker and launches LastSelected on later runs. It
	// is only honored while the discovered versions match KnownVersions.
	Remember bool `yaml:"remember"`
}

// DefaultRecord returns the record written when no usable record exists.
func DefaultRecord(installRoot string) PreferenceRecord {
	if installRoot == "" {
		installRoot = DefaultInstallRoot
	}
	return PreferenceRecord{
		InstallRoot:   installRoot,
		KnownVersions: VersionSet{},
	}
}

// Clone returns a copy that shares no mutable state with r.
func (r PreferenceRecord) Clone() PreferenceRecord {
	out := r
	out.KnownVersions = r.KnownVersions.Clone()
	return out
}
