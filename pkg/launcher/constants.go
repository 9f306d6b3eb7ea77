package launcher

const (
	// DefaultAppName is the name used for the settings directory and the
	// default store namespace.
	DefaultAppName = "verlaunch"

	// DefaultNamespace is the key the preference record is stored under.
	DefaultNamespace = DefaultAppName
)
