package launcher

import "context"

// Action is what the user asked for when the picker returned.
type Action int

const (
	// ActionClose means the picker was dismissed without launching.
	ActionClose Action = iota
	// ActionLaunch means the user asked to start the selected version.
	ActionLaunch
	// ActionChangeDirectory means the user wants to pick another install
	// root before choosing.
	ActionChangeDirectory
)

func (a Action) String() string {
	switch a {
	case ActionClose:
		return "close"
	case ActionLaunch:
		return "launch"
	case ActionChangeDirectory:
		return "change-directory"
	default:
		return "unknown"
	}
}

// Selection is what the picker presents.
type Selection struct {
	// InstallRoot is shown so the user knows where the list came from.
	InstallRoot string

	// Items are the versions, sorted lexicographically.
	Items []string

	// Preselected is the item focused initially; empty for none.
	Preselected string

	// Remember is the initial state of the remember toggle.
	Remember bool

	// Notice is an optional message about the previous attempt, for example
	// a failed launch.
	Notice string
}

// Choice is the picker's answer.
type Choice struct {
	Action Action

	// Selected is the item selected when the picker returned, empty if none.
	Selected string

	// Remember is the toggle state at the moment the picker returned.
	Remember bool
}

// Gateway is the interactive side of the launcher. Implementations block
// until the user answers. Cancellation is expressed through the return
// values; a non-nil error means the gateway itself failed.
type Gateway interface {
	// PickDirectory asks for a new install root. ok is false when the user
	// cancelled.
	PickDirectory(ctx context.Context, current string) (dir string, ok bool, err error)

	// PickOne presents the selection and returns the user's action.
	PickOne(ctx context.Context, sel Selection) (Choice, error)
}

// VersionScanner lists the versions below an install root.
type VersionScanner interface {
	Scan(ctx context.Context, root string) VersionSet
}

// VersionLauncher starts one version.
type VersionLauncher interface {
	Launch(ctx context.Context, root, version string) error
}

var (
	_ VersionScanner  = (*Scanner)(nil)
	_ VersionLauncher = (*Executor)(nil)
)
