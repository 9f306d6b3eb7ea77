//go:build !windows

package launcher

import (
	"os/exec"
	"syscall"
)

// configureDetached starts the child in its own session so it outlives the
// launcher and does not receive the terminal's signals.
func configureDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
