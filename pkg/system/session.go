package system

import (
	"os"
	"os/exec"
	"strings"
)

// Session answers questions about the desktop session the process runs in.
type Session struct{}

// IsWaylandSession reports whether the current session is driven by a Wayland
// compositor rather than an X server.
func (Session) IsWaylandSession() bool {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE")), "wayland") {
		return true
	}
	return strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) != ""
}

// IsExecutableInstalled reports whether name resolves to an executable on PATH.
func (Session) IsExecutableInstalled(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
