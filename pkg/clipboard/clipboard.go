// Package clipboard copies secrets to the Linux clipboard through whichever
// command-line tool the desktop provides (xsel, xclip or wl-copy) and wipes
// them again after a timeout.
//
// The X11 backends remember what they copied and only clear the clipboard if
// it still holds that text, so anything the user copied in the meantime
// survives. The Wayland backend cannot read the clipboard back and clears
// unconditionally.
package clipboard

import (
	"time"

	"secretclip/pkg/system"
)

// Backend is one way of talking to the system clipboard.
type Backend interface {
	// Name returns the registry name of the backend, e.g. "xsel".
	Name() string

	// Copy places text on the clipboard.
	Copy(text string) error

	// Clear blocks for afterSeconds and then clears the clipboard.
	// A value <= 0 makes Clear return immediately without touching anything.
	Clear(afterSeconds int) error
}

// Environment describes the desktop the process runs in.
type Environment interface {
	IsWaylandSession() bool
	IsExecutableInstalled(name string) bool
}

// Runner runs an external command to completion. A nil stdin means the
// command gets no input.
type Runner interface {
	Run(argv []string, stdin *string) (system.Result, error)
}

// Deps are the collaborators a backend needs.
type Deps struct {
	Env    Environment
	Runner Runner
	Sleep  func(time.Duration)
}

// DefaultDeps wires the real session probe, process runner and clock.
func DefaultDeps() Deps {
	return Deps{
		Env:    system.Session{},
		Runner: system.ExecRunner{},
		Sleep:  time.Sleep,
	}
}

func (d Deps) sleepSeconds(seconds int) {
	d.Sleep(time.Duration(seconds) * time.Second)
}
