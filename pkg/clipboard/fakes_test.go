package clipboard

import (
	"fmt"
	"strings"
	"time"

	"secretclip/pkg/system"
)

type fakeEnv struct {
	wayland   bool
	installed map[string]bool
}

func (f fakeEnv) IsWaylandSession() bool { return f.wayland }

func (f fakeEnv) IsExecutableInstalled(name string) bool { return f.installed[name] }

func installed(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// fakeClipboard behaves like the real tools against an in-memory clipboard.
type fakeClipboard struct {
	content  string
	calls    []string
	failWith map[string]error
	exitWith map[string]int
}

func newFakeClipboard() *fakeClipboard {
	return &fakeClipboard{
		failWith: map[string]error{},
		exitWith: map[string]int{},
	}
}

func (f *fakeClipboard) Run(argv []string, stdin *string) (system.Result, error) {
	command := strings.Join(argv, " ")
	f.calls = append(f.calls, command)

	if err, ok := f.failWith[command]; ok {
		return system.Result{}, err
	}
	if status, ok := f.exitWith[command]; ok {
		return system.Result{ExitStatus: status}, nil
	}

	switch command {
	case "xsel --input --clipboard", "xclip -in -selection clipboard", "wl-copy":
		if stdin == nil {
			return system.Result{}, fmt.Errorf("%s: expected stdin", command)
		}
		f.content = *stdin
	case "xsel --output --clipboard", "xclip -o -selection clipboard":
		return system.Result{Stdout: f.content}, nil
	case "xsel --clear --clipboard", "wl-copy --clear":
		f.content = ""
	default:
		return system.Result{}, fmt.Errorf("unexpected command %q", command)
	}
	return system.Result{}, nil
}

func (f *fakeClipboard) callsSince(n int) []string {
	return f.calls[n:]
}

type fakeClock struct {
	slept   []time.Duration
	onSleep func()
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	if c.onSleep != nil {
		c.onSleep()
	}
}

func testDeps(env fakeEnv) (Deps, *fakeClipboard, *fakeClock) {
	cb := newFakeClipboard()
	clock := &fakeClock{}
	return Deps{Env: env, Runner: cb, Sleep: clock.Sleep}, cb, clock
}
