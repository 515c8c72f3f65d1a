package clipboard

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	clipErrors "secretclip/pkg/errors"
)

// stalenessBackends are the backends that read the clipboard back before
// clearing it.
var stalenessBackends = []struct {
	name      string
	wipeCalls []string
}{
	{name: "xsel", wipeCalls: []string{"xsel --output --clipboard", "xsel --clear --clipboard"}},
	{name: "xclip", wipeCalls: []string{"xclip -o -selection clipboard", "xclip -in -selection clipboard"}},
}

func TestCopy_WritesClipboard(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			deps, cb, _ := testDeps(fakeEnv{})
			b := Select(name, deps)

			if err := b.Copy("s3cr3t"); err != nil {
				t.Fatalf("Copy() returned error: %v", err)
			}
			if cb.content != "s3cr3t" {
				t.Errorf("clipboard = %q, want %q", cb.content, "s3cr3t")
			}
			if len(cb.calls) != 1 {
				t.Errorf("Copy() ran %d commands, want 1: %v", len(cb.calls), cb.calls)
			}
		})
	}
}

func TestClear_StalenessCheckClearsOwnContent(t *testing.T) {
	for _, tt := range stalenessBackends {
		t.Run(tt.name, func(t *testing.T) {
			deps, cb, clock := testDeps(fakeEnv{})
			b := Select(tt.name, deps)

			if err := b.Copy("s3cr3t"); err != nil {
				t.Fatalf("Copy() returned error: %v", err)
			}
			before := len(cb.calls)

			if err := b.Clear(5); err != nil {
				t.Fatalf("Clear() returned error: %v", err)
			}

			if !reflect.DeepEqual(clock.slept, []time.Duration{5 * time.Second}) {
				t.Errorf("slept %v, want [5s]", clock.slept)
			}
			if cb.content != "" {
				t.Errorf("clipboard = %q, want empty", cb.content)
			}
			if got := cb.callsSince(before); !reflect.DeepEqual(got, tt.wipeCalls) {
				t.Errorf("Clear() ran %v, want %v", got, tt.wipeCalls)
			}
			if last := lastOf(t, b); last.held || last.characters != "" {
				t.Errorf("last copied = %+v, want forgotten", last)
			}
		})
	}
}

func TestClear_StalenessCheckKeepsNewerContent(t *testing.T) {
	for _, tt := range stalenessBackends {
		t.Run(tt.name, func(t *testing.T) {
			deps, cb, clock := testDeps(fakeEnv{})
			b := Select(tt.name, deps)

			if err := b.Copy("s3cr3t"); err != nil {
				t.Fatalf("Copy() returned error: %v", err)
			}
			// Another program copies while the timer runs.
			clock.onSleep = func() { cb.content = "grocery list" }
			before := len(cb.calls)

			if err := b.Clear(3); err != nil {
				t.Fatalf("Clear() returned error: %v", err)
			}

			if cb.content != "grocery list" {
				t.Errorf("clipboard = %q, newer content should survive", cb.content)
			}
			if got := cb.callsSince(before); len(got) != 1 {
				t.Errorf("Clear() should only read the clipboard back, ran %v", got)
			}
			if last := lastOf(t, b); !last.held || last.characters != "s3cr3t" {
				t.Errorf("last copied = %+v, should still hold the secret", last)
			}
		})
	}
}

func TestClear_NonPositiveIsNoop(t *testing.T) {
	for _, name := range Names() {
		for _, seconds := range []int{0, -1} {
			t.Run(name, func(t *testing.T) {
				deps, cb, clock := testDeps(fakeEnv{})
				b := Select(name, deps)

				if err := b.Copy("s3cr3t"); err != nil {
					t.Fatalf("Copy() returned error: %v", err)
				}
				before := len(cb.calls)

				if err := b.Clear(seconds); err != nil {
					t.Fatalf("Clear(%d) returned error: %v", seconds, err)
				}

				if len(clock.slept) != 0 {
					t.Errorf("Clear(%d) slept %v", seconds, clock.slept)
				}
				if got := cb.callsSince(before); len(got) != 0 {
					t.Errorf("Clear(%d) ran %v", seconds, got)
				}
				if cb.content != "s3cr3t" {
					t.Errorf("clipboard = %q, want %q", cb.content, "s3cr3t")
				}
			})
		}
	}
}

func TestClear_WithoutCopyDoesNothing(t *testing.T) {
	for _, tt := range stalenessBackends {
		t.Run(tt.name, func(t *testing.T) {
			deps, cb, clock := testDeps(fakeEnv{})
			cb.content = "user data"
			b := Select(tt.name, deps)

			if err := b.Clear(2); err != nil {
				t.Fatalf("Clear() returned error: %v", err)
			}
			if len(clock.slept) != 1 {
				t.Errorf("Clear() slept %v, want one wait", clock.slept)
			}
			if len(cb.calls) != 0 {
				t.Errorf("Clear() ran %v without a prior copy", cb.calls)
			}
			if cb.content != "user data" {
				t.Errorf("clipboard = %q, want untouched", cb.content)
			}
		})
	}
}

func TestWlCopy_ClearIsUnconditional(t *testing.T) {
	deps, cb, clock := testDeps(fakeEnv{wayland: true})
	b := Select("wl-copy", deps)

	if err := b.Copy("hunter2"); err != nil {
		t.Fatalf("Copy() returned error: %v", err)
	}
	clock.onSleep = func() { cb.content = "newer" }
	before := len(cb.calls)

	if err := b.Clear(1); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}

	if !reflect.DeepEqual(clock.slept, []time.Duration{time.Second}) {
		t.Errorf("slept %v, want [1s]", clock.slept)
	}
	if got := cb.callsSince(before); !reflect.DeepEqual(got, []string{"wl-copy --clear"}) {
		t.Errorf("Clear() ran %v, want only wl-copy --clear", got)
	}
	if cb.content != "" {
		t.Errorf("clipboard = %q, want empty", cb.content)
	}
}

func TestXClip_CopyThenImmediateClearKeepsSecret(t *testing.T) {
	deps, cb, _ := testDeps(fakeEnv{})
	b := Select("xclip", deps)

	if err := b.Copy("s3cr3t"); err != nil {
		t.Fatalf("Copy() returned error: %v", err)
	}
	if err := b.Clear(0); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if cb.content != "s3cr3t" {
		t.Errorf("clipboard = %q, want %q", cb.content, "s3cr3t")
	}
}

func TestCopy_FailuresAreClipboardWriteErrors(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		command string
		runErr  error
		exit    int
	}{
		{
			name:    "xsel missing at call time",
			backend: "xsel",
			command: "xsel --input --clipboard",
			runErr:  errors.New("executable file not found in $PATH"),
		},
		{
			name:    "xclip non-zero exit",
			backend: "xclip",
			command: "xclip -in -selection clipboard",
			exit:    1,
		},
		{
			name:    "wl-copy non-zero exit",
			backend: "wl-copy",
			command: "wl-copy",
			exit:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, cb, _ := testDeps(fakeEnv{})
			if tt.runErr != nil {
				cb.failWith[tt.command] = tt.runErr
			} else {
				cb.exitWith[tt.command] = tt.exit
			}
			b := Select(tt.backend, deps)

			err := b.Copy("s3cr3t")
			if !clipErrors.IsExitCode(err, clipErrors.ExitCodeClipboardWrite) {
				t.Fatalf("Copy() error = %v, want clipboard write error", err)
			}
			if !strings.Contains(err.Error(), tt.command) {
				t.Errorf("error %q should name the command %q", err.Error(), tt.command)
			}
			if strings.Contains(err.Error(), "s3cr3t") {
				t.Errorf("error %q leaks the secret", err.Error())
			}
		})
	}
}

func TestCopy_FailureDoesNotRecordText(t *testing.T) {
	for _, tt := range stalenessBackends {
		t.Run(tt.name, func(t *testing.T) {
			deps, cb, _ := testDeps(fakeEnv{})
			b := Select(tt.name, deps)

			cb.exitWith[strings.Join(writeArgsOf(t, b), " ")] = 1
			if err := b.Copy("s3cr3t"); err == nil {
				t.Fatal("Copy() should fail")
			}
			if lastOf(t, b).held {
				t.Error("failed Copy() recorded the text")
			}
		})
	}
}

func TestClear_ReadBackFailure(t *testing.T) {
	deps, cb, _ := testDeps(fakeEnv{})
	b := Select("xclip", deps)

	if err := b.Copy("s3cr3t"); err != nil {
		t.Fatalf("Copy() returned error: %v", err)
	}
	cb.exitWith["xclip -o -selection clipboard"] = 1

	err := b.Clear(1)
	if !clipErrors.IsExitCode(err, clipErrors.ExitCodeClipboardWrite) {
		t.Fatalf("Clear() error = %v, want clipboard write error", err)
	}
	if cb.content != "s3cr3t" {
		t.Errorf("clipboard = %q, should be untouched after a failed read", cb.content)
	}
}

func TestClear_WipeFailure(t *testing.T) {
	deps, cb, _ := testDeps(fakeEnv{wayland: true})
	b := Select("wl-copy", deps)
	cb.failWith["wl-copy --clear"] = errors.New("compositor went away")

	err := b.Clear(1)
	if !clipErrors.IsExitCode(err, clipErrors.ExitCodeClipboardWrite) {
		t.Fatalf("Clear() error = %v, want clipboard write error", err)
	}
	if !strings.Contains(err.Error(), "wl-copy --clear") {
		t.Errorf("error %q should name the command", err.Error())
	}
}

func TestClear_SecondClearAfterWipeIsQuiet(t *testing.T) {
	deps, cb, _ := testDeps(fakeEnv{})
	b := Select("xsel", deps)

	if err := b.Copy("s3cr3t"); err != nil {
		t.Fatalf("Copy() returned error: %v", err)
	}
	if err := b.Clear(1); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	cb.content = "copied later"
	before := len(cb.calls)

	if err := b.Clear(1); err != nil {
		t.Fatalf("second Clear() returned error: %v", err)
	}
	if got := cb.callsSince(before); len(got) != 0 {
		t.Errorf("second Clear() ran %v", got)
	}
	if cb.content != "copied later" {
		t.Errorf("clipboard = %q, want untouched", cb.content)
	}
}

func lastOf(t *testing.T, b Backend) lastCopied {
	t.Helper()
	switch v := b.(type) {
	case *XSel:
		return v.last
	case *XClip:
		return v.last
	default:
		t.Fatalf("%T does not track copied text", b)
		return lastCopied{}
	}
}

func writeArgsOf(t *testing.T, b Backend) []string {
	t.Helper()
	switch b.(type) {
	case *XSel:
		return xselWriteArgs
	case *XClip:
		return xclipWriteArgs
	default:
		t.Fatalf("unexpected backend %T", b)
		return nil
	}
}
