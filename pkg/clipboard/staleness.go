package clipboard

import (
	"fmt"

	"secretclip/pkg/errors"
	"secretclip/pkg/logger"
	"secretclip/pkg/system"
)

// lastCopied is the text a backend instance most recently put on the
// clipboard. It is set by every successful copy and consumed by the clear
// that wipes it.
type lastCopied struct {
	characters string
	held       bool
}

func (l *lastCopied) remember(characters string) {
	l.characters = characters
	l.held = true
}

func (l *lastCopied) forget() {
	l.characters = ""
	l.held = false
}

// clearIfUnchanged waits, then wipes the clipboard only if it still holds
// what this instance copied.
func clearIfUnchanged(name string, deps Deps, last *lastCopied, afterSeconds int, read func() (string, error), wipe func() error) error {
	if afterSeconds <= 0 {
		return nil
	}

	deps.sleepSeconds(afterSeconds)

	if !last.held {
		logger.Debug().Str("backend", name).Msg("nothing copied by this backend, skipping clear")
		return nil
	}

	current, err := read()
	if err != nil {
		return err
	}
	if current != last.characters {
		logger.Info().Str("backend", name).Msg("clipboard changed since copy, leaving it alone")
		return nil
	}

	if err := wipe(); err != nil {
		return err
	}
	last.forget()
	logger.Debug().Str("backend", name).Msg("clipboard cleared")
	return nil
}

// run executes argv and turns every kind of failure into a clipboard write
// error naming the command.
func run(runner Runner, argv []string, stdin *string) (string, error) {
	command := system.CommandLine(argv)
	ev := logger.Debug().Strs("argv", argv)
	if stdin != nil {
		ev = ev.Int("stdin_bytes", len(*stdin))
	}
	ev.Msg("running clipboard command")

	result, err := runner.Run(argv, stdin)
	if err != nil {
		return "", errors.ClipboardWriteError(command, err)
	}
	if result.ExitStatus != 0 {
		return "", errors.ClipboardWriteError(command, fmt.Errorf("exit status %d", result.ExitStatus))
	}
	return result.Stdout, nil
}
