package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"secretclip/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess          ExitCode = 0
	ExitCodeGeneral          ExitCode = 1
	ExitCodeConfig           ExitCode = 2
	ExitCodeValidation       ExitCode = 3
	ExitCodeFileOperation    ExitCode = 4
	ExitCodeBackendNotFound  ExitCode = 5
	ExitCodeClipboardWrite   ExitCode = 6
	ExitCodeInputUnavailable ExitCode = 7
)

// Standardized error messages for consistent user-facing errors
const (
	ErrMsgBackendNotFound = "Could not find a valid way to copy to clipboard. Please check the required dependencies."
	ErrMsgClipboardWrite  = "Failed to write to clipboard"
	ErrMsgReadInput       = "Failed to read secret from input"
	ErrMsgConfigSave      = "Failed to save configuration"
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message string, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

func WrapWithCode(err error, code ExitCode, message string) *Error {
	if err == nil {
		return nil
	}

	var errMsg string
	if wrapped, ok := err.(*Error); ok {
		errMsg = wrapped.Message
		if wrapped.Underlying != nil {
			errMsg += ": " + wrapped.Underlying.Error()
		}
	} else {
		errMsg = err.Error()
	}

	return &Error{
		Code:       code,
		Message:    message + ": " + errMsg,
		Underlying: err,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

// HandleReturn processes an error, prints it to stderr, and returns the
// appropriate exit code. The caller is responsible for exiting the program.
func HandleReturn(err error) ExitCode {
	return handleTo(os.Stderr, err)
}

func handleTo(w io.Writer, err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Error()
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Debug().Err(e.Underlying).Int("exit_code", int(e.Code)).Msg(e.Message)
		}
	} else {
		message = err.Error()
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, message)

	if suggestion != "" {
		yellow.Fprint(w, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(w, line)
			} else if strings.HasPrefix(line, "  -") {
				cyan.Fprintln(w, line)
			} else {
				fmt.Fprintln(w, "            "+line)
			}
		}
	}

	return exitCode
}

// BackendNotFoundError is returned by every operation of the fallback backend
// used when no clipboard tool could be selected.
func BackendNotFoundError(candidates []string) *Error {
	suggestion := "Install one of the supported clipboard tools:"
	for _, name := range candidates {
		suggestion += fmt.Sprintf("\n  - %s", name)
	}
	return &Error{
		Code:       ExitCodeBackendNotFound,
		Message:    ErrMsgBackendNotFound,
		Suggestion: suggestion,
	}
}

// ClipboardWriteError reports a clipboard command that could not be run or
// exited abnormally. command is the rendered command line, never its input.
func ClipboardWriteError(command string, err error) *Error {
	return &Error{
		Code:       ExitCodeClipboardWrite,
		Message:    fmt.Sprintf("%s: '%s' failed", ErrMsgClipboardWrite, command),
		Underlying: err,
	}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file or the SECRETCLIP_* environment variables.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}
