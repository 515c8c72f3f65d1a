package cmd

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	responseYes = "yes"
	responseY   = "y"
)

// ConfirmPrompt asks the user for confirmation on w and reads the answer
// from r. Anything but y/yes, including end of input, counts as no.
func ConfirmPrompt(r io.Reader, w io.Writer, message string) (bool, error) {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(w, "%s [y/N]: ", message)

	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == responseY || response == responseYes, nil
}
