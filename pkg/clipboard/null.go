package clipboard

import "secretclip/pkg/errors"

// Null stands in when no clipboard tool is available. Every operation fails.
type Null struct{}

func (Null) Name() string { return "none" }

func (Null) Copy(string) error {
	return errors.BackendNotFoundError(Names())
}

func (Null) Clear(int) error {
	return errors.BackendNotFoundError(Names())
}
