package clipboard

const xselName = "xsel"

var (
	xselWriteArgs = []string{xselName, "--input", "--clipboard"}
	xselReadArgs  = []string{xselName, "--output", "--clipboard"}
	xselClearArgs = []string{xselName, "--clear", "--clipboard"}
)

// XSel drives the X11 clipboard through xsel.
type XSel struct {
	deps Deps
	last lastCopied
}

func (x *XSel) Name() string { return xselName }

func (x *XSel) Copy(text string) error {
	if _, err := run(x.deps.Runner, xselWriteArgs, &text); err != nil {
		return err
	}
	x.last.remember(text)
	return nil
}

func (x *XSel) Clear(afterSeconds int) error {
	return clearIfUnchanged(xselName, x.deps, &x.last, afterSeconds, x.read, x.wipe)
}

func (x *XSel) read() (string, error) {
	return run(x.deps.Runner, xselReadArgs, nil)
}

func (x *XSel) wipe() error {
	_, err := run(x.deps.Runner, xselClearArgs, nil)
	return err
}
