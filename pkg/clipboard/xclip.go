package clipboard

const xclipName = "xclip"

var (
	xclipWriteArgs = []string{xclipName, "-in", "-selection", "clipboard"}
	xclipReadArgs  = []string{xclipName, "-o", "-selection", "clipboard"}
)

// XClip drives the X11 clipboard through xclip. xclip has no clear
// operation, so clearing copies the empty string.
type XClip struct {
	deps Deps
	last lastCopied
}

func (x *XClip) Name() string { return xclipName }

func (x *XClip) Copy(text string) error {
	if _, err := run(x.deps.Runner, xclipWriteArgs, &text); err != nil {
		return err
	}
	x.last.remember(text)
	return nil
}

func (x *XClip) Clear(afterSeconds int) error {
	return clearIfUnchanged(xclipName, x.deps, &x.last, afterSeconds, x.read, x.wipe)
}

func (x *XClip) read() (string, error) {
	return run(x.deps.Runner, xclipReadArgs, nil)
}

func (x *XClip) wipe() error {
	return x.Copy("")
}
