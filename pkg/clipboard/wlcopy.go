package clipboard

import "secretclip/pkg/logger"

const wlCopyName = "wl-copy"

var (
	wlCopyWriteArgs = []string{wlCopyName}
	wlCopyClearArgs = []string{wlCopyName, "--clear"}
)

// WlCopy drives the Wayland clipboard through wl-copy. wl-copy can only
// write, so there is no staleness check and Clear always wipes.
type WlCopy struct {
	deps Deps
}

func (w *WlCopy) Name() string { return wlCopyName }

func (w *WlCopy) Copy(text string) error {
	_, err := run(w.deps.Runner, wlCopyWriteArgs, &text)
	return err
}

func (w *WlCopy) Clear(afterSeconds int) error {
	if afterSeconds <= 0 {
		return nil
	}
	w.deps.sleepSeconds(afterSeconds)

	if _, err := run(w.deps.Runner, wlCopyClearArgs, nil); err != nil {
		return err
	}
	logger.Debug().Str("backend", wlCopyName).Msg("clipboard cleared")
	return nil
}
