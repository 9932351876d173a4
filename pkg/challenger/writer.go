package challenger

import (
	"errors"
	"fmt"
	"io"

	"hmacchallenge/pkg/i18n"
)

// WriterNotifier prints results to Out and localized error text to Err.
type WriterNotifier struct {
	Out   io.Writer
	Err   io.Writer
	Quiet bool
}

func (w *WriterNotifier) OnCode(res Result) {
	if w.Out == nil {
		return
	}
	if w.Quiet {
		fmt.Fprintln(w.Out, res.Code)
		return
	}
	fmt.Fprintln(w.Out, i18n.Msgf(i18n.MsgCliResult, res.Code))
}

func (w *WriterNotifier) OnError(err error) {
	if w.Err == nil {
		return
	}
	fmt.Fprintln(w.Err, Message(err))
}

// Message returns the user-facing text for err.
func Message(err error) string {
	if errors.Is(err, ErrCodeMismatch) {
		return i18n.Resolve(i18n.MsgCliVerifyMismatch)
	}
	return i18n.ErrorMessage(err)
}
