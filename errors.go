package covenant

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned by Register and RegisterOnce when the event name is empty
	// or the callback is nil. Nothing is registered in that case.
	ErrInvalidArgument = errors.New("invalid argument")

	errEmptyName   = errors.Wrap(ErrInvalidArgument, "event name is empty")
	errNilCallback = errors.Wrap(ErrInvalidArgument, "callback is nil")
)

func validate(name string, cb Callback) error {
	if name == "" {
		return errEmptyName
	}
	if cb == nil {
		return errors.Wrapf(errNilCallback, "event %q", name)
	}
	return nil
}
