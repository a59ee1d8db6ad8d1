package emulator

import (
	"errors"

	"github.com/ttopal/Improved-Simple-Computer-Taub/translate"
)

var f = translate.From

var (
	// ErrTickLimit indicates the configured tick budget ran out before
	// the machine halted.
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
