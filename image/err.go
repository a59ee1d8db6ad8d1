package image

import (
	"errors"

	"github.com/ttopal/Improved-Simple-Computer-Taub/translate"
)

var f = translate.From

var (
	ErrAddressSyntax = errors.New(f("address invalid"))
	ErrWordSyntax    = errors.New(f("word invalid"))
	ErrImageSize     = errors.New(f("image too large"))
)

// ErrListing locates a parse error in its listing line.
type ErrListing struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrListing) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrListing) Unwrap() error {
	return err.Err
}
