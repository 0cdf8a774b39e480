package yaml

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
)

// Error is a YAML error located either by a [*yaml.Path] (schema errors) or
// by the [*token.Token] where decoding failed.
type Error struct {
	Err     error
	Path    *yaml.Path
	Token   *token.Token
	Source  []byte
	Colored bool
}

// ErrorOpt configures an [Error].
type ErrorOpt func(e *Error)

func NewError(err error, opts ...ErrorOpt) *Error {
	e := &Error{Err: err}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func WithPath(path *yaml.Path) ErrorOpt {
	return func(e *Error) {
		e.Path = path
	}
}

func WithToken(tk *token.Token) ErrorOpt {
	return func(e *Error) {
		e.Token = tk
	}
}

// WithSource sets the document the error refers to, so that [Error.Error]
// can show the offending lines.
func WithSource(source []byte) ErrorOpt {
	return func(e *Error) {
		e.Source = source
	}
}

// WithColor enables ANSI colors in the annotated source.
func WithColor(colored bool) ErrorOpt {
	return func(e *Error) {
		e.Colored = colored
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}

	if e.Token != nil {
		var p printer.Printer

		pos := e.Token.Position

		return fmt.Sprintf("[%d:%d] %v\n%s", pos.Line, pos.Column, e.Err, p.PrintErrorToken(e.Token, e.Colored))
	}

	if e.Path == nil {
		return e.Err.Error()
	}

	msg := fmt.Sprintf("error at %s: %v", e.Path.String(), e.Err)
	if len(e.Source) == 0 {
		return msg
	}

	annotated, err := e.Path.AnnotateSource(e.Source, e.Colored)
	if err != nil {
		slog.Debug("could not annotate source",
			slog.String("path", e.Path.String()),
			slog.Any("error", err),
		)

		return msg
	}

	return msg + "\n" + string(annotated)
}

// ErrorWrapper applies a fixed set of [ErrorOpt]s to every [*Error] it
// wraps.
type ErrorWrapper struct {
	opts []ErrorOpt
}

func NewErrorWrapper(opts ...ErrorOpt) *ErrorWrapper {
	return &ErrorWrapper{opts: opts}
}

// Wrap applies the wrapper's options to err if it is an [*Error]. Other
// errors are returned unmodified.
func (ew *ErrorWrapper) Wrap(err error) error {
	if err == nil {
		return nil
	}

	var yamlErr *Error
	if errors.As(err, &yamlErr) {
		for _, opt := range ew.opts {
			opt(yamlErr)
		}
	}

	return err
}
