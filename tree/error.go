package tree

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Error is a fatal definition-file error. It carries the error taxonomy
// kind, a human-readable message, and (when tied to a token) the source
// position of the offending text. Errors propagate by return through the
// call chain; only the top-level driver renders them.
//
// Error implements both error and [slog.LogValuer], so structured log
// output gets the position as discrete attributes.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Path   string
	Line   int
	Column int

	err   error
	attrs []slog.Attr
}

// NewError creates an unpositioned error of the given kind.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Errorf creates an unpositioned error of the given kind with a formatted
// message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ErrorAt creates an error positioned at the given token.
func ErrorAt(kind ErrorKind, tok *Token, format string, args ...any) *Error {
	return Errorf(kind, format, args...).At(tok.path(), tok.Line, tok.Column)
}

// At returns a copy of the error positioned at the given source location.
func (e *Error) At(path string, line, column int) *Error {
	c := *e
	c.Path = path
	c.Line = line
	c.Column = column

	return &c
}

// Wrap returns a copy of the error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With returns a copy of the error carrying additional structured logging
// attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	c.attrs = append(c.attrs, e.attrs...)
	c.attrs = append(c.attrs, attrs...)

	return &c
}

// Error implements the error interface. Positioned errors render in the
// compiler-style "path:line:column: error: message" form.
func (e *Error) Error() string {
	var sb strings.Builder

	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(e.Line))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(e.Column))
		sb.WriteString(": error: ")
	}

	sb.WriteString(e.Msg)

	if e.err != nil {
		if e.Msg != "" {
			sb.WriteString(": ")
		}

		sb.WriteString(e.err.Error())
	}

	return sb.String()
}

// Unwrap supports errors.Is and errors.As on wrapped errors.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements [slog.LogValuer].
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+5)

	attrs = append(attrs,
		slog.String("kind", e.Kind.String()),
		slog.String("error", e.Msg),
	)

	if e.Path != "" {
		attrs = append(attrs,
			slog.String("file", e.Path),
			slog.Int("line", e.Line),
			slog.Int("column", e.Column),
		)
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// AsError extracts an *Error from an error chain, or wraps a plain error as
// an internal error so the top-level renderer always has a kind to report.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return NewError(InternalError, "").Wrap(err)
}

// UnexpectedCharMessage builds the shared "Unexpected character" diagnostic
// text for the given offending byte.
func UnexpectedCharMessage(c byte, detail string) string {
	if isPrint(c) {
		return "Unexpected character '" + string(c) + "' " + detail
	}

	return "Unexpected non-printable character " + detail
}

func isPrint(c byte) bool { return c >= 0x20 && c < 0x7f }
