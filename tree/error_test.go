package tree

import (
	"errors"
	"log/slog"
	"testing"
)

func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			"unpositioned",
			NewError(SemanticError, "File not found: 'x.adef'."),
			"File not found: 'x.adef'.",
		},
		{
			"positioned",
			Errorf(LexicalError, "Unexpected character '%c' %s", '!', "in name.").
				At("app.adef", 3, 14),
			"app.adef:3:14: error: Unexpected character '!' in name.",
		},
		{
			"wrapped",
			NewError(InternalError, "Failed to write script").
				Wrap(errors.New("disk full")),
			"Failed to write script: disk full",
		},
		{
			"wrapped without message",
			NewError(InternalError, "").Wrap(errors.New("disk full")),
			"disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorAtDoesNotMutate(t *testing.T) {
	base := NewError(SyntaxError, "bad section")
	positioned := base.At("app.adef", 1, 0)

	if base.Path != "" {
		t.Errorf("At mutated the receiver: path = %q", base.Path)
	}

	if positioned.Path != "app.adef" || positioned.Line != 1 {
		t.Errorf("unexpected position: %s:%d", positioned.Path, positioned.Line)
	}
}

func TestErrorAt(t *testing.T) {
	file := NewDefFile("comp/Component.cdef")
	tok := file.Append(&Token{Kind: Name, Text: "oops", Line: 7, Column: 2})

	err := ErrorAt(SemanticError, tok, "Cannot bundle file '%s'.", "a/b")

	expected := "comp/Component.cdef:7:2: error: Cannot bundle file 'a/b'."
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Errorf(InternalError, "Failed to create directory").Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find the wrapped cause")
	}
}

func TestAsError(t *testing.T) {
	original := Errorf(BindingError, "unbound interface")

	if got := AsError(original); got != original {
		t.Errorf("AsError returned %v, want the original", got)
	}

	plain := errors.New("something else")

	wrapped := AsError(plain)
	if wrapped.Kind != InternalError {
		t.Errorf("AsError kind = %v, want InternalError", wrapped.Kind)
	}

	if !errors.Is(wrapped, plain) {
		t.Error("AsError lost the original error")
	}
}

func TestErrorLogValue(t *testing.T) {
	err := Errorf(SyntaxError, "bad token").
		At("x.adef", 2, 5).
		With(slog.String("section", "bindings"))

	attrs := map[string]string{}

	for _, attr := range err.LogValue().Group() {
		attrs[attr.Key] = attr.Value.String()
	}

	expected := map[string]string{
		"kind":    "syntax",
		"error":   "bad token",
		"file":    "x.adef",
		"line":    "2",
		"column":  "5",
		"section": "bindings",
	}

	for key, want := range expected {
		if got := attrs[key]; got != want {
			t.Errorf("attr %q = %q, want %q", key, got, want)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		text string
	}{
		{LexicalError, "lexical"},
		{SyntaxError, "syntax"},
		{SemanticError, "semantic"},
		{BindingError, "binding"},
		{InternalError, "internal"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.text {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.text)
		}
	}
}
