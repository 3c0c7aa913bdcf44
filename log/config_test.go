package log

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_WithLevel_SetsLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected Level
	}{
		{"trace", LevelTrace, LevelTrace},
		{"debug", LevelDebug, LevelDebug},
		{"info", LevelInfo, LevelInfo},
		{"warn", LevelWarn, LevelWarn},
		{"error", LevelError, LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithLevel(tt.level)(config{})

			if c.level != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, c.level)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"ERROR+4", LevelError + 4},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"yaml", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestLevels_IncludesAll(t *testing.T) {
	var names []string
	for name := range Levels() {
		names = append(names, name)
	}

	joined := strings.Join(names, ",")
	if joined != "trace,debug,info,warn,error" {
		t.Errorf("unexpected level names: %s", joined)
	}
}

func TestFormats_IncludesAll(t *testing.T) {
	var names []string
	for name := range Formats() {
		names = append(names, name)
	}

	joined := strings.Join(names, ",")
	if joined != "text,json" {
		t.Errorf("unexpected format names: %s", joined)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	stamp := time.Date(2024, time.March, 5, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name     string
		layout   string
		expected string
	}{
		{"named rfc3339", "RFC3339", "2024-03-05T12:30:45Z"},
		{"named kitchen", "Kitchen", "12:30PM"},
		{"disabled", "none", ""},
		{"empty", "", ""},
		{"custom", "2006/01/02", "2024/03/05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := makeFormatTimeFunc(tt.layout)

			if got := format(stamp); got != tt.expected {
				t.Errorf("format(%q) = %q, want %q", tt.layout, got, tt.expected)
			}
		})
	}
}
