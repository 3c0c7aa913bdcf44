package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func loadConfig(t *testing.T, text string) config {
	t.Helper()

	resolver, err := resolve(strings.NewReader(text))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	cfg, ok := resolver.(config)
	if !ok {
		t.Fatalf("unexpected resolver type %T", resolver)
	}

	return cfg
}

func resolveFlag(t *testing.T, cfg config, name string) any {
	t.Helper()

	value, err := cfg.Resolve(nil, nil, &kong.Flag{
		Value: &kong.Value{Name: name},
	})
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return value
}

func TestResolve_FlagLookup(t *testing.T) {
	cfg := loadConfig(t, ""+
		"log-level: debug\n"+
		"log_format: json\n"+
		"target: wp76xx\n")

	tests := []struct {
		name     string
		flag     string
		expected any
	}{
		{"hyphen key", "log-level", "debug"},
		{"underscore key for hyphen flag", "log-format", "json"},
		{"plain key", "target", "wp76xx"},
		{"missing key", "output-dir", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveFlag(t, cfg, tt.flag); got != tt.expected {
				t.Errorf("Resolve(%q) = %v, want %v", tt.flag, got, tt.expected)
			}
		})
	}
}

func TestResolve_MalformedYAMLFallsBack(t *testing.T) {
	cfg := loadConfig(t, ": not valid yaml :\n\t-")

	if got := resolveFlag(t, cfg, "target"); got != nil {
		t.Errorf("expected nil from empty config, got %v", got)
	}
}

func TestResolve_EmptyFile(t *testing.T) {
	cfg := loadConfig(t, "")

	if got := resolveFlag(t, cfg, "target"); got != nil {
		t.Errorf("expected nil from empty config, got %v", got)
	}
}
