package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.config.level != LevelWarn {
		t.Errorf("expected default level Warn, got %v", logger.config.level)
	}
	if logger.config.caller {
		t.Error("expected caller info disabled by default")
	}
	if logger.config.format != FormatText {
		t.Errorf("expected default format text, got %v", logger.config.format)
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelError))
	logger2.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger2.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Trace_BelowDebug(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug))
	logger.Trace("trace message")
	if buf.Len() > 0 {
		t.Error("trace message logged when level is Debug")
	}

	buf.Reset()
	logger = Make(&buf, WithLevel(LevelTrace))
	logger.Trace("trace message")
	if !strings.Contains(buf.String(), "trace message") {
		t.Error("trace message not logged at Trace level")
	}
	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("trace level not rendered as TRACE: %q", buf.String())
	}
}

func TestLogger_JSONFormat_ProducesValidJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithLevel(LevelInfo),
		WithFormat(FormatJSON))

	logger.Info("structured message",
		slog.String("key", "value"),
		slog.Int("count", 3))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if record["msg"] != "structured message" {
		t.Errorf("unexpected msg: %v", record["msg"])
	}
	if record["key"] != "value" {
		t.Errorf("unexpected key attr: %v", record["key"])
	}
	if record["count"] != float64(3) {
		t.Errorf("unexpected count attr: %v", record["count"])
	}
}

func TestLogger_With_CarriesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithLevel(LevelInfo),
		WithFormat(FormatJSON)).
		With(slog.String("component", "widget"))

	logger.Info("first")
	logger.Info("second")

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, `"component":"widget"`) {
			t.Errorf("attribute missing from record: %s", line)
		}
	}
}

func TestLogger_Wrap_OverridesConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelError))

	wrapped := logger.Wrap(WithLevel(LevelDebug))

	if logger.Level() != LevelError {
		t.Errorf("base logger level changed: %v", logger.Level())
	}
	if wrapped.Level() != LevelDebug {
		t.Errorf("wrapped logger level not applied: %v", wrapped.Level())
	}

	wrapped.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("wrapped logger did not log at its own level")
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("nowhere")
	logger.Error("nowhere")

	if logger.Level() != DefaultLevel {
		t.Errorf("zero logger level: %v", logger.Level())
	}
	if logger.Format() != DefaultFormat {
		t.Errorf("zero logger format: %v", logger.Format())
	}
}

func TestLogger_PrettyText_ColorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithLevel(LevelInfo),
		WithFormat(FormatText),
		WithPretty(true))

	logger.Warn("watch out")

	out := buf.String()
	if !strings.Contains(out, "[warn]") {
		t.Errorf("level tag missing: %q", out)
	}
	if !strings.Contains(out, colorYellow) {
		t.Errorf("warn color missing: %q", out)
	}
	if !strings.Contains(out, "watch out") {
		t.Errorf("message missing: %q", out)
	}
}
