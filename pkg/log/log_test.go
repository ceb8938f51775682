package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/statfolk/linefit/pkg/errors"
)

func TestTestLogger(t *testing.T) {
	logger, buffer := NewTestLogger()

	logger.Debug("debug message", "key1", "value1")
	logger.Info("fit finished", OperationKey, OperationFit, PointsKey, 6)
	logger.Warn("warning message")
	logger.Error("fit failed", "error", errors.New("boom"))

	if buffer.Len() == 0 {
		t.Fatal("expected log output, got empty buffer")
	}

	for _, msg := range []string{"debug message", "fit finished", "warning message", "fit failed"} {
		if !logger.ContainsMessage(msg) {
			t.Errorf("message %q not found in output", msg)
		}
	}

	if !logger.ContainsField(OperationKey, OperationFit) {
		t.Errorf("expected field %s=%s", OperationKey, OperationFit)
	}
	// JSON numbers decode as float64.
	if !logger.ContainsField(PointsKey, 6.0) {
		t.Errorf("expected field %s=6", PointsKey)
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger()

	contextLogger := logger.With(ModelNameKey, "regress.Model")
	contextLogger.Info("coefficients cached")

	if !logger.ContainsField(ModelNameKey, "regress.Model") {
		t.Error("expected pre-populated model name field")
	}

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	logger.Clear()
	if logger.ContainsMessage("coefficients cached") {
		t.Error("expected buffer to be empty after Clear")
	}
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	// cockroachdb/errors records the stack in the error's safe details.
	err := errors.NewValueError("Model.Fit", "no data or length mismatch")
	logger.Error("fit failed", ErrAttr(err))

	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("invalid JSON output: %v", jsonErr)
	}

	stack, ok := entry[StacktraceAttrKey].(string)
	if !ok || stack == "" {
		t.Error("expected non-empty stacktrace attribute")
	}
	if !strings.Contains(buf.String(), "no data or length mismatch") {
		t.Error("expected error message in output")
	}
}

func TestErrFmtHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, opts))

	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestToLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range cases {
		if got := ToLogLevel(name); got != want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", name, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid level")
		}
	}()
	ToLogLevel("verbose")
}
