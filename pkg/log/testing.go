// Package log provides testing utilities for structured logging.
//
// TestLogger captures log output in memory so tests can assert on emitted
// messages and fields without touching the process default logger.

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TestLogger is a logger implementation designed for testing. All messages
// are captured in an internal buffer as JSON lines.
type TestLogger struct {
	buffer *bytes.Buffer
	fields map[string]interface{}
}

// NewTestLogger creates a TestLogger and returns it together with the
// buffer holding the captured output.
func NewTestLogger() (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{
		buffer: buffer,
		fields: make(map[string]interface{}),
	}, buffer
}

// Debug records a debug-level message.
func (t *TestLogger) Debug(msg string, fields ...any) {
	t.writeLog("DEBUG", msg, fields...)
}

// Info records an info-level message.
func (t *TestLogger) Info(msg string, fields ...any) {
	t.writeLog("INFO", msg, fields...)
}

// Warn records a warning-level message.
func (t *TestLogger) Warn(msg string, fields ...any) {
	t.writeLog("WARN", msg, fields...)
}

// Error records an error-level message.
func (t *TestLogger) Error(msg string, fields ...any) {
	t.writeLog("ERROR", msg, fields...)
}

// With returns a new TestLogger sharing the same buffer with the given
// fields pre-populated on every subsequent record.
func (t *TestLogger) With(fields ...any) *TestLogger {
	newFields := make(map[string]interface{})
	for k, v := range t.fields {
		newFields[k] = v
	}
	addFields(newFields, fields)

	return &TestLogger{
		buffer: t.buffer,
		fields: newFields,
	}
}

func addFields(dst map[string]interface{}, fields []any) {
	for i := 0; i < len(fields)-1; i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		value := fields[i+1]

		if err, ok := value.(error); ok {
			dst[key] = err.Error()
		} else {
			dst[key] = value
		}
	}
}

func (t *TestLogger) writeLog(level, msg string, fields ...any) {
	entry := map[string]interface{}{
		"level":   level,
		"message": msg,
	}
	for k, v := range t.fields {
		entry[k] = v
	}
	addFields(entry, fields)

	jsonData, _ := json.Marshal(entry)
	t.buffer.WriteString(string(jsonData) + "\n")
}

// GetLogEntries parses the captured output into structured entries.
func (t *TestLogger) GetLogEntries() ([]map[string]interface{}, error) {
	var entries []map[string]interface{}
	lines := strings.Split(strings.TrimSpace(t.buffer.String()), "\n")

	for _, line := range lines {
		if line == "" {
			continue
		}

		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ContainsMessage reports whether any captured record contains the message.
func (t *TestLogger) ContainsMessage(message string) bool {
	return strings.Contains(t.buffer.String(), message)
}

// ContainsField reports whether any captured record has the field with the
// given value.
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if fieldValue, exists := entry[key]; exists {
			if fieldValue == value {
				return true
			}
		}
	}

	return false
}

// Clear discards all captured log content.
func (t *TestLogger) Clear() {
	t.buffer.Reset()
}
