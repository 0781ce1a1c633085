package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		expected string
	}{
		{"DEBUG level", DEBUG, "DEBUG"},
		{"INFO level", INFO, "INFO"},
		{"WARN level", WARN, "WARN"},
		{"ERROR level", ERROR, "ERROR"},
		{"Unknown level", LogLevel(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.level.String()
			if result != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  LogLevel
		wantError bool
	}{
		{"Parse DEBUG", "DEBUG", DEBUG, false},
		{"Parse debug lowercase", "debug", DEBUG, false},
		{"Parse TRACE as DEBUG", "TRACE", DEBUG, false},
		{"Parse INFO", "INFO", INFO, false},
		{"Parse WARN", "WARN", WARN, false},
		{"Parse WARNING", "WARNING", WARN, false},
		{"Parse ERROR", "ERROR", ERROR, false},
		{"Parse invalid", "INVALID", INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantError {
				t.Errorf("ParseLevel() error = %v, wantError %v", err, tt.wantError)
			}
			if !tt.wantError && result != tt.expected {
				t.Errorf("ParseLevel() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if logger.GetLevel() != INFO {
		t.Errorf("Default level = %v, want %v", logger.GetLevel(), INFO)
	}
	if logger.mode != "" {
		t.Errorf("Default mode = %v, want empty string", logger.mode)
	}
	if logger.fields == nil {
		t.Error("Fields map not initialized")
	}
}

func TestLogger_WithFields(t *testing.T) {
	logger := New()

	newLogger := logger.WithFields("key1", "value1", "key2", 123, "key3", true)

	if newLogger == logger {
		t.Error("WithFields should return new logger instance")
	}
	if len(newLogger.fields) != 3 {
		t.Errorf("Expected 3 fields, got %d", len(newLogger.fields))
	}
	if newLogger.fields["key1"] != "value1" {
		t.Errorf("Field key1 = %v, want 'value1'", newLogger.fields["key1"])
	}
	if len(logger.fields) != 0 {
		t.Error("WithFields must not modify the parent logger")
	}

	// odd number of arguments drops the dangling key
	oddLogger := logger.WithFields("key1", "value1", "key2")
	if len(oddLogger.fields) != 1 {
		t.Errorf("Expected 1 field with odd args, got %d", len(oddLogger.fields))
	}
}

func TestLogger_WithMode(t *testing.T) {
	logger := New().WithField("existing", "field")

	newLogger := logger.WithMode("worker")

	if newLogger.mode != "worker" {
		t.Errorf("Mode = %v, want 'worker'", newLogger.mode)
	}
	if newLogger.fields["existing"] != "field" {
		t.Error("WithMode should preserve existing fields")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  INFO,
		Output: &buf,
	})

	logger.Debug("debug message")
	if buf.Len() > 0 {
		t.Error("DEBUG message logged when level is INFO")
	}

	for _, logFn := range []func(string, ...interface{}){logger.Info, logger.Warn, logger.Error} {
		buf.Reset()
		logFn("visible message")
		if !strings.Contains(buf.String(), "visible message") {
			t.Errorf("message not logged at level INFO: %q", buf.String())
		}
	}
}

func TestLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  DEBUG,
		Output: &buf,
		Mode:   "test",
	})

	logger.Info("with fields", "key1", "value1", "key2", 42)
	output := buf.String()

	for _, want := range []string{"level=info", `msg="with fields"`, "key1=value1", "key2=42", "mode=test"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output %q missing %q", output, want)
		}
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  INFO,
		Output: &buf,
		Format: "json",
	})

	logger.WithField("component", "grpc-server").Error("call failed", "error", testError("boom"), "elapsed", time.Second)

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if line["msg"] != "call failed" {
		t.Errorf("msg = %v", line["msg"])
	}
	if line["component"] != "grpc-server" {
		t.Errorf("component = %v", line["component"])
	}
	if line["error"] != "boom" {
		t.Errorf("error = %v, want flattened message", line["error"])
	}
	if line["elapsed"] != "1s" {
		t.Errorf("elapsed = %v, want 1s", line["elapsed"])
	}
}

func TestLogger_WithFieldsPersistence(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  INFO,
		Output: &buf,
	})

	contextLogger := logger.WithFields("request_id", "123", "user", "alice")

	buf.Reset()
	contextLogger.Info("first message")
	firstOutput := buf.String()

	buf.Reset()
	contextLogger.Info("second message")
	secondOutput := buf.String()

	for _, output := range []string{firstOutput, secondOutput} {
		if !strings.Contains(output, "request_id=123") {
			t.Error("Persistent field request_id missing")
		}
		if !strings.Contains(output, "user=alice") {
			t.Error("Persistent field user missing")
		}
	}
}

func TestLogger_SetLevelSharedWithChildren(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  ERROR,
		Output: &buf,
	})
	child := logger.WithField("component", "child")

	child.Info("should not appear")
	if buf.Len() > 0 {
		t.Error("INFO logged when level is ERROR")
	}

	logger.SetLevel(INFO)
	child.Info("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Error("child logger did not pick up the new level")
	}
}

func TestLogger_IsLevelEnabled(t *testing.T) {
	tests := []struct {
		name         string
		loggerLevel  LogLevel
		debugEnabled bool
		infoEnabled  bool
	}{
		{"Level DEBUG", DEBUG, true, true},
		{"Level INFO", INFO, false, true},
		{"Level WARN", WARN, false, false},
		{"Level ERROR", ERROR, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New()
			logger.SetLevel(tt.loggerLevel)

			if logger.IsDebugEnabled() != tt.debugEnabled {
				t.Errorf("IsDebugEnabled() = %v, want %v", logger.IsDebugEnabled(), tt.debugEnabled)
			}
			if logger.IsInfoEnabled() != tt.infoEnabled {
				t.Errorf("IsInfoEnabled() = %v, want %v", logger.IsInfoEnabled(), tt.infoEnabled)
			}
		})
	}
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetGlobalMode("global-test")
	SetLevel(DEBUG)

	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")

	if !strings.Contains(buf.String(), "mode=global-test") {
		t.Errorf("global logger output missing mode: %q", buf.String())
	}
	if WithFields("key", "value") == nil || WithField("id", "123") == nil || WithMode("test-mode") == nil {
		t.Error("global constructors returned nil")
	}
}

type testError string

func (e testError) Error() string {
	return string(e)
}
