package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDebug_DisabledInProduction(t *testing.T) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(log.DebugLevel)

	appLogger := &AppLogger{
		logger: logger,
		debug:  false, // Production mode
	}

	appLogger.Debug("debug message that should not appear")

	output := buf.String()
	if strings.Contains(output, "debug message that should not appear") {
		t.Errorf("Expected debug message to be suppressed in production mode, got: %s", output)
	}
}

func TestDebugObject(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.DebugObject("snapshot", struct{ Products int }{Products: 3})

	output := buf.String()
	if !strings.Contains(output, "Object dump") {
		t.Errorf("Expected log output to contain 'Object dump', got: %s", output)
	}
	if !strings.Contains(output, "snapshot") {
		t.Errorf("Expected log output to contain object name, got: %s", output)
	}
}

func TestLogPerformance(t *testing.T) {
	logger, buf := NewTestLogger()

	start := time.Now().Add(-50 * time.Millisecond)
	logger.LogPerformance("resolve query", start)

	output := buf.String()
	if !strings.Contains(output, "Performance") {
		t.Errorf("Expected log output to contain 'Performance', got: %s", output)
	}
	if !strings.Contains(output, "resolve query") {
		t.Errorf("Expected log output to contain the operation name, got: %s", output)
	}
}

func TestTestLoggerCapturesAllLevels(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.Info("info line")
	logger.Warn("warn line")
	logger.Error("error line")
	logger.Debug("debug line")

	output := buf.String()
	for _, want := range []string{"info line", "warn line", "error line", "debug line"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected log output to contain %q, got: %s", want, output)
		}
	}
}
