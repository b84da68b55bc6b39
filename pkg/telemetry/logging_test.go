package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/nimbusworks/weatherd/pkg/config"
)

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("output %q is not JSON formatted", out)
	}
	if !strings.Contains(out, `"service":"weatherd"`) {
		t.Errorf("output %q is missing the service attribute", out)
	}
}

func TestSetupLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(config.LogConfig{Level: "info", Format: "text"}, &buf)

	logger.Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("output %q is not text formatted", buf.String())
	}
}

func TestSetupLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info line logged at warn level: %q", buf.String())
	}

	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("warn line missing: %q", buf.String())
	}
}

func TestSetupLoggerBadLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(config.LogConfig{Level: "nonsense", Format: "json"}, &buf)

	logger.Debug("quiet")
	if buf.Len() != 0 {
		t.Errorf("debug line logged at default level: %q", buf.String())
	}

	logger.Info("loud")
	if buf.Len() == 0 {
		t.Error("info line suppressed at default level")
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Error("FromContext did not return the stored logger")
	}
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext returned nil without a stored logger")
	}
}

func TestInitTracerDisabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), config.TracingConfig{}, "test")
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}
