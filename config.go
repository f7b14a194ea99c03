package dynaudnorm

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ReportConfig controls what CollectReport gathers beyond the build
// fingerprint.
type ReportConfig struct {
	// AppID scopes the protected machine ID so it cannot be correlated
	// with other applications on the same host.
	AppID       string
	HostTimeout time.Duration

	SkipHost       bool
	SkipMachineID  bool
	SkipBinaryHash bool

	Logger *slog.Logger
}

func (c *ReportConfig) setDefaults() {
	if c.AppID == "" {
		c.AppID = "dynaudnorm"
	}
	if c.HostTimeout == 0 {
		c.HostTimeout = 5 * time.Second
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
}

// ReporterConfig configures where crash and diagnostic reports are sent.
type ReporterConfig struct {
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (c *ReporterConfig) setDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
