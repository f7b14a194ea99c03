package dynaudnorm

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
)

// SubmitResult is the collector's acknowledgement of a report.
type SubmitResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Reporter sends reports to a diagnostics collector over HTTP.
type Reporter struct {
	cfg    ReporterConfig
	logger *slog.Logger
}

func NewReporter(cfg ReporterConfig) (*Reporter, error) {
	cfg.setDefaults()
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	return &Reporter{cfg: cfg, logger: cfg.Logger}, nil
}

// Submit POSTs the report as JSON. Any non-2xx status is an
// ErrInvalidServerResponse.
func (r *Reporter) Submit(ctx context.Context, report *Report) (*SubmitResult, error) {
	var result SubmitResult
	if err := r.postJSON(ctx, report, &result); err != nil {
		return nil, fmt.Errorf("submit report: %w", err)
	}
	r.logger.Info("report submitted",
		slog.String("id", result.ID),
		slog.String("status", result.Status),
		slog.String("version", report.Version))
	return &result, nil
}

func (r *Reporter) postJSON(ctx context.Context, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "go-dynaudnorm/"+CurrentVersion().String())

	resp, err := r.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrInvalidServerResponse, resp.StatusCode)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidServerResponse, err)
	}
	return nil
}
