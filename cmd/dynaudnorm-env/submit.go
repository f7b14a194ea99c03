package main

import (
	"fmt"
	"log/slog"
	"time"

	dynaudnorm "github.com/iwen-conf/go-dynaudnorm"
	"github.com/spf13/cobra"
)

func newSubmitCmd(logger *slog.Logger) *cobra.Command {
	var (
		endpoint string
		timeout  time.Duration
		noHost   bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send the about report to a diagnostics collector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter, err := dynaudnorm.NewReporter(dynaudnorm.ReporterConfig{
				Endpoint: endpoint,
				Timeout:  timeout,
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			report, err := dynaudnorm.CollectReport(cmd.Context(), dynaudnorm.ReportConfig{
				SkipHost: noHost,
				Logger:   logger,
			})
			if err != nil {
				return fmt.Errorf("collect report: %w", err)
			}
			result, err := reporter.Submit(cmd.Context(), report)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "submitted %s (%s)\n", result.ID, result.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Collector URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	cmd.Flags().BoolVar(&noHost, "no-host", false, "Omit host information")
	return cmd
}
