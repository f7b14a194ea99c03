package main

import (
	"fmt"
	"io"
	"log/slog"

	dynaudnorm "github.com/iwen-conf/go-dynaudnorm"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newAboutCmd(logger *slog.Logger) *cobra.Command {
	var (
		format string
		noHost bool
		appID  string
	)

	cmd := &cobra.Command{
		Use:   "about",
		Short: "Print the full about report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := dynaudnorm.CollectReport(cmd.Context(), dynaudnorm.ReportConfig{
				AppID:    appID,
				SkipHost: noHost,
				Logger:   logger,
			})
			if err != nil {
				return fmt.Errorf("collect report: %w", err)
			}
			return writeReport(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&noHost, "no-host", false, "Omit host information")
	cmd.Flags().StringVar(&appID, "app-id", "", "Application ID used to scope the machine ID")
	return cmd
}

func writeReport(w io.Writer, report *dynaudnorm.Report, format string) error {
	switch format {
	case "json":
		return report.WriteJSON(w)
	case "yaml", "yml":
		return report.WriteYAML(w)
	case "text", "":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Field", "Value"})
		for _, f := range report.Fields() {
			t.AppendRow(table.Row{f.Name, f.Value})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
