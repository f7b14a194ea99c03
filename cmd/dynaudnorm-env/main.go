// Command dynaudnorm-env prints and checks the build environment
// fingerprint of the Dynamic Audio Normalizer library.
//
// Release builds run "dynaudnorm-env check" with the target's compiler
// identity before producing artifacts, so an unsupported toolchain stops
// the build instead of yielding a binary with a wrong label.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var verbose bool
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	root := &cobra.Command{
		Use:   "dynaudnorm-env",
		Short: "Show the build environment of the Dynamic Audio Normalizer",
		Long: `dynaudnorm-env reports the library version, compiler, target architecture
and build timestamp baked into this binary, and checks compiler identities
against the supported allow-list.

Examples:
  dynaudnorm-env version
  dynaudnorm-env about --format json
  dynaudnorm-env check --family msvc --version 1910 --full-version 191025017
  dynaudnorm-env check --family gnu --gnu 7.1.0 --goarch 386
  dynaudnorm-env submit --endpoint https://diag.example.com/api/v1/reports`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newVersionCmd(),
		newAboutCmd(logger),
		newCheckCmd(logger),
		newSubmitCmd(logger),
	)
	return root
}
