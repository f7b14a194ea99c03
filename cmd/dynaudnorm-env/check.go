package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	dynaudnorm "github.com/iwen-conf/go-dynaudnorm"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	family      string
	version     int
	fullVersion int
	gnu         string
	goVersion   string
	goarch      string
}

func newCheckCmd(logger *slog.Logger) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Classify a compiler identity and target; fail if unsupported",
		Long: `check classifies a compiler identity and GOARCH against the allow-list.
Without --family it checks the compiler that built this binary, so a cgo
build is classified by its own C compiler. A non-zero exit status means
the combination must not be built.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tc := dynaudnorm.Environment().Toolchain()
			if opts.family != "" {
				var err error
				if tc, err = opts.descriptor(); err != nil {
					return err
				}
			}
			fp, err := dynaudnorm.Resolve(tc, opts.goarch, dynaudnorm.Timestamp{})
			if err != nil {
				logger.Error("unsupported build environment",
					slog.String("family", tc.Family.String()),
					slog.String("goarch", opts.goarch),
					slog.Any("error", err))
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "compiler: %s\n", fp.Compiler())
			fmt.Fprintf(out, "arch: %s\n", fp.Architecture())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.family, "family", "", "Compiler family: icl, msvc, gnu or go")
	cmd.Flags().IntVar(&opts.version, "version", 0, "__INTEL_COMPILER or _MSC_VER value")
	cmd.Flags().IntVar(&opts.fullVersion, "full-version", 0, "_MSC_FULL_VER value")
	cmd.Flags().StringVar(&opts.gnu, "gnu", "", "GCC version as major.minor.patch")
	cmd.Flags().StringVar(&opts.goVersion, "go", runtime.Version(), "Go toolchain version, e.g. go1.24.1")
	cmd.Flags().StringVar(&opts.goarch, "goarch", runtime.GOARCH, "Target GOARCH")
	return cmd
}

func (o checkOptions) descriptor() (dynaudnorm.ToolchainDescriptor, error) {
	tc := dynaudnorm.ToolchainDescriptor{
		Family:      dynaudnorm.ParseFamily(o.family),
		Version:     o.version,
		FullVersion: o.fullVersion,
		GoVersion:   o.goVersion,
	}
	if tc.Family == dynaudnorm.FamilyGNU {
		major, minor, patch, err := parseTriple(o.gnu)
		if err != nil {
			return tc, fmt.Errorf("--gnu: %w", err)
		}
		tc.Major, tc.Minor, tc.Patch = major, minor, patch
	}
	return tc, nil
}

func parseTriple(s string) (major, minor, patch int, err error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want major.minor.patch, got %q", s)
	}
	var n [3]int
	for i, p := range parts {
		if n[i], err = strconv.Atoi(p); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid component %q in %q", p, s)
		}
	}
	return n[0], n[1], n[2], nil
}
