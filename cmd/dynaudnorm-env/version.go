package main

import (
	"fmt"
	"runtime"

	dynaudnorm "github.com/iwen-conf/go-dynaudnorm"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library version banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := dynaudnorm.Environment()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s, Version %s\n", dynaudnorm.LibraryName, env.Version())
			fmt.Fprintf(out, "Built on %s at %s with %s for %s-%s (%s).\n",
				env.BuildDate(), env.BuildTime(), env.Compiler(), env.Architecture(), env.BuildType(), runtime.Version())
			return nil
		},
	}
}
