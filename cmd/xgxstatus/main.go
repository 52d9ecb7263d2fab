// Package main is the xgxstatus inspection tool: it lists the built-in
// condition tables, looks conditions up by name and translates errnos.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type app struct {
	out      io.Writer
	logLevel string
	log      *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:           "xgxstatus",
		Short:         "Inspect xgx-status domains",
		Long:          `xgxstatus prints the POSIX and Win32 condition tables, looks up single conditions and maps platform errnos onto the POSIX domain.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
			}
			a.log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.conditionsCmd(),
		a.lookupCmd(),
		a.errnoCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
