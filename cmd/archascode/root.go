package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eugenedong/arch-as-code/errors"
	"github.com/eugenedong/arch-as-code/fs"
)

// errValidationFailed is returned after validation errors have been reported.
var errValidationFailed = errors.New(errors.CodeInvalidInput, "architecture update has validation errors")

// app carries what every command needs.
type app struct {
	// fs is the filesystem products and repositories are read from.
	fs fs.Filesystem

	// resolve maps a command line path to a path in fs.
	resolve func(string) (string, error)

	logger  *slog.Logger
	verbose bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "archascode",
		Short:         "Architecture as code: diff and validate C4 product architectures",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newDiffCmd(a),
		newAUCmd(a),
		newVersionCmd(),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "archascode "+version)
		},
	}
}
