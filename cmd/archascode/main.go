// Command archascode diffs and validates architecture-as-code products.
//
// Usage:
//
//	archascode diff <product-dir> [-b branch] [-f text|json]
//	archascode au new <name> <product-dir>
//	archascode au validate <au-file> <product-dir> [-b branch] [-t] [-s]
//	archascode au annotate <au-file> <product-dir>
//	archascode au stories <au-file>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/eugenedong/arch-as-code/errors"
	"github.com/eugenedong/arch-as-code/fs/billy"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		fs:      billy.NewOSFS("/"),
		resolve: hostPath,
	}

	err := newRootCmd(a).ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exitCode(err))
	}
}

// hostPath maps a command line path to a path on the filesystem rooted at "/".
func hostPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidInput, "invalid path "+p)
	}
	rel := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if rel == "" {
		rel = "."
	}
	return rel, nil
}

// exitCode is 1 for validation failures and 2 for anything that stopped a
// command from running.
func exitCode(err error) int {
	if errors.Is(err, errValidationFailed) {
		return 1
	}
	return 2
}
