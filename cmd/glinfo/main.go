package main

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/polyfloyd/glinfo"
	"github.com/polyfloyd/glinfo/platform"
)

// Version is set via -ldflags.
var Version = "dev"

type platformFunc func(name string, logger *log.Logger) (glinfo.Platform, error)

func main() {
	// Lock this goroutine to the current thread. This is required because
	// OpenGL contexts are bound to threads.
	runtime.LockOSThread()

	if err := fang.Execute(
		context.Background(),
		newRootCommand(platform.New),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(newPlatform platformFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glinfo",
		Short: "Show information about the OpenGL driver",
		Long: `glinfo creates a minimal OpenGL context and prints the vendor, renderer and
version strings of the driver along with the extensions it supports.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(cmd, viper.New())
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.debug)

			p, err := newPlatform(opts.backend, logger)
			if err != nil {
				return err
			}
			res, err := run(opts, p, logger)
			if err != nil {
				for _, hint := range errors.GetAllHints(err) {
					logger.Info(hint)
				}
				return err
			}
			printReport(cmd.OutOrStdout(), opts, res)
			return nil
		},
	}
	addFlags(cmd)
	return cmd
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "glinfo",
		Level:  level,
	})
}

// run performs a single query pass. The context is destroyed before this
// function returns, the result does not depend on it.
func run(opts options, p glinfo.Platform, logger *log.Logger) (result, error) {
	engine, err := glinfo.New(opts.profile, p)
	if err != nil {
		return result{}, err
	}
	defer func() {
		// The context is already destroyed when the query succeeded, this
		// only fails while unwinding an earlier error.
		if err := engine.Shutdown(); err != nil {
			logger.Debug("Could not shut down cleanly", "err", err)
		}
	}()

	if err := engine.CreateContext(); err != nil {
		return result{}, err
	}
	if err := engine.Query(); err != nil {
		return result{}, errors.Wrap(err, "could not fetch OpenGL information")
	}

	res := result{snapshot: engine.Snapshot()}
	for _, ext := range opts.checks {
		res.checks = append(res.checks, check{extension: ext, supported: engine.Supported(ext)})
	}

	if err := engine.DestroyContext(); err != nil {
		return result{}, errors.Wrap(err, "could not destroy OpenGL context")
	}
	return res, nil
}
