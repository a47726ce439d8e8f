package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tartampluch/chicago-today/internal/config"
	"github.com/tartampluch/chicago-today/internal/engine"
	"github.com/tartampluch/chicago-today/internal/locale"
)

// Deps carries everything a run touches outside the process.
type Deps struct {
	Resolver  *engine.Resolver
	Stdout    io.Writer
	Stderr    io.Writer
	LookupEnv func(string) (string, bool)
}

// Execute runs the command against the real process and returns the exit code.
func Execute() int {
	return Run(Deps{
		Resolver:  engine.NewResolver(),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
	}, os.Args[1:])
}

// Run executes the root command with args. Diagnostics go to deps.Stderr.
func Run(deps Deps, args []string) int {
	if deps.Resolver == nil {
		deps.Resolver = engine.NewResolver()
	}
	if deps.Stdout == nil {
		deps.Stdout = io.Discard
	}
	if deps.Stderr == nil {
		deps.Stderr = io.Discard
	}
	if deps.LookupEnv == nil {
		deps.LookupEnv = func(string) (string, bool) { return "", false }
	}

	r := &runner{deps: deps, log: discardLogger()}
	cmd := r.newRootCmd()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		r.report(err)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

type runner struct {
	deps  Deps
	log   *slog.Logger
	debug bool
}

func (r *runner) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         config.AppShort,
		Long:          config.AppLong,
		Version:       config.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			r.log = setupLogging(r.deps.Stderr, r.debug)
			r.deps.Resolver.Logger = r.log
			logStartupInfo(r.log)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.printToday(cmd.OutOrStdout())
		},
	}

	cmd.SetOut(r.deps.Stdout)
	cmd.SetErr(r.deps.Stderr)
	cmd.SetVersionTemplate(config.VersionString())

	cmd.Flags().Bool(config.FlagVersion, false, config.FlagDescVersion)
	cmd.PersistentFlags().BoolVar(&r.debug, config.FlagDebug, false, config.FlagDescDebug)
	return cmd
}

func (r *runner) printToday(w io.Writer) error {
	today, err := r.deps.Resolver.Today()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, today.String()); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}

// report prints a one-line localized diagnostic for err.
func (r *runner) report(err error) {
	r.log.Error(config.ErrAppFailed,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyError, err,
	)

	msg := err.Error()
	tr, terr := locale.NewTranslator(locale.Detect(r.deps.LookupEnv, r.log), r.log)
	if terr != nil {
		r.log.Warn(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyError, terr,
		)
	} else if ze, ok := engine.IsZoneError(err); ok {
		cause := config.ErrZoneResolution
		if ze.Err != nil {
			cause = ze.Err.Error()
		}
		msg = tr.Msg(config.TKeyErrZone, map[string]any{
			config.TDataZone:  ze.Zone,
			config.TDataCause: cause,
		})
	} else {
		msg = tr.Msg(config.TKeyErrCommand, map[string]any{
			config.TDataCause: err.Error(),
		})
	}

	_, _ = fmt.Fprintf(r.deps.Stderr, config.DiagnosticF, config.AppName, msg)
}
