package main

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrygo/eventtz/event"
	tzerrors "github.com/hrygo/eventtz/internal/errors"
	"github.com/hrygo/eventtz/internal/observability"
	"github.com/hrygo/eventtz/internal/profile"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	profile *profile.Profile
	ctx     *event.Context
	run     *observability.RunContext
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "eventtz",
		Short:         "Timezone-locked datetime toolkit",
		Long:          "eventtz parses, converts and compares datetimes that are always expressed in one forced timezone.",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringP("timezone", "z", "", "forced IANA timezone (env EVENTTZ_TIMEZONE, default UTC)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().String("mode", "", `mode, "prod" or "dev"`)

	for _, name := range []string{"timezone", "output", "log-level", "log-format", "mode"} {
		if err := a.v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	a.v.SetEnvPrefix("eventtz")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(
		a.newNowCommand(),
		a.newParseCommand(),
		a.newConvertCommand(),
		a.newRangeCommand(),
		a.newDiffCommand(),
		a.newRRuleCommand(),
	)
	return rootCmd
}

// setup builds the profile, the logger and the forced-timezone context.
func (a *app) setup(cmd *cobra.Command) error {
	p := &profile.Profile{
		Mode:      a.v.GetString("mode"),
		Timezone:  a.v.GetString("timezone"),
		LogLevel:  a.v.GetString("log-level"),
		LogFormat: a.v.GetString("log-format"),
		Output:    a.v.GetString("output"),
		Version:   version,
	}
	p.FromEnv()
	if p.IsDev() && a.v.GetString("log-level") == "" {
		p.LogLevel = "debug"
	}
	if err := p.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	a.profile = p

	logger, err := observability.NewLogger(cmd.ErrOrStderr(), p.LogLevel, p.LogFormat)
	if err != nil {
		return err
	}
	a.run = observability.NewRunContext(logger, cmd.Name(), p.Timezone)

	a.ctx, err = event.CreateContext(p.Timezone, event.WithLogger(a.run.WithFields()))
	if err != nil {
		return err
	}
	a.run.Debug("eventtz started", slog.String("version", p.Version), slog.String("mode", p.Mode))
	return nil
}

// finish logs the outcome of a subcommand and passes err through.
func (a *app) finish(err error) error {
	if err != nil {
		code := tzerrors.GetCodeFromError(err, "")
		a.run.Error("command failed", err,
			slog.String(observability.LogFieldErrorCode, string(code)),
			slog.Int64(observability.LogFieldDuration, a.run.DurationMs()))
		return err
	}
	a.run.Debug("command finished", slog.Int64(observability.LogFieldDuration, a.run.DurationMs()))
	return nil
}

// parseMoment reads an ISO-8601 argument, or "now", in the forced timezone.
func (a *app) parseMoment(s string, opts ...event.NormalizeOption) (event.Moment, error) {
	if strings.EqualFold(strings.TrimSpace(s), "now") {
		return a.ctx.Now(), nil
	}
	return a.ctx.FromISOFormat(s, opts...)
}
