package main

import (
	"github.com/spf13/cobra"

	"github.com/hrygo/eventtz/event"
	tzerrors "github.com/hrygo/eventtz/internal/errors"
	"github.com/hrygo/eventtz/scheduler/rrule"
)

func (a *app) newNowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current time in the forced timezone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.finish(a.write(cmd, newMomentView(a.ctx.Now())))
		},
	}
}

func (a *app) newParseCommand() *cobra.Command {
	var assume string

	cmd := &cobra.Command{
		Use:   "parse <datetime>",
		Short: "Parse an ISO-8601 datetime into the forced timezone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []event.NormalizeOption
			if assume != "" {
				opts = append(opts, event.AssumeTimezone(assume))
			}
			m, err := a.parseMoment(args[0], opts...)
			if err != nil {
				return a.finish(err)
			}
			return a.finish(a.write(cmd, newMomentView(m)))
		},
	}
	cmd.Flags().StringVar(&assume, "assume", "", "timezone that a datetime without offset is read in")
	return cmd
}

func (a *app) newConvertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <datetime>",
		Short: "Convert a datetime from the forced timezone into another",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parseMoment(args[0])
			if err != nil {
				return a.finish(err)
			}
			target, err := event.CreateContext(to, event.WithLogger(a.run.WithFields()))
			if err != nil {
				return a.finish(err)
			}
			converted, err := m.Convert(target)
			if err != nil {
				return a.finish(err)
			}
			return a.finish(a.write(cmd, newMomentView(converted)))
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target IANA timezone")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) newRangeCommand() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "range <datetime>",
		Short: "Print the start and end of the calendar unit containing a datetime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := event.ParseUnit(unit)
			if err != nil {
				return a.finish(err)
			}
			m, err := a.parseMoment(args[0])
			if err != nil {
				return a.finish(err)
			}
			start, err := m.StartOf(u)
			if err != nil {
				return a.finish(err)
			}
			end, err := m.EndOf(u)
			if err != nil {
				return a.finish(err)
			}
			return a.finish(a.write(cmd, rangeView{
				Unit:  string(u),
				Start: newMomentView(start),
				End:   newMomentView(end),
			}))
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "day", "calendar unit: second, minute, hour, day, week, month, quarter, year, decade or century")
	return cmd
}

func (a *app) newDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Print the difference between two datetimes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.parseMoment(args[0])
			if err != nil {
				return a.finish(err)
			}
			to, err := a.parseMoment(args[1])
			if err != nil {
				return a.finish(err)
			}
			iv := to.Diff(from)
			return a.finish(a.write(cmd, diffView{
				From:     from.String(),
				To:       to.String(),
				Duration: iv.Duration.String(),
				Invert:   iv.Invert,
				Days:     iv.Days,
				Hours:    iv.Hours,
				Minutes:  iv.Minutes,
				Seconds:  iv.Seconds,
				Human:    to.DiffForHumansFrom(from),
			}))
		},
	}
}

func (a *app) newRRuleCommand() *cobra.Command {
	var (
		start string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "rrule <rule>",
		Short: "Expand a recurrence rule in the forced timezone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := rrule.NewParser().Parse(args[0])
			if err != nil {
				return a.finish(tzerrors.Wrap(err, tzerrors.ErrCodeInvalidArgument, "invalid recurrence rule"))
			}
			dtstart, err := a.parseMoment(start)
			if err != nil {
				return a.finish(err)
			}
			gen, err := rrule.NewGenerator(rule, dtstart)
			if err != nil {
				return a.finish(err)
			}
			occurrences, err := gen.All(limit)
			if err != nil {
				return a.finish(err)
			}

			out := rruleView{Rule: rule.String(), Occurrences: make([]momentView, len(occurrences))}
			for i, o := range occurrences {
				out.Occurrences[i] = newMomentView(o)
			}
			return a.finish(a.write(cmd, out))
		},
	}
	cmd.Flags().StringVar(&start, "start", "now", "first occurrence (DTSTART)")
	cmd.Flags().IntVar(&limit, "max", 10, "maximum number of occurrences")
	return cmd
}
