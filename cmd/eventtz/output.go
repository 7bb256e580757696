package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hrygo/eventtz/event"
)

// view is a command result that can also render itself as plain text.
type view interface {
	text() string
}

type momentView struct {
	Time         string  `json:"time" yaml:"time"`
	Timezone     string  `json:"timezone" yaml:"timezone"`
	Abbreviation string  `json:"abbreviation" yaml:"abbreviation"`
	OffsetHours  float64 `json:"offset_hours" yaml:"offset_hours"`
	Unix         int64   `json:"unix" yaml:"unix"`
	Relative     string  `json:"relative" yaml:"relative"`
}

func newMomentView(m event.Moment) momentView {
	return momentView{
		Time:         m.Format(time.RFC3339Nano),
		Timezone:     m.TimezoneName(),
		Abbreviation: m.Abbreviation(),
		OffsetHours:  m.OffsetHours(),
		Unix:         m.Unix(),
		Relative:     m.DiffForHumans(),
	}
}

func (v momentView) text() string {
	return fmt.Sprintf("%s %s (%s)", v.Time, v.Timezone, v.Abbreviation)
}

type rangeView struct {
	Unit  string     `json:"unit" yaml:"unit"`
	Start momentView `json:"start" yaml:"start"`
	End   momentView `json:"end" yaml:"end"`
}

func (v rangeView) text() string {
	return v.Start.text() + "\n" + v.End.text()
}

type diffView struct {
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Duration string `json:"duration" yaml:"duration"`
	Invert   bool   `json:"invert" yaml:"invert"`
	Days     int    `json:"days" yaml:"days"`
	Hours    int    `json:"hours" yaml:"hours"`
	Minutes  int    `json:"minutes" yaml:"minutes"`
	Seconds  int    `json:"seconds" yaml:"seconds"`
	Human    string `json:"human" yaml:"human"`
}

func (v diffView) text() string {
	return fmt.Sprintf("%s (%dd %dh %dm %ds, %s)", v.Duration, v.Days, v.Hours, v.Minutes, v.Seconds, v.Human)
}

type rruleView struct {
	Rule        string       `json:"rule" yaml:"rule"`
	Occurrences []momentView `json:"occurrences" yaml:"occurrences"`
}

func (v rruleView) text() string {
	lines := make([]string, len(v.Occurrences))
	for i, o := range v.Occurrences {
		lines[i] = o.text()
	}
	return strings.Join(lines, "\n")
}

// write renders v in the configured output format.
func (a *app) write(cmd *cobra.Command, v view) error {
	w := cmd.OutOrStdout()

	switch a.profile.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, v.text())
		return err
	}
}
