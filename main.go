package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var version = "dev"

type exitCoder interface {
	ExitCode() int
}

type options struct {
	dir       string
	date      string
	logLevel  string
	extension string

	stdout io.Writer
	now    func() time.Time
}

// resolved is everything a command needs for one invocation.
type resolved struct {
	layout layout
	today  time.Time
	gen    *generator
}

func (o *options) resolve() (resolved, error) {
	dir, err := filepath.Abs(o.dir)
	if err != nil {
		return resolved{}, usageError(fmt.Errorf("resolve dir %q: %w", o.dir, err))
	}
	cfg, err := loadConfig(dir)
	if err != nil {
		return resolved{}, usageError(err)
	}
	l := cfg.apply(newLayout(dir))
	if o.extension != "" {
		l.Extension = o.extension
	}
	if err := l.validate(); err != nil {
		return resolved{}, usageError(err)
	}

	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	setupLogging(level)

	today, err := o.today()
	if err != nil {
		return resolved{}, err
	}
	withComponent("cli").Debug("resolved layout", "dir", l.Dir, "extension", l.Extension, "today", today.Format(dateLayout))
	return resolved{
		layout: l,
		today:  today,
		gen:    newGenerator(l, newConsoleReporter(o.stdout)),
	}, nil
}

func (o *options) today() (time.Time, error) {
	if o.date == "" {
		return o.now(), nil
	}
	return parseDateArg(o.date)
}

func parseDateArg(s string) (time.Time, error) {
	if !isDateStamp(s) {
		return time.Time{}, usageError(fmt.Errorf("invalid date %q: want YYYYMMDD", s))
	}
	day, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, usageError(fmt.Errorf("invalid date %q: %w", s, err))
	}
	return day, nil
}

func newRootCmd(stdout io.Writer, now func() time.Time) *cobra.Command {
	o := &options{stdout: stdout, now: now}
	cmd := &cobra.Command{
		Use:   "workreport",
		Short: "Archive past daily work reports and create today's from a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.resolve()
			if err != nil {
				return err
			}
			_, err = r.gen.run(r.today)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.dir, "dir", "C", ".", "Working directory holding the reports")
	pf.StringVar(&o.date, "date", "", "Treat this YYYYMMDD date as today")
	pf.StringVar(&o.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR")
	pf.StringVar(&o.extension, "extension", "", "Report file extension, e.g. .txt or .md")

	cmd.AddCommand(
		newInitCmd(o),
		newNewCmd(o),
		newArchiveCmd(o),
		newConfigCmd(o),
		newHeadingsCmd(o),
		newDaysCmd(o),
		newVersionCmd(o),
	)
	return cmd
}

func newInitCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate the template if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.resolve()
			if err != nil {
				return err
			}
			_, err = r.gen.ensureTemplate()
			return err
		},
	}
}

func newNewCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "new [YYYYMMDD]",
		Short: "Create the report for a date (default today) from the template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.resolve()
			if err != nil {
				return err
			}
			day := r.today
			if len(args) == 1 {
				if day, err = parseDateArg(args[0]); err != nil {
					return err
				}
			}
			_, err = r.gen.createReport(day, r.today)
			return err
		},
	}
}

func newArchiveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "archive [FILE...]",
		Short: "Archive past reports, or only the named files",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.resolve()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err := r.gen.archiveAll(r.today)
				return err
			}
			var errs []error
			for _, path := range args {
				if !filepath.IsAbs(path) {
					path = filepath.Join(r.layout.Dir, path)
				}
				if _, err := r.gen.archiveFile(path, r.today); err != nil && !errors.Is(err, ErrArchiveConflict) {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	}
}

func newConfigCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.resolve()
			if err != nil {
				return err
			}
			return encodeJSON(o.stdout, map[string]any{
				"layout":   r.layout,
				"template": r.layout.templatePath(),
				"archive":  r.layout.archiveRoot(),
				"today":    r.layout.reportPath(r.today),
			})
		},
	}
}

func newHeadingsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "headings [FILE]",
		Short: "List the markdown headings of a report (default today's)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.resolve()
			if err != nil {
				return err
			}
			file := r.layout.reportPath(r.today)
			if len(args) == 1 {
				file = args[0]
			}
			doc, err := parseFile(file)
			if err != nil {
				return err
			}
			for _, h := range headings(doc) {
				fmt.Fprintln(o.stdout, h)
			}
			return nil
		},
	}
}

func newDaysCmd(o *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "days",
		Short: "List the most recent reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.resolve()
			if err != nil {
				return err
			}
			reports, err := listReports(r.layout, r.today.Location())
			if err != nil {
				return err
			}
			if limit > 0 && len(reports) > limit {
				reports = reports[:limit]
			}
			for _, rep := range reports {
				rel, err := filepath.Rel(r.layout.Dir, rep.Path)
				if err != nil {
					rel = rep.Path
				}
				fmt.Fprintf(o.stdout, "%s  %s\n", rep.Day.Format("2006-01-02, Mon"), rel)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Number of reports to list (0 for all)")
	return cmd
}

func newVersionCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(o.stdout, "workreport %s\n", version)
			return err
		},
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func execute(args []string, stdout io.Writer, now func() time.Time) error {
	cmd := newRootCmd(stdout, now)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, time.Now); err != nil {
		// One line on stderr, no usage.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		fmt.Fprintln(os.Stderr, "Error:", msg)
		code := 1
		var ec exitCoder
		if errors.As(err, &ec) && ec.ExitCode() != 0 {
			code = ec.ExitCode()
		}
		os.Exit(code)
	}
}
