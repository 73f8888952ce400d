package main

import (
	"log/slog"
	"time"
)

// generator manages the reports of one working directory. It keeps no state
// between calls; the date is passed in by the caller.
type generator struct {
	layout layout
	out    reporter
	log    *slog.Logger
}

func newGenerator(l layout, out reporter) *generator {
	return &generator{
		layout: l,
		out:    out,
		log:    withComponent("generator").With("dir", l.Dir),
	}
}

type runSummary struct {
	Template templateResult
	Sweep    sweepResult
	Report   reportResult
}

func (g *generator) ensureTemplate() (templateResult, error) {
	res, err := ensureTemplate(g.layout)
	if err != nil {
		return res, err
	}
	if res.Created {
		g.out.templateCreated(res.Path)
	}
	return res, nil
}

// run provisions the template, archives past reports and then makes sure
// today's report exists. A failed sweep is reported and does not stop the
// report from being created; archived files are never rolled back.
func (g *generator) run(today time.Time) (runSummary, error) {
	var sum runSummary

	tmpl, err := g.ensureTemplate()
	if err != nil {
		return sum, err
	}
	sum.Template = tmpl

	sweep, err := g.archiveAll(today)
	if err != nil {
		g.log.Debug("archive sweep failed", "err", err)
		g.out.failed(g.layout.Dir, err)
	}
	sum.Sweep = sweep

	rep, err := g.createReport(today, today)
	if err != nil {
		return sum, err
	}
	sum.Report = rep
	return sum, nil
}
