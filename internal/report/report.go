// Package report renders finished simulation runs as text and CSV.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/alsnogtix/simuladorFermentacao/internal/config"
	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/simulation"
)

// Render returns the text report for run.
func Render(run *simulation.Run) string {
	var b strings.Builder
	_ = Write(&b, run)
	return b.String()
}

// Write renders the parameter table, the final readings, the post-run
// analysis and the live classification of the last state.
func Write(w io.Writer, run *simulation.Run) error {
	ew := &errWriter{w: w}
	ew.println(messages.ReportTitle)
	ew.println("")

	ew.println(messages.ReportParametersHeader)
	dough := config.DoughFromParams(run.Params())
	for _, f := range config.Fields() {
		ew.printf(messages.ReportRowFmt, f.Title(), f.Get(dough))
	}
	ew.println("")

	if last, ok := run.Latest(); ok {
		ew.println(fmt.Sprintf(messages.ReportFinalStateHeaderFmt, last.TMin))
		for _, q := range kinetics.Quantities {
			ew.printf(messages.ReportRowFmt, q.String(), last.State.Get(q))
		}
	} else {
		ew.println(messages.ReportNoSamples)
	}
	ew.println("")

	ew.println(messages.ReportAnalysisHeader)
	for _, f := range run.Analysis() {
		ew.printf(messages.ReportFindingFmt, f.String())
	}
	ew.println("")

	result := run.Classification()
	ew.printf(messages.ReportClassificationFmt, result.Category, result.Message)
	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(line string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, line)
}
