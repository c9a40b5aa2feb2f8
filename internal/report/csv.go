package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/simulation"
)

// WriteCSV writes the trajectory with a t_min column followed by the
// eight readings in canonical order.
func WriteCSV(w io.Writer, run *simulation.Run) error {
	cw := csv.NewWriter(w)
	header := []string{messages.ReportCSVHeaderTime}
	for _, q := range kinetics.Quantities {
		header = append(header, q.String())
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf(messages.ReportCSVWriteFailedFmt, err)
	}
	for _, pt := range run.Points() {
		row := []string{formatFloat(pt.TMin)}
		for _, v := range pt.State.Values() {
			row = append(row, formatFloat(v))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf(messages.ReportCSVWriteFailedFmt, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf(messages.ReportCSVWriteFailedFmt, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
