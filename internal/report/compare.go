package report

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

// Compare returns a unified diff between two rendered reports, or an empty
// string when they match.
func Compare(nameA, reportA, nameB, reportB string) string {
	return strings.TrimSpace(udiff.Unified(
		fmt.Sprintf(messages.ReportCompareLabelFmt, nameA),
		fmt.Sprintf(messages.ReportCompareLabelFmt, nameB),
		reportA,
		reportB,
	))
}
