package wizard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/alsnogtix/simuladorFermentacao/internal/config"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

// parseNumber reads a field value typed by the user. Input is NFKC
// normalised, so full-width digits are accepted, and a decimal comma is
// read as a point. ok is false for blank input.
func parseNumber(label, raw string) (v float64, ok bool, err error) {
	s := strings.TrimSpace(norm.NFKC.String(raw))
	if s == "" {
		return 0, false, nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err = strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf(messages.ConfigFieldNotNumberFmt, label, raw)
	}
	return v, true, nil
}

// fieldValidator rejects values that do not parse or fall outside the
// field's editor range. Blank input is accepted and keeps the current value.
func fieldValidator(f config.FieldDef) func(string) error {
	return func(raw string) error {
		v, ok, err := parseNumber(f.Label, raw)
		if err != nil || !ok {
			return err
		}
		return f.CheckRange(v)
	}
}

// formatNumber renders v the way it is prefilled in the input.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
