package doctor

import (
	"fmt"

	"github.com/alsnogtix/simuladorFermentacao/internal/config"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

var loadOrDefaultFunc = config.LoadOrDefault

// CheckConfig loads the configuration at path. A missing file is a warning
// and yields the defaults; a file that fails to parse or validate is a
// failure and yields no config.
func CheckConfig(path string) ([]Result, *config.Config) {
	cfg, found, err := loadOrDefaultFunc(path)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	if !found {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigMissingFmt, path),
			Recommendation: messages.DoctorConfigMissingRecommend,
		}}, cfg
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
	}}, cfg
}

// CheckRanges reports every parameter outside its editor range.
func CheckRanges(d config.Dough) []Result {
	var results []Result
	for _, f := range config.Fields() {
		v := f.Get(d)
		if f.CheckRange(v) == nil {
			continue
		}
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameRanges,
			Message:        fmt.Sprintf(messages.DoctorRangeOutsideFmt, f.Key, v, f.Min, f.Max),
			Recommendation: messages.DoctorRangeOutsideRecommend,
		})
	}
	if len(results) == 0 {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameRanges,
			Message:   messages.DoctorRangesOK,
		})
	}
	return results
}

// CheckTerminal reports whether simulate can show the interactive view.
func CheckTerminal(interactive bool) Result {
	if interactive {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTerminal,
			Message:   messages.DoctorTerminalOK,
		}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNameTerminal,
		Message:        messages.DoctorTerminalHeadless,
		Recommendation: messages.DoctorTerminalRecommend,
	}
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
