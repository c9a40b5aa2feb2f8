// Package doctor runs the setup checks behind the doctor command.
package doctor

// Status is the outcome of one check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of the doctor report.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
