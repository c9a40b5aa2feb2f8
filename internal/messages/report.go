package messages

// Report headings and line formats.
const (
	ReportTitle               = "Fermentation report"
	ReportParametersHeader    = "Parameters"
	ReportFinalStateHeaderFmt = "Final state (t = %.1f min)"
	ReportNoSamples           = "  No samples recorded."
	ReportAnalysisHeader      = "Analysis"
	ReportRowFmt              = "  %-22s %12.3f\n"
	ReportFindingFmt          = "  %s\n"
	ReportClassificationFmt   = "Classification: %s - %s\n"
	ReportCSVHeaderTime       = "t_min"
	ReportCSVWriteFailedFmt   = "write csv: %w"
	ReportCompareLabelFmt     = "%s (report)"
)
