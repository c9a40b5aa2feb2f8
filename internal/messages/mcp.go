package messages

// MCP server messages.
const (
	McpServerName         = "fermento"
	McpRunServerFailedFmt = "run mcp tool server: %w"
	McpRunnerNil          = "tool server runner is nil"
	McpToolEvaluate       = "evaluate"
	McpToolEvaluateDesc   = "Evaluates the fermentation state of a dough at a given time in minutes"
	McpToolPredict        = "predict"
	McpToolPredictDesc    = "Predicts the final state of a dough and classifies the expected outcome"
	McpToolClassify       = "classify"
	McpToolClassifyDesc   = "Classifies a fermentation state as DANGER, EXCELLENT, MODERATE or SLOW"
	McpToolSimulate       = "simulate"
	McpToolSimulateDesc   = "Runs a full simulation and returns its summary, analysis and classification"
	McpInvalidTimeFmt     = "t_min must be finite and >= 0, got %g"
	McpInvalidFlourFmt    = "flour_g must be > 0, got %g"
	McpDurationTooLongFmt = "simulate accepts duration_min up to %g, got %g"
)
