// Package messages centralizes user-facing text for the fermento CLI.
package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "fermento"
	// RootShort is the short description for the root command.
	RootShort = "Bread dough fermentation simulator"
	RootLong  = `Simulate the fermentation of a bread dough: yeast growth, sugar
consumption, CO₂ and ethanol production, dough rise, acidity and gluten
retention, from a recipe and a proofing temperature.`

	RootFlagConfig = "Path to the fermento.toml configuration file"
	RootFlagDebug  = "Write debug logs to stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagFlour    = "Flour mass in grams"
	FlagWater    = "Water as a fraction of the flour mass (0-1)"
	FlagTemp     = "Proofing temperature in °C"
	FlagSugar    = "Added sugar in grams"
	FlagSalt     = "Salt in grams"
	FlagDuration = "Fermentation time in minutes"

	// PredictUse is the predict command name.
	PredictUse      = "predict"
	PredictShort    = "Predict the dough state at the end of the fermentation"
	PredictFlagJSON = "Print the prediction as JSON"

	// SimulateUse is the simulate command name.
	SimulateUse          = "simulate"
	SimulateShort        = "Run the fermentation minute by minute"
	SimulateFlagHeadless = "Step the simulation without the interactive view and print a report"
	SimulateFlagCSV      = "Write the trajectory as CSV to this file (\"-\" for stdout)"
	SimulateFlagSpeed    = "Simulated minutes per tick (1, 2 or 5 in the interactive view)"
	SimulateNoTerminal   = "no interactive terminal detected; running headless"
	SimulateCSVOpenFmt   = "open csv output %s: %w"

	// CompareUse is the compare command usage.
	CompareUse   = "compare <a.toml> <b.toml>"
	CompareShort = "Compare the simulated outcome of two configurations"
	CompareSame  = "Both configurations produce the same report."

	// InitUse is the init command name.
	InitUse        = "init"
	InitShort      = "Write a default fermento.toml"
	InitFlagForce  = "Overwrite an existing configuration file"
	InitExistsFmt  = "%s already exists; re-run with --force to overwrite"
	InitWrittenFmt = "Wrote %s\n"

	// WizardUse is the wizard command name.
	WizardUse   = "wizard"
	WizardShort = "Edit the recipe interactively with a live prediction"

	// McpUse is the MCP server command name.
	McpUse   = "mcp"
	McpShort = "Serve the fermentation model as MCP tools over stdio"
)
