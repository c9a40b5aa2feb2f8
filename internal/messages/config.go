package messages

// Config messages for loading and validating fermento.toml.
const (
	ConfigDefaultFileName = "fermento.toml"

	ConfigMissingFileFmt      = "missing config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "config %s contains unrecognized keys: %v."
	ConfigValidationGuidance  = "Run 'fermento wizard' or 'fermento init --force' to repair the file."
	ConfigResolvePathFmt      = "resolve config path %s: %w"
	ConfigWriteFailedFmt      = "write config %s: %w"
	ConfigEncodeFailedFmt     = "encode config: %w"

	ConfigDoughInvalidFmt    = "%s: dough: %w"
	ConfigSpeedInvalidFmt    = "%s: simulation.speed must be > 0, got %g"
	ConfigTickInvalidFmt     = "%s: simulation.tick_ms must be > 0, got %d"
	ConfigUnknownFieldFmt    = "unknown parameter %q"
	ConfigFieldOutOfRangeFmt = "%s must be between %g and %g, got %g"
	ConfigFieldNotNumberFmt  = "%s: %q is not a number"
)

// Parameter labels shown by the wizard and reports.
const (
	FieldFlourLabel       = "Flour"
	FieldWaterLabel       = "Water"
	FieldTemperatureLabel = "Temperature"
	FieldSugarLabel       = "Sugar"
	FieldSaltLabel        = "Salt"
	FieldDurationLabel    = "Time"

	FieldFlourUnit       = "g"
	FieldWaterUnit       = "fraction"
	FieldTemperatureUnit = "°C"
	FieldSugarUnit       = "g"
	FieldSaltUnit        = "g"
	FieldDurationUnit    = "min"
)
