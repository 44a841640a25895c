package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowSAN lists legal moves in SAN next to coordinate notation
	ShowSAN bool

	// LineLength wraps text move lists (0 = 80)
	LineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowSAN:    true,
		LineLength: 80,
	}
}
