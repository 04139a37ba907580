package assessor

// Config holds runtime settings for the assessor.
type Config struct {
	// ScoringVersion is reported with every result so stored scores can be
	// traced back to the weight table that produced them.
	ScoringVersion string `json:"scoring_version"`
}

// DefaultConfig returns the config used when none is supplied.
func DefaultConfig() *Config {
	return &Config{ScoringVersion: "heuristic-v1"}
}
