package config

const (
	defaultOutputPath   = "answers.txt"
	defaultDataset      = "baseline"
	defaultAcceleration = 4.0
	defaultConfidence   = 0.95
)

// Config holds the settings of a single report run.
type Config struct {
	OutputPath   string
	Dataset      string
	Acceleration float64
	// Confidence is the interval level used for the cross-run summary.
	Confidence float64
}

func LoadConfig() Config {
	return Config{
		OutputPath:   defaultOutputPath,
		Dataset:      defaultDataset,
		Acceleration: defaultAcceleration,
		Confidence:   defaultConfidence,
	}
}
