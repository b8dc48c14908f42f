package artifacts

// Config holds behaviour switches for the artifact operations.
type Config struct {
	// SuppressProbeErrors makes EnsureFolder treat a failed existence probe
	// (anything other than not-found) as "folder exists" instead of an error.
	SuppressProbeErrors bool `mapstructure:"suppress_probe_errors" default:"false"`
}
