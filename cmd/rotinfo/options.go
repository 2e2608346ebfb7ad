package main

// ReportConfig controls how rotations are computed and printed.
type ReportConfig struct {
	// Precision is 64 for DQuat/DVec3 or 32 for Quat/Vec3.
	Precision int
	// Degrees selects degrees for angle input and output.
	Degrees bool
}

// ReportOption mutates a ReportConfig.
type ReportOption func(*ReportConfig)

// DefaultReportConfig returns double precision with angles in degrees.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Precision: 64,
		Degrees:   true,
	}
}

// WithPrecision selects 32 or 64 bit arithmetic. Other values are ignored.
func WithPrecision(bits int) ReportOption {
	return func(cfg *ReportConfig) {
		if bits == 32 || bits == 64 {
			cfg.Precision = bits
		}
	}
}

// WithDegrees selects degrees (true) or radians (false) for angles.
func WithDegrees(degrees bool) ReportOption {
	return func(cfg *ReportConfig) {
		cfg.Degrees = degrees
	}
}

// ApplyReportOptions applies zero or more options to the default config.
func ApplyReportOptions(opts ...ReportOption) ReportConfig {
	cfg := DefaultReportConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg ReportConfig) precisionLabel() string {
	if cfg.Precision == 32 {
		return "f32"
	}
	return "f64"
}
