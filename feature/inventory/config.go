package inventory

// Config holds configuration for the inventory sync pass.
type Config struct {
	// IntervalSeconds is the minimum pause between two product checks,
	// respecting the upstream service's implicit rate limits.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"1"`
	// ReportPrefix is the object key prefix for archived run reports.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
}
