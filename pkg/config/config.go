// Package config defines core configuration types for syntree.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid reports whether the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure for syntree.
type Config struct {
	// SeverityDefault is the default severity for rules that don't
	// specify one.
	SeverityDefault string `yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups"`

	// Jobs is the maximum number of concurrent workers (0 = auto).
	Jobs int `yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `yaml:"-"`

	// DryRun shows what would be fixed without writing anything.
	DryRun bool `yaml:"-"`

	// Strict treats warnings as errors for the exit code.
	Strict bool `yaml:"-"`

	// EnableRules force-enables the named rules for this run.
	EnableRules []string `yaml:"-"`

	// DisableRules force-disables the named rules for this run.
	DisableRules []string `yaml:"-"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    "sidecar",
		},
	}
}

// RuleFor returns the configuration for a rule, looked up by ID first
// and then by name.
func (c *Config) RuleFor(id, name string) (RuleConfig, bool) {
	if c == nil || c.Rules == nil {
		return RuleConfig{}, false
	}
	if rc, ok := c.Rules[id]; ok {
		return rc, true
	}
	rc, ok := c.Rules[name]
	return rc, ok
}
