package analysis

import (
	"slices"

	"github.com/yaklabco/syntree/pkg/config"
)

// ResolvedRule pairs a rule with its effective per-run settings.
type ResolvedRule struct {
	Rule     Rule
	Severity config.Severity
	AutoFix  bool
	Config   config.RuleConfig
}

// ResolveRules decides which rules run and at what severity, combining
// rule defaults, the config file, and CLI enable/disable overrides.
// CLI overrides win over config, config wins over rule defaults.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.All() {
		ruleCfg, hasCfg := config.RuleConfig{}, false
		if cfg != nil {
			ruleCfg, hasCfg = cfg.RuleFor(rule.ID(), rule.Name())
		}

		enabled := rule.DefaultEnabled()
		if hasCfg && ruleCfg.Enabled != nil {
			enabled = *ruleCfg.Enabled
		}
		if cfg != nil {
			if matchesRule(cfg.DisableRules, rule) {
				enabled = false
			}
			if matchesRule(cfg.EnableRules, rule) {
				enabled = true
			}
		}
		if !enabled {
			continue
		}

		// severity_default replaces the generic warning default; rules that
		// declare a stronger default (SY001 is always an error) keep it.
		severity := rule.DefaultSeverity()
		if cfg != nil && severity == config.SeverityWarning &&
			config.Severity(cfg.SeverityDefault).IsValid() {
			severity = config.Severity(cfg.SeverityDefault)
		}
		if hasCfg && ruleCfg.Severity != nil && config.Severity(*ruleCfg.Severity).IsValid() {
			severity = config.Severity(*ruleCfg.Severity)
		}

		autoFix := rule.CanFix()
		if hasCfg && ruleCfg.AutoFix != nil {
			autoFix = *ruleCfg.AutoFix
		}

		resolved = append(resolved, ResolvedRule{
			Rule:     rule,
			Severity: severity,
			AutoFix:  autoFix,
			Config:   ruleCfg,
		})
	}

	return resolved
}

func matchesRule(keys []string, rule Rule) bool {
	return slices.Contains(keys, rule.ID()) || slices.Contains(keys, rule.Name())
}
