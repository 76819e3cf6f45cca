package rules

import "github.com/yaklabco/syntree/pkg/analysis"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *analysis.Registry) {
	registry.Register(NewSyntaxErrorRule())        // SY001
	registry.Register(NewEmptyBlockRule())         // SY002
	registry.Register(NewConstantConditionRule())  // SY003
	registry.Register(NewMaxNestingRule())         // SY004
	registry.Register(NewTrailingWhitespaceRule()) // SY005
	registry.Register(NewEmptyStatementRule())     // SY006
}

//nolint:gochecknoinits // Importing the package registers the built-in rules
func init() {
	RegisterAll(analysis.DefaultRegistry)
}
