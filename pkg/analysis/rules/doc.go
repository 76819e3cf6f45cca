// Package rules contains the built-in syntree rules (SY001 and up).
// Each rule embeds analysis.BaseRule and registers itself with
// analysis.DefaultRegistry via init.
package rules
