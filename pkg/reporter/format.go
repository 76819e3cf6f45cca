package reporter

import (
	"fmt"
	"strings"
)

// Format selects the output renderer for check results.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatSARIF   Format = "sarif"
	FormatDiff    Format = "diff"
	FormatSummary Format = "summary"
)

// Formats lists every supported format in the order shown to users.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatSARIF, FormatDiff, FormatSummary}
}

// ParseFormat parses a format string. The empty string selects text so a
// missing --format flag behaves like the default.
func ParseFormat(formatStr string) (Format, error) {
	if formatStr == "" {
		return FormatText, nil
	}

	format := Format(strings.ToLower(formatStr))
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: %s", formatStr, formatNames())
	}
	return format, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}
	return false
}

func formatNames() string {
	names := make([]string, 0, len(Formats()))
	for _, format := range Formats() {
		names = append(names, string(format))
	}
	return strings.Join(names, ", ")
}
