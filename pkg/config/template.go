package config

// DefaultTemplate is the annotated config file written by "syntree init".
const DefaultTemplate = `# syntree configuration.
# Severity for rules that don't set their own: error, warning, or info.
severity_default: warning

# Maximum concurrent workers; 0 means one per CPU.
jobs: 0

# Glob patterns for files or directories to skip.
ignore: []
#  - "vendor/**"
#  - "**/*_generated.sy"

# Backups taken before --fix rewrites a file.
backups:
  enabled: false
  mode: sidecar

# Per-rule settings, keyed by rule ID or name.
rules: {}
#  SY004:
#    severity: error
#    options:
#      max_depth: 4
#  no-trailing-whitespace:
#    enabled: false
`
