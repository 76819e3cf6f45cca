package edit

import (
	"fmt"
	"strings"
)

// DiffLineKind indicates the type of a diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line added in the modified version.
	DiffLineAdd

	// DiffLineRemove is a line removed from the original version.
	DiffLineRemove
)

// DiffLine is a single line in a diff hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffHunk is one hunk in a unified diff.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// Diff is a unified diff between original and modified content.
type Diff struct {
	Path      string
	Hunks     []DiffHunk
	Additions int
	Deletions int
}

// contextLines is the number of context lines shown around changes.
const contextLines = 3

// GenerateDiff creates a unified diff between original and modified text.
// Returns nil if there are no changes.
func GenerateDiff(path, original, modified string) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)

	changed := false
	for _, op := range ops {
		if op.kind != DiffLineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{Path: path, Hunks: groupHunks(ops)}
	for _, hunk := range d.Hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				d.Additions++
			case DiffLineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n", path)
	fmt.Fprintf(&sb, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&sb, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&sb, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&sb, "-%s\n", line.Content)
			}
		}
	}

	return sb.String()
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type diffOp struct {
	kind    DiffLineKind
	content string
}

// diffOps builds the full diff operation sequence via an LCS table.
func diffOps(orig, mod []string) []diffOp {
	origLen, modLen := len(orig), len(mod)

	dp := make([][]int, origLen+1)
	for i := range dp {
		dp[i] = make([]int, modLen+1)
	}
	for i := 1; i <= origLen; i++ {
		for j := 1; j <= modLen; j++ {
			if orig[i-1] == mod[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	// Backtrack from the end, then reverse.
	var rev []diffOp
	i, j := origLen, modLen
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && orig[i-1] == mod[j-1]:
			rev = append(rev, diffOp{DiffLineContext, orig[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			rev = append(rev, diffOp{DiffLineAdd, mod[j-1]})
			j--
		default:
			rev = append(rev, diffOp{DiffLineRemove, orig[i-1]})
			i--
		}
	}

	ops := make([]diffOp, len(rev))
	for k, op := range rev {
		ops[len(rev)-1-k] = op
	}
	return ops
}

// groupHunks groups change runs into hunks with surrounding context,
// merging runs separated by at most 2*contextLines context lines.
func groupHunks(ops []diffOp) []DiffHunk {
	type span struct{ start, end int }

	var spans []span
	inChange := false
	start := 0
	for i, op := range ops {
		isChange := op.kind != DiffLineContext
		if isChange && !inChange {
			start = i
			inChange = true
		} else if !isChange && inChange {
			spans = append(spans, span{start, i})
			inChange = false
		}
	}
	if inChange {
		spans = append(spans, span{start, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []DiffHunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= contextLines*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, spans[i].start, spans[j-1].end))
		i = j
	}
	return hunks
}

func buildHunk(ops []diffOp, changeStart, changeEnd int) DiffHunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := DiffHunk{OriginalStart: 1, ModifiedStart: 1}
	for i := range start {
		if ops[i].kind != DiffLineAdd {
			hunk.OriginalStart++
		}
		if ops[i].kind != DiffLineRemove {
			hunk.ModifiedStart++
		}
	}

	for i := start; i < end; i++ {
		hunk.Lines = append(hunk.Lines, DiffLine{Kind: ops[i].kind, Content: ops[i].content})
		switch ops[i].kind {
		case DiffLineContext:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case DiffLineRemove:
			hunk.OriginalCount++
		case DiffLineAdd:
			hunk.ModifiedCount++
		}
	}
	return hunk
}
