package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText renders the difference between two texts one line per
// output line, prefixed by "-", "+" or " ". Texts without newlines are
// compared character by character with changes marked inline as
// [-removed-] and {+added+}.
func DiffText(from, to string) string {
	dmp := diffpatch.New()
	if !strings.Contains(from, "\n") && !strings.Contains(to, "\n") {
		diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
		var b strings.Builder
		for _, d := range diffs {
			switch d.Type {
			case diffpatch.DiffEqual:
				b.WriteString(d.Text)
			case diffpatch.DiffDelete:
				b.WriteString("[-" + d.Text + "-]")
			case diffpatch.DiffInsert:
				b.WriteString("{+" + d.Text + "+}")
			}
		}
		return b.String()
	}
	a, bb, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, bb, false), lines)
	var b strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			b.WriteString(prefix + ln)
			if !strings.HasSuffix(ln, "\n") {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
