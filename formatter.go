package spotlight

import (
	"fmt"
	"strings"
)

// FormatGroups renders grouped results for a terminal.
// Each group heading carries its count; the first result overall is marked
// as the Enter-key selection. Groups are separated by blank lines.
func FormatGroups(groups []*Group, showTranslation bool) string {
	if len(groups) == 0 {
		return ""
	}

	parts := make([]string, 0, len(groups))
	first := true
	for _, g := range groups {
		var b strings.Builder
		fmt.Fprintf(&b, "## %s (%d)", g.Title, g.Count())
		for _, r := range g.Results {
			b.WriteString("\n  ")
			b.WriteString(DisplayTitle(r, showTranslation))
			if tagged, ok := r.(Tagged); ok && len(tagged.Tags()) > 0 {
				b.WriteString(" [" + strings.Join(tagged.Tags(), ", ") + "]")
			}
			if first {
				b.WriteString("  [Enter]")
				first = false
			}
			if desc := DisplayDescription(r, showTranslation); desc != "" {
				b.WriteString("\n    " + desc)
			}
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
