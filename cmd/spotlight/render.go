package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/spotlight"
	"github.com/mattn/go-runewidth"
)

// maxLineWidth bounds rendered titles and descriptions, in terminal cells.
const maxLineWidth = 96

// renderer prints grouped results with numbered entries.
type renderer struct {
	heading   *color.Color
	selection *color.Color
	dim       *color.Color
	tags      *color.Color
}

func newRenderer(enableColor bool) *renderer {
	r := &renderer{
		heading:   color.New(color.Bold, color.FgCyan),
		selection: color.New(color.FgGreen),
		dim:       color.New(color.Faint),
		tags:      color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.heading, r.selection, r.dim, r.tags} {
		if enableColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes groups to w, numbering results so they can be selected.
func (r *renderer) Render(w io.Writer, groups []*spotlight.Group, showTranslation bool) {
	n := 0
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.heading.Sprintf("## %s (%d)", g.Title, g.Count()))
		for _, res := range g.Results {
			n++
			title := truncate(spotlight.DisplayTitle(res, showTranslation), maxLineWidth)
			line := fmt.Sprintf("%3d. %s", n, title)
			if tagged, ok := res.(spotlight.Tagged); ok && len(tagged.Tags()) > 0 {
				line += " " + r.tags.Sprint("["+strings.Join(tagged.Tags(), ", ")+"]")
			}
			if n == 1 {
				line += "  " + r.selection.Sprint("[Enter]")
			}
			fmt.Fprintln(w, line)
			if desc := spotlight.DisplayDescription(res, showTranslation); desc != "" {
				fmt.Fprintln(w, "     "+r.dim.Sprint(truncate(desc, maxLineWidth)))
			}
		}
	}
}

// truncate shortens s to width terminal cells, accounting for wide CJK runes.
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, width, "…")
}
