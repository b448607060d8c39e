package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gerunddev/miles/internal/prompt"
)

// maxHeadingWidth bounds the heading preview in the section listing.
const maxHeadingWidth = 64

// RenderSectionList renders one line per section: position, name, first
// line of content and line count.
func RenderSectionList(sections []prompt.Section) string {
	nameWidth := 0
	for _, s := range sections {
		if w := runewidth.StringWidth(s.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for i, s := range sections {
		content := prompt.Normalize(s.Content)
		heading, _, _ := strings.Cut(content, "\n")
		heading = runewidth.Truncate(heading, maxHeadingWidth, "…")

		lines := 0
		if content != "" {
			lines = strings.Count(content, "\n") + 1
		}

		b.WriteString(sectionIndexStyle.Render(fmt.Sprintf("%d.", i+1)))
		b.WriteString(" ")
		b.WriteString(sectionNameStyle.Render(runewidth.FillRight(s.Name, nameWidth)))
		b.WriteString("  ")
		b.WriteString(sectionHeadingStyle.Render(heading))
		b.WriteString(" ")
		b.WriteString(sectionMetaStyle.Render(fmt.Sprintf("(%d lines)", lines)))
		b.WriteString("\n")
	}

	return b.String()
}
