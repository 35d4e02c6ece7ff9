package core

import (
	"strings"

	"czjira/internal/textutil"
)

const (
	// MaxLineWidth caps the header line and is the wrap width for every
	// other section.
	MaxLineWidth = 100

	BreakingPrefix = "BREAKING CHANGE: "

	commentMarker = " #comment "
)

// Composer renders an AnswerSet into a commit message.
type Composer struct {
	Width int
}

// NewComposer returns a Composer wrapping at width columns. A non-positive
// width falls back to MaxLineWidth.
func NewComposer(width int) *Composer {
	if width <= 0 {
		width = MaxLineWidth
	}
	return &Composer{Width: width}
}

func (c *Composer) width() int {
	if c == nil || c.Width <= 0 {
		return MaxLineWidth
	}
	return c.Width
}

// Compose joins header, body, breaking change and footer with one blank line
// between them. The body is always emitted, even when empty; the breaking
// change and footer sections are left out entirely when they have no content.
func (c *Composer) Compose(a AnswerSet) string {
	a = a.Normalize()

	sections := []string{c.Header(a), c.Body(a)}
	if breaking := c.Breaking(a); breaking != "" {
		sections = append(sections, breaking)
	}
	if footer := c.Footer(a); footer != "" {
		sections = append(sections, footer)
	}

	return strings.Join(sections, "\n\n")
}

// Header builds "type(scope): subject", hard-cropped to the line width.
func (c *Composer) Header(a AnswerSet) string {
	scope := strings.TrimSpace(a.Scope)
	if scope != "" {
		scope = "(" + scope + ")"
	}

	head := a.Type + scope + ": " + strings.TrimSpace(a.Subject)
	return textutil.Crop(head, c.width())
}

func (c *Composer) Body(a AnswerSet) string {
	return textutil.Wrap(a.Body, c.width())
}

// Breaking returns the wrapped "BREAKING CHANGE: ..." paragraph, or "" when
// the change is not breaking or no description was given. A prefix the user
// already typed is not repeated.
func (c *Composer) Breaking(a AnswerSet) string {
	if !a.IsBreaking {
		return ""
	}

	text := strings.TrimSpace(a.Breaking)
	text = strings.TrimSpace(strings.TrimPrefix(text, strings.TrimSpace(BreakingPrefix)))
	if text == "" {
		return ""
	}

	return textutil.Wrap(BreakingPrefix+text, c.width())
}

// Footer returns the issue line: the ticket, its status tag and a
// "#comment" cropped so the whole line stays within the width. It is ""
// when no issue was given, whatever Status and Comment hold.
func (c *Composer) Footer(a AnswerSet) string {
	issue := strings.TrimSpace(a.Issue)
	if issue == "" {
		return ""
	}

	line := issue
	if status := strings.TrimSpace(a.Status); status != "" {
		line += " " + status
	}

	if comment := strings.TrimSpace(a.Comment); comment != "" {
		budget := c.width() - textutil.Len(line) - textutil.Len(commentMarker)
		if comment = strings.TrimSpace(textutil.Crop(comment, budget)); comment != "" {
			line += commentMarker + comment
		}
	}

	return textutil.Wrap(line, c.width())
}
