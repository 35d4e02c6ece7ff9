package core

import (
	"strings"
	"testing"

	"czjira/internal/textutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		answers AnswerSet
		want    string
	}{
		{
			name: "issue with status and empty body",
			answers: AnswerSet{
				Type:    "feat",
				Scope:   "parser",
				Subject: "support nested arrays",
				Issue:   "JIRA-42",
				Status:  "#done",
			},
			want: "feat(parser): support nested arrays\n\n\n\nJIRA-42 #done",
		},
		{
			name:    "header only keeps empty body section",
			answers: AnswerSet{Type: "fix", Subject: "handle nil config"},
			want:    "fix: handle nil config\n\n",
		},
		{
			name: "all sections",
			answers: AnswerSet{
				Type:       "feat",
				Scope:      " api ",
				Subject:    " add pagination ",
				Body:       "Cursor based pagination for list endpoints.",
				IsBreaking: true,
				Breaking:   "page param removed",
				Issue:      "PROJ-7",
				Status:     "#in-testing",
				Comment:    " ready for QA ",
			},
			want: "feat(api): add pagination\n\n" +
				"Cursor based pagination for list endpoints.\n\n" +
				"BREAKING CHANGE: page param removed\n\n" +
				"PROJ-7 #in-testing #comment ready for QA",
		},
		{
			name: "breaking flag without text is omitted",
			answers: AnswerSet{
				Type:       "refactor",
				Subject:    "split module",
				Body:       "body",
				IsBreaking: true,
				Breaking:   "   ",
			},
			want: "refactor: split module\n\nbody",
		},
		{
			name: "breaking text ignored when not breaking",
			answers: AnswerSet{
				Type:     "chore",
				Subject:  "bump deps",
				Body:     "body",
				Breaking: "should not appear",
			},
			want: "chore: bump deps\n\nbody",
		},
		{
			name: "status and comment ignored without issue",
			answers: AnswerSet{
				Type:    "docs",
				Subject: "fix typo",
				Body:    "body",
				Issue:   "   ",
				Status:  "#done",
				Comment: "nope",
			},
			want: "docs: fix typo\n\nbody",
		},
		{
			name: "issue with comment and no status",
			answers: AnswerSet{
				Type:    "fix",
				Subject: "x",
				Issue:   "ABC-1",
				Comment: "looks good",
			},
			want: "fix: x\n\n\n\nABC-1 #comment looks good",
		},
	}

	c := NewComposer(MaxLineWidth)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Compose(tt.answers))
		})
	}
}

func TestCompose_HeaderCroppedToWidth(t *testing.T) {
	c := NewComposer(0)

	out := c.Compose(AnswerSet{Type: "fix", Subject: strings.Repeat("x", 150)})

	head := strings.SplitN(out, "\n", 2)[0]
	assert.Len(t, head, MaxLineWidth)
	assert.True(t, strings.HasPrefix(head, "fix: xxx"))
	assert.NotContains(t, head, "(")
}

func TestCompose_HeaderNeverExceedsWidth(t *testing.T) {
	c := NewComposer(MaxLineWidth)
	for _, n := range []int{0, 1, 50, 93, 94, 95, 99, 100, 101, 500} {
		a := AnswerSet{Type: "feat", Scope: "core", Subject: strings.Repeat("s", n)}
		head := c.Header(a)
		assert.LessOrEqual(t, len(head), MaxLineWidth, "subject length %d", n)
	}
}

func TestCompose_NoBreakingLineWhenNotBreaking(t *testing.T) {
	c := NewComposer(MaxLineWidth)
	out := c.Compose(AnswerSet{
		Type:     "feat",
		Subject:  "s",
		Body:     "text",
		Breaking: "BREAKING CHANGE: hidden",
	})

	for _, line := range strings.Split(out, "\n") {
		assert.False(t, strings.HasPrefix(line, "BREAKING CHANGE:"), "line %q", line)
	}
}

func TestCompose_BreakingPrefixNotDuplicated(t *testing.T) {
	c := NewComposer(MaxLineWidth)
	a := AnswerSet{
		Type:       "feat",
		Subject:    "s",
		IsBreaking: true,
		Breaking:   "  BREAKING CHANGE: drop v1 routes  ",
	}

	out := c.Compose(a)

	assert.Equal(t, 1, strings.Count(out, BreakingPrefix))
	assert.Contains(t, out, "BREAKING CHANGE: drop v1 routes")

	again := c.Breaking(AnswerSet{IsBreaking: true, Breaking: c.Breaking(a)})
	assert.Equal(t, c.Breaking(a), again)
}

func TestCompose_BreakingPrefixOnly(t *testing.T) {
	c := NewComposer(MaxLineWidth)
	assert.Empty(t, c.Breaking(AnswerSet{IsBreaking: true, Breaking: "BREAKING CHANGE: "}))
	assert.Empty(t, c.Breaking(AnswerSet{IsBreaking: true, Breaking: "BREAKING CHANGE:"}))
}

func TestCompose_BreakingPrefixWithoutSpace(t *testing.T) {
	c := NewComposer(MaxLineWidth)
	assert.Equal(t, "BREAKING CHANGE: foo", c.Breaking(AnswerSet{IsBreaking: true, Breaking: "BREAKING CHANGE:foo"}))
}

func TestCompose_BreakingWrapped(t *testing.T) {
	c := NewComposer(MaxLineWidth)
	text := strings.TrimSpace(strings.Repeat("callers must migrate ", 12))

	out := c.Breaking(AnswerSet{IsBreaking: true, Breaking: text})

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], BreakingPrefix))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), MaxLineWidth)
	}
}

func TestFooter_CommentCroppedExactly(t *testing.T) {
	c := NewComposer(MaxLineWidth)
	a := AnswerSet{
		Issue:   "JIRA-1234",
		Status:  "#in-progress",
		Comment: strings.Repeat("c", 200),
	}

	footer := c.Footer(a)

	issueLine := "JIRA-1234 #in-progress"
	require.True(t, strings.HasPrefix(footer, issueLine+" #comment "))
	comment := strings.TrimPrefix(footer, issueLine+" #comment ")
	assert.Equal(t, MaxLineWidth, len(issueLine)+len(" #comment ")+len(comment))
	assert.Len(t, footer, MaxLineWidth)
	assert.NotContains(t, footer, "\n")
}

func TestFooter_CommentDroppedWhenNoRoom(t *testing.T) {
	c := NewComposer(MaxLineWidth)
	issue := strings.Repeat("I", 95)

	footer := c.Footer(AnswerSet{Issue: issue, Comment: "hello"})

	assert.Equal(t, issue, footer)
	assert.NotContains(t, footer, "#comment")
}

func TestFooter_WideCommentStaysOnIssueLine(t *testing.T) {
	c := NewComposer(MaxLineWidth)

	footer := c.Footer(AnswerSet{Issue: "票-1", Status: "#done", Comment: strings.Repeat("日本語", 40)})

	assert.NotContains(t, footer, "\n")
	assert.True(t, strings.HasPrefix(footer, "票-1 #done #comment 日本語"))
	assert.Equal(t, MaxLineWidth, textutil.Len(footer))
}

func TestFooter_TrimsCommentAndIssue(t *testing.T) {
	c := NewComposer(MaxLineWidth)

	footer := c.Footer(AnswerSet{Issue: " ABC-9 ", Status: "#to-do", Comment: "  spaced  "})

	assert.Equal(t, "ABC-9 #to-do #comment spaced", footer)
}

func TestFooter_OmittedWithoutIssue(t *testing.T) {
	c := NewComposer(MaxLineWidth)
	for _, issue := range []string{"", " ", "\t\n"} {
		assert.Empty(t, c.Footer(AnswerSet{Issue: issue, Status: "#done", Comment: "x"}))
	}
}

func TestCompose_NarrowWidth(t *testing.T) {
	c := NewComposer(20)

	out := c.Compose(AnswerSet{
		Type:    "feat",
		Subject: "a subject that is far too long",
		Body:    "one two three four five six seven",
	})

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 20, "line %q", line)
	}
}

func TestCompose_DoesNotMutateAnswers(t *testing.T) {
	a := AnswerSet{Type: "fix", Subject: " s ", Breaking: "b", Issue: "", Status: "#done"}
	before := a

	NewComposer(MaxLineWidth).Compose(a)

	assert.Equal(t, before, a)
}

func TestNormalize(t *testing.T) {
	a := AnswerSet{Breaking: "b", Issue: " ", Status: "#done", Comment: "c"}.Normalize()
	assert.Empty(t, a.Breaking)
	assert.Empty(t, a.Status)
	assert.Empty(t, a.Comment)

	b := AnswerSet{IsBreaking: true, Breaking: "b", Issue: "X-1", Status: "#done", Comment: "c"}.Normalize()
	assert.Equal(t, "b", b.Breaking)
	assert.Equal(t, "#done", b.Status)
	assert.Equal(t, "c", b.Comment)
}
