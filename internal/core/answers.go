package core

import "strings"

// AnswerSet is the result of one prompting session.
type AnswerSet struct {
	Type       string `json:"type"`
	Scope      string `json:"scope,omitempty"`
	Subject    string `json:"subject"`
	Body       string `json:"body,omitempty"`
	IsBreaking bool   `json:"isBreaking"`
	Breaking   string `json:"breaking,omitempty"`
	Issue      string `json:"issue,omitempty"`
	Status     string `json:"status,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

// HasIssue reports whether a ticket reference was given.
func (a AnswerSet) HasIssue() bool {
	return strings.TrimSpace(a.Issue) != ""
}

// Normalize returns a copy with the gated fields cleared: Breaking only
// survives when IsBreaking is set, Status and Comment only when an issue
// is present.
func (a AnswerSet) Normalize() AnswerSet {
	if !a.IsBreaking {
		a.Breaking = ""
	}
	if !a.HasIssue() {
		a.Status = ""
		a.Comment = ""
	}
	return a
}
