package core

import "strings"

// IssueStatus is a smart-commit transition appended after the ticket id.
type IssueStatus struct {
	Name string
	Tag  string
}

// NoChange leaves the ticket where it is.
var NoChange = IssueStatus{Name: "No Change", Tag: ""}

var IssueStatuses = []IssueStatus{
	NoChange,
	{Name: "To Do", Tag: "#to-do"},
	{Name: "In Progress", Tag: "#in-progress"},
	{Name: "In Testing", Tag: "#in-testing"},
	{Name: "Done", Tag: "#done"},
}

// LookupStatus resolves a tag ("#done"), a bare tag ("done") or a display
// name ("In Testing"). The empty string resolves to NoChange.
func LookupStatus(s string) (IssueStatus, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoChange, true
	}

	for _, st := range IssueStatuses {
		if st.Tag == "" {
			continue
		}
		if s == st.Tag || "#"+s == st.Tag || strings.EqualFold(s, st.Name) {
			return st, true
		}
	}
	return IssueStatus{}, false
}
