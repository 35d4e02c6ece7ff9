package core

import (
	"fmt"
	"strings"
)

// Validate is the strict check used when answers come from flags rather
// than the interactive prompter. Compose itself never rejects input.
func Validate(a AnswerSet, types []TypeChoice) error {
	if !knownType(a.Type, types) {
		return &ErrInvalidAnswer{Field: "type", Err: fmt.Errorf("%w: %q", ErrUnknownType, a.Type)}
	}
	if strings.TrimSpace(a.Subject) == "" {
		return &ErrInvalidAnswer{Field: "subject", Err: ErrEmptySubject}
	}
	if a.HasIssue() {
		if _, ok := LookupStatus(a.Status); !ok {
			return &ErrInvalidAnswer{Field: "status", Err: fmt.Errorf("%w: %q", ErrUnknownStatus, a.Status)}
		}
	}
	return nil
}

func knownType(key string, types []TypeChoice) bool {
	for _, t := range types {
		if t.Key == key {
			return true
		}
	}
	return false
}
