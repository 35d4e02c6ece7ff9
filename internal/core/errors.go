package core

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownType   = errors.New("unknown commit type")
	ErrEmptySubject  = errors.New("subject cannot be empty")
	ErrUnknownStatus = errors.New("unknown issue status")
)

type ErrInvalidAnswer struct {
	Field string
	Err   error
}

func (e *ErrInvalidAnswer) Error() string {
	return fmt.Sprintf("invalid answer for %s: %v", e.Field, e.Err)
}

func (e *ErrInvalidAnswer) Unwrap() error {
	return e.Err
}

type ErrCommitRejected struct {
	Msg string
	Err error
}

func (e *ErrCommitRejected) Error() string {
	return fmt.Sprintf("commit rejected: %s: %v", e.Msg, e.Err)
}

func (e *ErrCommitRejected) Unwrap() error {
	return e.Err
}
