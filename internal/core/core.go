package core

import (
	"context"
	"errors"
)

var ErrNilSink = errors.New("commit sink cannot be nil")

// CommitSink receives the final message, e.g. by running git commit.
type CommitSink interface {
	Accept(ctx context.Context, message string) error
}

// CommitSinkFunc adapts a plain function to CommitSink.
type CommitSinkFunc func(ctx context.Context, message string) error

func (f CommitSinkFunc) Accept(ctx context.Context, message string) error {
	return f(ctx, message)
}

type Core struct {
	composer *Composer
	types    []TypeChoice
}

func NewCore(composer *Composer, types []TypeChoice) *Core {
	if composer == nil {
		panic("composer cannot be nil")
	}
	return &Core{
		composer: composer,
		types:    types,
	}
}

func (c *Core) Types() []TypeChoice {
	return c.types
}

func (c *Core) Choices() []Choice {
	return BuildChoices(c.types)
}

func (c *Core) Width() int {
	return c.composer.width()
}

func (c *Core) Compose(a AnswerSet) string {
	return c.composer.Compose(a)
}

// Submit composes the message and hands it to sink exactly once. The
// message is returned even when the sink fails so callers can keep it.
func (c *Core) Submit(ctx context.Context, a AnswerSet, sink CommitSink) (string, error) {
	if sink == nil {
		return "", ErrNilSink
	}

	message := c.composer.Compose(a)
	if err := sink.Accept(ctx, message); err != nil {
		return message, &ErrCommitRejected{Msg: "sink failed", Err: err}
	}
	return message, nil
}
