package domain

import (
	"slices"
	"strings"
)

// Command is an immutable external command: a program followed by its arguments.
type Command struct {
	tokens []string
}

// NewCommand creates a Command from the given tokens. The slice is copied.
func NewCommand(tokens ...string) Command {
	return Command{tokens: slices.Clone(tokens)}
}

// Empty reports whether the command has no program.
func (c Command) Empty() bool {
	return len(c.tokens) == 0
}

// Program returns the program to run, or "" for an empty command.
func (c Command) Program() string {
	if c.Empty() {
		return ""
	}
	return c.tokens[0]
}

// Args returns a copy of the arguments passed to the program.
func (c Command) Args() []string {
	if c.Empty() {
		return nil
	}
	return slices.Clone(c.tokens[1:])
}

// Tokens returns a copy of all tokens.
func (c Command) Tokens() []string {
	return slices.Clone(c.tokens)
}

// With returns a new Command with extra arguments appended.
func (c Command) With(args ...string) Command {
	return Command{tokens: slices.Concat(c.tokens, args)}
}

func (c Command) String() string {
	return strings.Join(c.tokens, " ")
}
