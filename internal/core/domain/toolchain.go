package domain

import (
	"slices"
	"strings"
)

const (
	// SourcePlaceholder is replaced with the source path in a compile template.
	SourcePlaceholder = "{source}"
	// OutputPlaceholder is replaced with the output path in a compile template.
	OutputPlaceholder = "{output}"
)

// Toolchain holds the compile command template used to rebuild the bootstrap.
type Toolchain struct {
	Template []string
}

// CompileCommand expands the template for the given source and output paths.
func (t Toolchain) CompileCommand(source, output string) Command {
	r := strings.NewReplacer(SourcePlaceholder, source, OutputPlaceholder, output)
	tokens := make([]string, len(t.Template))
	for i, tok := range t.Template {
		tokens[i] = r.Replace(tok)
	}
	return NewCommand(tokens...)
}

// Complete reports whether the template names both the source and the output.
func (t Toolchain) Complete() bool {
	return slices.ContainsFunc(t.Template, func(s string) bool { return strings.Contains(s, SourcePlaceholder) }) &&
		slices.ContainsFunc(t.Template, func(s string) bool { return strings.Contains(s, OutputPlaceholder) })
}
