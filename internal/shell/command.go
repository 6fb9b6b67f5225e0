package shell

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// command is one input line of the shell:
//
//	exit
//	+ literal literal
//	literal
//
// Literals are validated by radix.Parse, so the lexer accepts any run of
// characters that are neither blanks nor a plus sign.
//
//nolint:govet // participle grammar tags are not standard struct tags
type command struct {
	Exit    bool    `  @"exit"`
	Sum     *sumCmd `| "+" @@`
	Literal *string `| @Literal`
}

//nolint:govet // participle grammar tags are not standard struct tags
type sumCmd struct {
	Left  string `@Literal`
	Right string `@Literal`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Plus", Pattern: `\+`},
	{Name: "Literal", Pattern: `[^\s+]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var commandParser = participle.MustBuild[command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// parseCommand parses a single non-empty line.
func parseCommand(line string) (*command, error) {
	return commandParser.ParseString("", line)
}
