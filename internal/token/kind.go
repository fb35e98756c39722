package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Leader is a command prefix byte, '^' or '~'.
	Leader
	// Value is a run of bytes free of delimiters: command codes,
	// arguments, and field content all arrive as Value tokens.
	Value
	// Comma separates command arguments.
	Comma
	// Comment covers ';' through the end of the line.
	Comment
	// Newline covers exactly one line break.
	Newline
	// Whitespace covers a run of spaces and tabs.
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Leader:
		return "Leader"
	case Value:
		return "Value"
	case Comma:
		return "Comma"
	case Comment:
		return "Comment"
	case Newline:
		return "Newline"
	case Whitespace:
		return "Whitespace"
	}
	return "Unknown"
}
