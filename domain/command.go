package domain

import "strings"

// Command is one parsed input line. Immutable; consumed once by the dispatcher.
type Command struct {
	Verb     string
	Flags    map[string]bool
	Argument string
}

// HasFlag reports whether the command carried the given --flag token.
func (c Command) HasFlag(flag string) bool {
	return c.Flags[flag]
}

// ParseCommand tokenizes a raw input line. The first token (lowercased) is
// the verb, tokens starting with "--" are flags, and the remaining tokens
// rejoined in order form the free-text argument. Blank input yields ok=false
// and the caller must ignore the line entirely. Unknown verbs are not
// rejected here; that is the dispatcher's concern.
func ParseCommand(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}

	cmd := Command{
		Verb:  strings.ToLower(fields[0]),
		Flags: make(map[string]bool),
	}

	var rest []string
	for _, tok := range fields[1:] {
		if strings.HasPrefix(tok, "--") {
			cmd.Flags[tok] = true
			continue
		}
		rest = append(rest, tok)
	}
	cmd.Argument = strings.Join(rest, " ")

	return cmd, true
}
