package chat

import (
	"errors"
	"strings"
	"unicode"
)

type (
	// Command is a parsed chat invocation
	Command struct {
		Name   string
		Text   string
		Secret string
		Full   bool
	}
)

var (
	ERR_EMPTY_COMMAND      = errors.New("Empty command")
	ERR_UNKNOWN_COMMAND    = errors.New("Unknown command")
	ERR_MISSING_ARGUMENT   = errors.New("Missing argument")
	ERR_INVALID_ARGUMENT   = errors.New("Invalid argument")
	ERR_UNTERMINATED_QUOTE = errors.New("Unterminated quote")
)

const (
	CMD_ENCODE = "encode"
	CMD_DECODE = "decode"

	modeFull = "full"
)

// ParseArgs splits a command line into words. Double quoted words may
// contain whitespace and the escapes \" and \\.
func ParseArgs(raw string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inWord  bool
		quoted  bool
		escaped bool
	)
	for _, r := range raw {
		switch {
		case escaped:
			if r != '"' && r != '\\' {
				cur.WriteRune('\\')
			}
			cur.WriteRune(r)
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
			inWord = true
		case !quoted && unicode.IsSpace(r):
			if inWord {
				args = append(args, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if quoted || escaped {
		return nil, ERR_UNTERMINATED_QUOTE
	}
	if inWord {
		args = append(args, cur.String())
	}
	return args, nil
}

// ParseCommand parses `encode "text" "secret" [full]` and `decode "text"`
func ParseCommand(raw string) (*Command, error) {
	args, err := ParseArgs(raw)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, ERR_EMPTY_COMMAND
	}

	cmd := &Command{Name: strings.ToLower(args[0])}
	args = args[1:]

	switch cmd.Name {
	case CMD_ENCODE:
		if len(args) < 2 {
			return nil, ERR_MISSING_ARGUMENT
		}
		if len(args) > 3 {
			return nil, ERR_INVALID_ARGUMENT
		}
		cmd.Text, cmd.Secret = args[0], args[1]
		if len(args) == 3 {
			if !strings.EqualFold(args[2], modeFull) {
				return nil, ERR_INVALID_ARGUMENT
			}
			cmd.Full = true
		}
	case CMD_DECODE:
		if len(args) < 1 {
			return nil, ERR_MISSING_ARGUMENT
		}
		if len(args) > 1 {
			return nil, ERR_INVALID_ARGUMENT
		}
		cmd.Text = args[0]
	default:
		return nil, ERR_UNKNOWN_COMMAND
	}
	return cmd, nil
}
