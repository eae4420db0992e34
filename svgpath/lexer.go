package svgpath

import (
	"fmt"
	"strconv"
)

// MalformedPathError is returned when the path data can't be interpreted:
// a number is expected but absent, or a command is not supported.
type MalformedPathError struct {
	Offset int    // byte offset in the path data
	Token  string // offending token, empty at end of input
	Reason string
}

func (e *MalformedPathError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("malformed path data at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("malformed path data at offset %d (%q): %s", e.Offset, e.Token, e.Reason)
}

type token struct {
	command byte // 0 for numbers
	value   float64
	offset  int
	text    string
}

func (t token) isCommand() bool { return t.command != 0 }

func isSupportedCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Z', 'z':
		return true
	}
	return false
}

func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// tokenize splits path data into commands and numbers.
// Commas are whitespace; a sign or a second decimal point starts a new number.
func tokenize(data string) ([]token, error) {
	var out []token
	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			i++
		case c == 'e' || c == 'E':
			// an exponent without mantissa
			return nil, &MalformedPathError{Offset: i, Token: string(c), Reason: "unexpected exponent"}
		case isLetter(c):
			if !isSupportedCommand(c) {
				return nil, &MalformedPathError{Offset: i, Token: string(c), Reason: "unsupported command"}
			}
			out = append(out, token{command: c, offset: i, text: string(c)})
			i++
		case c == '-' || c == '+' || c == '.' || isDigit(c):
			end := scanNumber(data, i)
			text := data[i:end]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &MalformedPathError{Offset: i, Token: text, Reason: "invalid number"}
			}
			out = append(out, token{value: v, offset: i, text: text})
			i = end
		default:
			return nil, &MalformedPathError{Offset: i, Token: string(c), Reason: "unexpected character"}
		}
	}
	return out, nil
}

// scanNumber returns the end of the number starting at `start`.
func scanNumber(data string, start int) int {
	i := start
	if i < len(data) && (data[i] == '-' || data[i] == '+') {
		i++
	}
	for i < len(data) && isDigit(data[i]) {
		i++
	}
	if i < len(data) && data[i] == '.' {
		i++
		for i < len(data) && isDigit(data[i]) {
			i++
		}
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '-' || data[j] == '+') {
			j++
		}
		if j < len(data) && isDigit(data[j]) {
			for j < len(data) && isDigit(data[j]) {
				j++
			}
			i = j
		}
	}
	return i
}
