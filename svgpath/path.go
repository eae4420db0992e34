// Implements an interpreter for the SVG path
// mini-language, turning `d` attributes into
// simplified polylines.
package svgpath

import (
	"fmt"
	"strings"
)

// CommandKind identifies a path instruction.
type CommandKind uint8

// Supported path commands
const (
	MoveTo CommandKind = iota
	LineTo
	HLineTo
	VLineTo
	CubicTo
	SmoothCubicTo
	Close
)

// operand count per command
var arity = [...]int{
	MoveTo:        2,
	LineTo:        2,
	HLineTo:       1,
	VLineTo:       1,
	CubicTo:       6,
	SmoothCubicTo: 4,
	Close:         0,
}

var letters = [...]byte{
	MoveTo:        'M',
	LineTo:        'L',
	HLineTo:       'H',
	VLineTo:       'V',
	CubicTo:       'C',
	SmoothCubicTo: 'S',
	Close:         'Z',
}

func kindOf(c byte) CommandKind {
	switch c {
	case 'M', 'm':
		return MoveTo
	case 'L', 'l':
		return LineTo
	case 'H', 'h':
		return HLineTo
	case 'V', 'v':
		return VLineTo
	case 'C', 'c':
		return CubicTo
	case 'S', 's':
		return SmoothCubicTo
	default:
		return Close
	}
}

// PathCommand is one instruction, with its operands.
// Implicit repetitions are expanded, so that
// each PathCommand holds exactly one operand group.
type PathCommand struct {
	Kind     CommandKind
	Relative bool
	Args     []float64
}

func (c PathCommand) String() string {
	letter := letters[c.Kind]
	if c.Relative {
		letter += 'a' - 'A'
	}
	chunks := make([]string, len(c.Args))
	for i, a := range c.Args {
		chunks[i] = fmt.Sprintf("%4.3f", a)
	}
	return string(letter) + strings.Join(chunks, ",")
}

// Path is a sequence of commands.
type Path []PathCommand

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, c := range p {
		chunks[i] = c.String()
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string { return p.ToSVGPath() }

// ParseCommands tokenizes path data into commands.
// A command letter followed by several operand groups yields
// one command per group; extra pairs after a move are lines.
func ParseCommands(data string) (Path, error) {
	tokens, err := tokenize(data)
	if err != nil {
		return nil, err
	}
	var (
		out Path
		i   int
	)
	for i < len(tokens) {
		tok := tokens[i]
		if !tok.isCommand() {
			reason := "command expected"
			if len(out) == 0 {
				reason = "path data must start with a command"
			}
			return nil, &MalformedPathError{Offset: tok.offset, Token: tok.text, Reason: reason}
		}
		i++
		kind := kindOf(tok.command)
		relative := tok.command >= 'a'
		if kind == Close {
			out = append(out, PathCommand{Kind: Close, Relative: relative})
			continue
		}
		for {
			n := arity[kind]
			args := make([]float64, n)
			for k := 0; k < n; k++ {
				if i >= len(tokens) {
					return nil, &MalformedPathError{Offset: len(data), Reason: "unexpected end of path data, number expected"}
				}
				if tokens[i].isCommand() {
					return nil, &MalformedPathError{Offset: tokens[i].offset, Token: tokens[i].text, Reason: "number expected"}
				}
				args[k] = tokens[i].value
				i++
			}
			out = append(out, PathCommand{Kind: kind, Relative: relative, Args: args})
			if kind == MoveTo {
				kind = LineTo // implicit line continuations
			}
			if i >= len(tokens) || tokens[i].isCommand() {
				break
			}
		}
	}
	return out, nil
}
