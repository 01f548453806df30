// Package njson5 recursive-descent parser core.
// Created by dhawalhost (2025-09-14 10:22:41)
package njson5

import (
	"strings"
	"unicode"
)

// Line terminators that end a // comment, per the JSON5 grammar.
const (
	charLF  = rune(0x0A)
	charCR  = rune(0x0D)
	charLS  = rune(0x2028)
	charPS  = rune(0x2029)
	charEOF = rune(0)
)

// parser owns one parse call: the trimmed input as runes, a single advancing
// cursor, and the nesting counter. Offsets in errors are rune offsets into the
// trimmed input. A parser is never reused and never shared.
type parser struct {
	content     []rune
	length      int
	index       int
	depth       int
	maxDepth    int
	collections CollectionFactory
}

//------------------------------------------------------------------------------
// ROOT LOOP
//------------------------------------------------------------------------------

// doParse trims the input and scans for the top-level container. A bare array
// is wrapped under DefaultListKey; scalars outside any container are skipped.
func (p *parser) doParse(data string) (ObjectContainer, error) {
	p.content = []rune(strings.TrimSpace(data))
	p.length = len(p.content)
	p.index = 0

	var root ObjectContainer
	for p.index < p.length {
		c := p.tokenBegin()
		if c == '{' {
			p.index++
			return p.parseMap(rootPath())
		}
		if c == '[' {
			p.index++
			if root == nil {
				root = p.objectFor(rootPath())
			}
			list, err := p.parseList(rootPath())
			if err != nil {
				return nil, err
			}
			root.SetKey(DefaultListKey, list)
		}
		p.index++
	}

	if root == nil {
		root = p.objectFor(rootPath())
	}
	return root, nil
}

//------------------------------------------------------------------------------
// OBJECT AND ARRAY PARSERS
//------------------------------------------------------------------------------

// parseMap parses the body of an object, the opening '{' already consumed.
func (p *parser) parseMap(at path) (ObjectContainer, error) {
	if p.depth++; p.depth > p.maxDepth {
		return nil, depthError(p.index, p.maxDepth)
	}
	defer func() { p.depth-- }()

	object := p.objectFor(at)

	for p.index < p.length {
		c := p.tokenBegin()
		if c == '}' {
			p.index++
			return object, nil
		}

		key, err := p.extractIdentity()
		if err != nil {
			return nil, err
		}

		c = p.tokenBegin()
		if c != ':' {
			return nil, syntaxError(p.index,
				"Invalid character '%s' at position %d (%s), expected ':'.",
				charToLog(c), p.index, at)
		}
		p.index++
		value, err := p.extractValue(at.add(key))
		if err != nil {
			return nil, err
		}
		object.SetKey(key, value)

		c = p.tokenBegin()
		if c == '}' {
			p.index++
			return object, nil
		}
		if c == ',' {
			p.index++
			continue
		}
		return nil, syntaxError(p.index,
			"Invalid character '%s' at position %d (%s), expected ',' or '}'.",
			charToLog(c), p.index, at)
	}

	return object, nil
}

// parseList parses the body of an array, the opening '[' already consumed.
// Commas with no preceding value are skipped, which is what makes leading,
// doubled and trailing commas all tolerable without producing null elements.
func (p *parser) parseList(at path) (ListContainer, error) {
	if p.depth++; p.depth > p.maxDepth {
		return nil, depthError(p.index, p.maxDepth)
	}
	defer func() { p.depth-- }()

	list := p.listFor(at)

	for p.index < p.length {
		c := p.tokenBegin()

		if c == ']' {
			p.index++
			return list, nil
		}
		if c == ',' {
			p.index++
			continue
		}

		value, err := p.extractValue(at)
		if err != nil {
			return nil, err
		}
		list.Append(value)
	}

	return list, nil
}

//------------------------------------------------------------------------------
// VALUE DISPATCH
//------------------------------------------------------------------------------

// extractValue picks the production from one significant character of
// lookahead. No backtracking.
func (p *parser) extractValue(at path) (any, error) {
	c := p.tokenBegin()

	switch c {
	case '{':
		p.index++
		return p.parseMap(at)
	case '[':
		p.index++
		return p.parseList(at)
	case '"', '\'':
		return p.extractString()
	default:
		return p.extractLiteral()
	}
}

//------------------------------------------------------------------------------
// SCANNER
//------------------------------------------------------------------------------

// tokenBegin advances past whitespace and comments and returns the next
// significant character without consuming it, or charEOF at end of input.
// Characters outside the significant set are skipped silently; misplaced
// significant characters are rejected by the state that receives them.
func (p *parser) tokenBegin() rune {
	for p.index < p.length {
		c := p.content[p.index]
		if unicode.IsLetter(c) || unicode.IsDigit(c) ||
			c == '"' || c == '\'' || c == '@' || c == '#' || c == '$' || c == '_' ||
			c == '{' || c == '}' || c == ':' || c == '[' || c == ']' || c == ',' ||
			c == '+' || c == '-' || c == '.' || c == '\\' {
			return c
		}

		if c == '/' && p.index+1 < p.length {
			next := p.content[p.index+1]
			if next == '/' {
				p.skipToLineEnd()
			} else if next == '*' {
				p.index += 2
				p.skipToCommentEnd()
			}
		}

		p.index++
	}
	return charEOF
}

// skipToLineEnd leaves the cursor on the line terminator; the scanner loop
// steps past it.
func (p *parser) skipToLineEnd() {
	for p.index < p.length {
		if isLineTerminator(p.content[p.index]) {
			return
		}
		p.index++
	}
}

// skipToCommentEnd leaves the cursor on the closing '/' of a block comment.
// An unterminated comment runs to end of input and surfaces as a syntax error
// in whichever parser state next consults the scanner.
func (p *parser) skipToCommentEnd() {
	for p.index < p.length {
		if p.content[p.index] == '*' {
			p.index++
			if p.index < p.length && p.content[p.index] == '/' {
				return
			}
		}
		p.index++
	}
}

//------------------------------------------------------------------------------
// STRING AND IDENTIFIER EXTRACTION
//------------------------------------------------------------------------------

// extractIdentity reads one object key: either a quoted string or a bare
// identifier terminated by ':' or by the start of a comment. An empty quoted
// key is not yet a complete key; extraction continues past it, so any
// following text up to the terminator still becomes the key.
func (p *parser) extractIdentity() (string, error) {
	var terminator rune
	if p.index < p.length {
		if c := p.content[p.index]; c == '"' || c == '\'' {
			terminator = c
		}
	}

	var b []rune
	for p.index < p.length {
		c := p.content[p.index]
		if c == terminator {
			p.index++
			if len(b) == 0 {
				continue
			}
			return strings.TrimSpace(string(b)), nil
		}
		if c == ':' || c == '/' {
			return strings.TrimSpace(string(b)), nil
		}

		if c == '\\' {
			ce, err := p.decodeEscape()
			if err != nil {
				return "", err
			}
			b = append(b, ce)
		} else {
			b = append(b, c)
		}
		p.index++
	}

	return strings.TrimSpace(string(b)), nil
}

// extractString reads one quoted string value. Single and double quotes are
// independently valid delimiters. The result is trimmed of surrounding
// whitespace; this normalization is deliberate and applies to every string
// value.
func (p *parser) extractString() (string, error) {
	terminator := p.content[p.index]
	p.index++

	var b []rune
	for p.index < p.length {
		c := p.content[p.index]
		if c == '\\' {
			ce, err := p.decodeEscape()
			if err != nil {
				return "", err
			}
			b = append(b, ce)
			p.index++
		} else if c == terminator {
			p.index++
			return strings.TrimSpace(string(b)), nil
		} else {
			b = append(b, c)
			p.index++
		}
	}

	return "", syntaxError(p.index, "Unterminated string at position %d.", p.index)
}

//------------------------------------------------------------------------------
// HELPERS
//------------------------------------------------------------------------------

func isLineTerminator(c rune) bool {
	return c == charLF || c == charCR || c == charLS || c == charPS
}

// charToLog renders a character for an error message.
func charToLog(c rune) string {
	switch c {
	case '\b':
		return "\\b"
	case '\f':
		return "\\f"
	case '\n':
		return "\\n"
	case '\r':
		return "\\r"
	case '\t':
		return "\\t"
	case '\'':
		return "'"
	case '"':
		return "\""
	case charLS:
		return "LS (0x2028)"
	case charPS:
		return "PS (0x2029)"
	case charEOF:
		return "null (0x0000)"
	default:
		return string(c)
	}
}

// objectFor consults the factory for the container at path, falling back to
// an ordered Map.
func (p *parser) objectFor(at path) ObjectContainer {
	if p.collections != nil {
		if object := p.collections.ObjectFor(at.String()); object != nil {
			return object
		}
	}
	return NewMap()
}

// listFor consults the factory for the container at path, falling back to a
// List.
func (p *parser) listFor(at path) ListContainer {
	if p.collections != nil {
		if list := p.collections.ListFor(at.String()); list != nil {
			return list
		}
	}
	return NewList()
}
