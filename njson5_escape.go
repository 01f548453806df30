// Package njson5 escape sequence decoding.
// Created by dhawalhost (2025-09-14 10:22:41)
package njson5

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// decodeEscape decodes one escape sequence. On entry the cursor is on the
// backslash; on return it is on the last character of the sequence, so the
// caller's step past it lands on the next input character.
//
// Escapes per https://spec.json5.org/#escapes: the short controls, \uXXXX for
// one UTF-16 code unit (a high surrogate pairs with an immediately following
// \uXXXX low surrogate), and a greedy \x hex run for one code point. Any other
// escaped character is returned unchanged, which is how a line continuation
// degrades into a literal newline.
func (p *parser) decodeEscape() (rune, error) {
	p.index++
	if p.index >= p.length {
		return 0, syntaxError(p.index, "Unterminated escape sequence at position %d.", p.index)
	}

	next := p.content[p.index]
	switch next {
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case 'u':
		return p.decodeUnicodeEscape()
	case 'x', 'X':
		return p.decodeHexEscape()
	default:
		return next, nil
	}
}

// decodeUnicodeEscape reads exactly four hex digits after 'u'. A high
// surrogate followed by another \uXXXX low surrogate combines into one code
// point; an unpaired surrogate half decays to U+FFFD when the rune buffer is
// converted to a string.
func (p *parser) decodeUnicodeEscape() (rune, error) {
	unit, err := p.readHex4()
	if err != nil {
		return 0, err
	}

	if isHighSurrogate(unit) && p.index+2 < p.length &&
		p.content[p.index+1] == '\\' && p.content[p.index+2] == 'u' {
		mark := p.index
		p.index += 2
		low, err := p.readHex4()
		if err != nil {
			p.index = mark
			return rune(unit), nil
		}
		if r := utf16.DecodeRune(rune(unit), rune(low)); r != utf8.RuneError {
			return r, nil
		}
		p.index = mark
	}

	return rune(unit), nil
}

// readHex4 consumes four hex digits, cursor entering on the 'u' and leaving
// on the final digit.
func (p *parser) readHex4() (int, error) {
	value := 0
	for i := 0; i < 4; i++ {
		p.index++
		if p.index >= p.length {
			return 0, syntaxError(p.index, "Unterminated unicode escape at position %d.", p.index)
		}
		d, ok := hexDigit(p.content[p.index])
		if !ok {
			return 0, syntaxError(p.index,
				"Invalid character '%s' in unicode escape at position %d.",
				charToLog(p.content[p.index]), p.index)
		}
		value = value<<4 | d
	}
	return value, nil
}

// decodeHexEscape consumes a maximal run of hex digits after 'x'/'X' and
// decodes them as one code point. Cursor leaves on the last digit.
func (p *parser) decodeHexEscape() (rune, error) {
	value := 0
	digits := 0
	for p.index+1 < p.length {
		d, ok := hexDigit(p.content[p.index+1])
		if !ok {
			break
		}
		value = value<<4 | d
		digits++
		p.index++
		if value > unicode.MaxRune {
			return 0, syntaxError(p.index, "Hex escape out of range at position %d.", p.index)
		}
	}
	if digits == 0 {
		return 0, syntaxError(p.index, "Empty hex escape at position %d.", p.index)
	}
	return rune(value), nil
}

func isHighSurrogate(unit int) bool {
	return unit >= 0xD800 && unit < 0xDC00
}

func hexDigit(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
