// Package njson5 literal classification and numeric promotion.
// Created by dhawalhost (2025-09-14 10:22:41)
package njson5

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Keywords matched case-insensitively before numeric parsing is attempted.
const (
	litNull        = "null"
	litTrue        = "true"
	litFalse       = "false"
	litInfinity    = "infinity"
	litInfinityPos = "+infinity"
	litInfinityNeg = "-infinity"
	litNaN         = "nan"
)

// extractLiteral accumulates a maximal run of letters, digits, '.', '+', '-'
// and classifies it as a keyword or a number. A leading '+' is consumed and
// dropped (JSON5 explicit positive sign). Anything unmatched is a literal
// error naming the text and offset.
func (p *parser) extractLiteral() (any, error) {
	var b []rune
	for p.index < p.length {
		c := p.content[p.index]
		if c == '+' && len(b) == 0 {
			p.index++
		} else if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '.' || c == '+' || c == '-' {
			b = append(b, c)
			p.index++
		} else {
			break
		}
	}

	literal := strings.ToLower(strings.TrimSpace(string(b)))

	switch literal {
	case litNull:
		return nil, nil
	case litTrue:
		return true, nil
	case litFalse:
		return false, nil
	case litInfinity, litInfinityPos:
		return math.Inf(1), nil
	case litInfinityNeg:
		return math.Inf(-1), nil
	case litNaN:
		return math.NaN(), nil
	}

	value, err := detectNumber(literal)
	if err != nil {
		return nil, literalError(p.index, literal)
	}
	return value, nil
}

//------------------------------------------------------------------------------
// NUMERIC PROMOTION
//------------------------------------------------------------------------------

// detectNumber classifies a lowercased literal as float64, int32, int64 or
// *big.Int.
//
// A '.' or an 'e' without an 'x' (hex marker) makes it a float. Integer width
// is picked length-first:
//
//	int32 max: 2147483647 - 10 characters dec, 0x7fffffff - 10 characters hex
//	int64 max: 9223372036854775807 - 19 characters dec, 0x7fffffffffffffff - 18 characters hex
//
// with one extra character allowed when the literal carries a leading '-'.
// A literal whose length fits a width but whose value overflows it promotes
// to the next width instead of failing, so values exactly at a bound classify
// at that bound's width. Arbitrary-precision literals are decimal only; a hex
// run too long for int64 is a literal error.
func detectNumber(literal string) (any, error) {
	if literal == "" {
		return nil, errors.New("empty literal")
	}

	hasDot := strings.ContainsRune(literal, '.')
	hasE := strings.ContainsRune(literal, 'e')
	hasX := strings.ContainsRune(literal, 'x')

	if hasDot || (hasE && !hasX) {
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		// Out-of-range magnitudes saturate to +/-Inf, as in the
		// reference behavior.
		return value, nil
	}

	maxIntLen, maxLongLen := 10, 19
	if hasX {
		maxIntLen, maxLongLen = 10, 18
	}
	if literal[0] == '-' {
		maxIntLen++
		maxLongLen++
	}

	if len(literal) <= maxIntLen {
		value, err := strconv.ParseInt(literal, 0, 32)
		if err == nil {
			return int32(value), nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
	}
	if len(literal) <= maxLongLen {
		value, err := strconv.ParseInt(literal, 0, 64)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
	}

	value, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		return nil, errors.New("malformed integer literal")
	}
	return value, nil
}
