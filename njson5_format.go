// Package njson5 serialization of value trees back to text.
// Created by dhawalhost (2025-09-14 10:22:41)
package njson5

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/pretty"
)

type encodeMode int

const (
	modeStrict encodeMode = iota
	modeJSON5
)

// Marshal renders a value tree as compact strict JSON. Map and List encode in
// insertion order; plain map[string]any encodes with sorted keys. Non-finite
// floats are rejected, as strict JSON cannot represent them.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, modeStrict); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like Marshal but formats the output with the given indent.
func MarshalIndent(v any, indent string) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(data, &pretty.Options{Indent: indent}), nil
}

// MarshalJSON5 renders a value tree as JSON5: bare keys where the key is a
// valid identifier, single-quoted strings, and NaN/Infinity literals for
// non-finite floats. Output of this mode round-trips through Parse.
func MarshalJSON5(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, modeJSON5); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//------------------------------------------------------------------------------
// ENCODER
//------------------------------------------------------------------------------

func encodeValue(buf *bytes.Buffer, v any, mode encodeMode) error {
	switch value := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if value {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		encodeString(buf, value, mode)
	case int:
		buf.WriteString(strconv.FormatInt(int64(value), 10))
	case int32:
		buf.WriteString(strconv.FormatInt(int64(value), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(value, 10))
	case *big.Int:
		buf.WriteString(value.String())
	case float64:
		return encodeFloat(buf, value, mode)
	case float32:
		return encodeFloat(buf, float64(value), mode)
	case *Map:
		return encodeMap(buf, value, mode)
	case *List:
		return encodeList(buf, value, mode)
	case map[string]any:
		return encodePlainMap(buf, value, mode)
	case []any:
		return encodeSlice(buf, value, mode)
	case json.Marshaler:
		data, err := value.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(data)
	default:
		return fmt.Errorf("njson5: cannot marshal value of type %T", v)
	}
	return nil
}

func encodeFloat(buf *bytes.Buffer, value float64, mode encodeMode) error {
	switch {
	case math.IsNaN(value):
		if mode != modeJSON5 {
			return fmt.Errorf("njson5: cannot marshal NaN as strict JSON")
		}
		buf.WriteString("NaN")
	case math.IsInf(value, 1):
		if mode != modeJSON5 {
			return fmt.Errorf("njson5: cannot marshal Infinity as strict JSON")
		}
		buf.WriteString("Infinity")
	case math.IsInf(value, -1):
		if mode != modeJSON5 {
			return fmt.Errorf("njson5: cannot marshal -Infinity as strict JSON")
		}
		buf.WriteString("-Infinity")
	default:
		s := strconv.FormatFloat(value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			// Keep integral floats recognizable as floats on re-parse.
			s += ".0"
		}
		buf.WriteString(s)
	}
	return nil
}

func encodeMap(buf *bytes.Buffer, m *Map, mode encodeMode) error {
	buf.WriteByte('{')
	first := true
	var encodeErr error
	m.Range(func(key string, value any) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		encodeKey(buf, key, mode)
		buf.WriteByte(':')
		encodeErr = encodeValue(buf, value, mode)
		return encodeErr == nil
	})
	if encodeErr != nil {
		return encodeErr
	}
	buf.WriteByte('}')
	return nil
}

func encodePlainMap(buf *bytes.Buffer, m map[string]any, mode encodeMode) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeKey(buf, key, mode)
		buf.WriteByte(':')
		if err := encodeValue(buf, m[key], mode); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeList(buf *bytes.Buffer, l *List, mode encodeMode) error {
	buf.WriteByte('[')
	for i := 0; i < l.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, l.At(i), mode); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func encodeSlice(buf *bytes.Buffer, items []any, mode encodeMode) error {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, item, mode); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func encodeKey(buf *bytes.Buffer, key string, mode encodeMode) {
	if mode == modeJSON5 && isIdentifier(key) {
		buf.WriteString(key)
		return
	}
	encodeString(buf, key, mode)
}

func encodeString(buf *bytes.Buffer, s string, mode encodeMode) {
	quote := byte('"')
	if mode == modeJSON5 {
		quote = '\''
	}
	buf.WriteByte(quote)
	for _, r := range s {
		switch r {
		case rune(quote):
			buf.WriteByte('\\')
			buf.WriteByte(quote)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case charLS, charPS:
			fmt.Fprintf(buf, `\u%04x`, r)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte(quote)
}

// isIdentifier reports whether key can be written bare in JSON5 output.
func isIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
		if i == 0 {
			if !alpha {
				return false
			}
			continue
		}
		if !alpha && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
