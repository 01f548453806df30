// Package njson5 parses lenient JSON5-superset text into ordered collections.
// Created by dhawalhost (2025-09-14 10:22:41)
//
// The dialect accepts // and /* */ comments, unquoted object keys, single-quoted
// strings, trailing commas, and extended numeric literals (hex, explicit sign,
// Infinity, NaN). The result is always an ordered map; a bare top-level array is
// wrapped under the key DefaultListKey.
package njson5

import (
	"errors"
	"fmt"
)

// DefaultListKey is the key under which a bare top-level array is stored in the
// returned map.
const DefaultListKey = "list"

// PathRootKey is the root segment of the dotted paths handed to a
// CollectionFactory.
const PathRootKey = "root"

// DefaultMaxDepth bounds container nesting when ParseOptions.MaxDepth is zero.
const DefaultMaxDepth = 512

// Error kinds for parse failures. Use errors.Is to classify a returned error.
var (
	ErrSyntax  = errors.New("syntax error")
	ErrLiteral = errors.New("invalid literal")
	ErrTooDeep = errors.New("nesting too deep")
)

// ParseError is the error type returned by all parse entry points. It carries
// the absolute rune offset at which parsing stopped and unwraps to one of
// ErrSyntax, ErrLiteral or ErrTooDeep.
type ParseError struct {
	Message string
	Offset  int
	kind    error
}

func (e *ParseError) Error() string { return e.Message }

func (e *ParseError) Unwrap() error { return e.kind }

// CollectionFactory lets callers choose the concrete container populated for a
// given object or array. Either method may return nil to fall back to the
// default container (*Map or *List). The factory is consulted exactly once per
// container, before any element is inserted, with the dotted path from the
// document root (root-most segment PathRootKey).
type CollectionFactory interface {
	// ObjectFor returns the container for the object at path, or nil.
	ObjectFor(path string) ObjectContainer
	// ListFor returns the container for the array at path, or nil.
	ListFor(path string) ListContainer
}

// ParseOptions configures ParseWithOptions. The zero value behaves like Parse.
type ParseOptions struct {
	// Collections, when non-nil, is consulted for every container created
	// during the parse.
	Collections CollectionFactory
	// MaxDepth bounds container nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

//------------------------------------------------------------------------------
// PARSE ENTRY POINTS
//------------------------------------------------------------------------------

// Parse parses a JSON5 document into an ordered *Map.
//
// Every value in the result is nil, bool, string, int32, int64, *big.Int,
// float64, *Map or *List. If the input is a bare array such as [1,2], the
// result holds it under DefaultListKey.
func Parse(data string) (*Map, error) {
	p := &parser{maxDepth: DefaultMaxDepth}
	root, err := p.doParse(data)
	if err != nil {
		return nil, err
	}
	return root.(*Map), nil
}

// ParseBytes is like Parse but accepts a byte slice.
func ParseBytes(data []byte) (*Map, error) {
	return Parse(string(data))
}

// ParseWithOptions parses a JSON5 document with explicit options. The returned
// container is whatever the factory produced for the root object (a *Map when
// the factory declined or opts is nil).
func ParseWithOptions(data string, opts *ParseOptions) (ObjectContainer, error) {
	p := &parser{maxDepth: DefaultMaxDepth}
	if opts != nil {
		p.collections = opts.Collections
		if opts.MaxDepth > 0 {
			p.maxDepth = opts.MaxDepth
		}
	}
	return p.doParse(data)
}

//------------------------------------------------------------------------------
// ERROR CONSTRUCTION
//------------------------------------------------------------------------------

func syntaxError(offset int, format string, args ...any) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		kind:    ErrSyntax,
	}
}

func literalError(offset int, literal string) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf("Invalid literal '%s' at position %d.", literal, offset),
		Offset:  offset,
		kind:    ErrLiteral,
	}
}

func depthError(offset int, limit int) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf("Nesting deeper than %d at position %d.", limit, offset),
		Offset:  offset,
		kind:    ErrTooDeep,
	}
}
