package njson5

import "strings"

// path is the immutable dotted address of a container, rooted at PathRootKey.
// add never mutates the receiver; segments are stored as a slice and joined
// only when a factory is consulted, so deep nesting stays linear.
type path struct {
	segments []string
}

func rootPath() path {
	return path{segments: []string{PathRootKey}}
}

func (p path) add(segment string) path {
	segments := make([]string, len(p.segments)+1)
	copy(segments, p.segments)
	segments[len(p.segments)] = segment
	return path{segments: segments}
}

func (p path) String() string {
	return strings.Join(p.segments, ".")
}
