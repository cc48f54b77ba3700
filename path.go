package zodi18n

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a field path: an object key or an array index.
type Segment struct {
	key   string
	index int
	isKey bool
}

// Key builds a segment addressing an object field.
func Key(name string) Segment { return Segment{key: name, isKey: true} }

// Index builds a segment addressing an array element.
func Index(i int) Segment { return Segment{index: i} }

func (s Segment) String() string {
	if s.isKey {
		return s.key
	}
	return strconv.Itoa(s.index)
}

// Path locates a failing value, outermost segment first. An empty path
// refers to the whole input.
type Path []Segment

// PathOf builds a path from raw segment values: strings become keys, ints
// become indexes, anything else is stringified into a key. It mirrors how
// validation layers report paths as mixed string/number sequences.
func PathOf(segments ...any) Path {
	if len(segments) == 0 {
		return nil
	}
	path := make(Path, len(segments))
	for i, seg := range segments {
		switch s := seg.(type) {
		case string:
			path[i] = Key(s)
		case int:
			path[i] = Index(s)
		default:
			path[i] = Key(fmt.Sprint(s))
		}
	}
	return path
}

// String returns the dot-joined form, e.g. "user.email" or "items.2".
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
