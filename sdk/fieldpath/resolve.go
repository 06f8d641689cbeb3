// Copyright 2022, Pulumi Corporation.  All rights reserved.

package fieldpath

import (
	"go.lsp.dev/protocol"
)

// Resolve returns the chain of mapping keys whose value the cursor sits in.
//
// A mapping value contains the cursor when the cursor is indented deeper than
// the value's key and is not past the end of the value. A key whose value is
// still a scalar also counts when the cursor is on a later line, indented
// deeper than the key and before the next sibling key: that is a key about to
// receive nested fields. A cursor inside a sequence resolves to the key
// holding the sequence; items are never descended.
//
// The result is bounded by the nesting depth of root. A nil root resolves to
// the empty path.
func Resolve(root *Mapping, cursor protocol.Position) Path {
	if root == nil {
		return Path{}
	}
	inner := descend(root, cursor)
	path := make(Path, len(inner))
	for i, k := range inner {
		path[len(inner)-1-i] = k
	}
	return path
}

// ResolveFile resolves the cursor against the document of f whose range
// holds it. A document runs until the next one starts; the last one runs to
// the end of the text, inclusive.
func ResolveFile(f *File, cursor protocol.Position) Path {
	if f == nil {
		return Path{}
	}
	at := f.Pos(cursor)
	for i, root := range f.Roots {
		m, ok := root.(*Mapping)
		if !ok {
			continue
		}
		rng := m.Range()
		last := i+1 == len(f.Roots)
		if rng.ContainsPos(at) || (last && at.Byte == rng.End.Byte) {
			return Resolve(m, cursor)
		}
	}
	return Path{}
}

// descend returns the path below m, innermost key first.
func descend(m *Mapping, cursor protocol.Position) []string {
	for i, entry := range m.Entries {
		key := entry.Key.Start()
		if cursor.Line < key.Line {
			return nil
		}
		switch value := entry.Value.(type) {
		case *Mapping:
			if cursor.Character > key.Character && cursor.Line <= value.End().Line {
				return append(descend(value, cursor), entry.Key.Value)
			}
		case *Sequence:
			if cursor.Character > key.Character && cursor.Line <= value.End().Line {
				return []string{entry.Key.Value}
			}
		case *Scalar:
			if cursor.Line <= key.Line || cursor.Character <= key.Character {
				continue
			}
			if i+1 == len(m.Entries) || cursor.Line < m.Entries[i+1].Key.Start().Line {
				return []string{entry.Key.Value}
			}
		}
	}
	return nil
}
