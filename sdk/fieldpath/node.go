// Copyright 2022, Pulumi Corporation.  All rights reserved.

// Package fieldpath maps a cursor in a YAML document to the chain of mapping
// keys that encloses it.
//
// node.go defines the position-annotated structural tree.
// parse.go builds that tree from text.
// sanitize.go prepares a document for parsing around an in-progress edit.
// resolve.go walks the tree to find the field path at a cursor.
package fieldpath

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"go.lsp.dev/protocol"
)

// Node is a structural YAML node: one of *Mapping, *Sequence or *Scalar.
//
// Ranges follow the hcl convention (1-based line and column). Start and End
// convert them to zero-based protocol positions, the coordinate system of an
// editor cursor.
type Node interface {
	Range() *hcl.Range
	Start() protocol.Position
	End() protocol.Position
	isNode()
}

type node struct {
	rng hcl.Range
}

func (n *node) Range() *hcl.Range {
	return &n.rng
}

func (n *node) Start() protocol.Position {
	return convertPosition(n.rng.Start)
}

func (n *node) End() protocol.Position {
	return convertPosition(n.rng.End)
}

func (*node) isNode() {}

// A Mapping owns its entries in document order.
type Mapping struct {
	node
	Entries []Entry
}

// An Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   *Scalar
	Value Node
}

type Sequence struct {
	node
	Items []Node
}

type Scalar struct {
	node
	Value string
}

// Path is an ordered chain of mapping keys, outermost first. The empty path
// names the document root.
type Path []string

func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	return strings.Join(p, ".")
}

func convertPosition(p hcl.Pos) protocol.Position {
	var defPos hcl.Pos
	var defProto protocol.Position
	if p == defPos {
		return defProto
	}
	contract.Assertf(p.Line != 0, "hcl.Pos line starts at 1")
	return protocol.Position{
		Line:      uint32(p.Line - 1),
		Character: uint32(p.Column - 1),
	}
}

// Returns true if p1 < p2
func posBefore(p1, p2 hcl.Pos) bool {
	return p1.Line < p2.Line ||
		(p1.Line == p2.Line && p1.Column < p2.Column)
}
