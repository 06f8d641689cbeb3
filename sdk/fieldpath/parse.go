// Copyright 2022, Pulumi Corporation.  All rights reserved.

package fieldpath

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"go.lsp.dev/protocol"
	"gopkg.in/yaml.v3"
)

// File is the structural view of every document in a YAML stream.
type File struct {
	// Roots holds one node per non-empty document, in stream order.
	Roots []Node

	b *builder
}

// Pos converts a zero-based cursor into a position of f, byte offset
// included. Positions past the end of a line are clamped to the line's end
// byte; positions past the last line map to the end of the text.
func (f *File) Pos(cursor protocol.Position) hcl.Pos {
	return f.b.at(int(cursor.Line)+1, int(cursor.Character)+1)
}

// Parse builds the structural tree of text.
//
// Only positions and nesting are retained. Tags, anchors and comments are
// dropped; an alias is kept as a scalar holding its name.
func Parse(text string) (*File, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	var docs []*yaml.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing YAML structure: %w", err)
		}
		if len(doc.Content) == 0 {
			continue
		}
		docs = append(docs, doc.Content[0])
	}

	b := newBuilder(text)
	f := &File{b: b}
	for i, doc := range docs {
		end := b.eof()
		if i+1 < len(docs) {
			end = b.pos(docs[i+1])
		}
		f.Roots = append(f.Roots, b.build(doc, end))
	}
	return f, nil
}

// builder converts yaml.v3 nodes into position-annotated nodes. yaml.v3 only
// reports where a node starts; ends are derived from the start of whatever
// follows the node.
type builder struct {
	text string
	// The byte offset of the start of each line.
	lines []int
}

func newBuilder(text string) *builder {
	lines := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &builder{text: text, lines: lines}
}

func (b *builder) line(i int) string {
	start := b.lines[i]
	if i+1 < len(b.lines) {
		return b.text[start : b.lines[i+1]-1]
	}
	return b.text[start:]
}

// at returns the position of the 1-based line and column, filling in the byte
// offset.
func (b *builder) at(line, column int) hcl.Pos {
	if line < 1 {
		return hcl.Pos{}
	}
	if line > len(b.lines) {
		return b.eof()
	}
	l := b.line(line - 1)
	offset := 0
	for col := 1; col < column && offset < len(l); col++ {
		_, size := utf8.DecodeRuneInString(l[offset:])
		offset += size
	}
	return hcl.Pos{Line: line, Column: column, Byte: b.lines[line-1] + offset}
}

func (b *builder) pos(n *yaml.Node) hcl.Pos {
	return b.at(n.Line, n.Column)
}

func (b *builder) eof() hcl.Pos {
	last := len(b.lines) - 1
	return hcl.Pos{
		Line:   last + 1,
		Column: utf8.RuneCountInString(b.line(last)) + 1,
		Byte:   len(b.text),
	}
}

// build converts n, which must end no later than bound.
func (b *builder) build(n *yaml.Node, bound hcl.Pos) Node {
	start := b.pos(n)
	if start.Line == 0 {
		start = bound
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			return b.build(n.Content[0], bound)
		}
	case yaml.MappingNode:
		m := &Mapping{node: node{rng: hcl.Range{Start: start, End: bound}}}
		for i := 0; i+1 < len(n.Content); i += 2 {
			next := bound
			if i+2 < len(n.Content) {
				next = b.pos(n.Content[i+2])
			}
			m.Entries = append(m.Entries, Entry{
				Key:   b.scalar(n.Content[i], next),
				Value: b.build(n.Content[i+1], next),
			})
		}
		return m
	case yaml.SequenceNode:
		s := &Sequence{node: node{rng: hcl.Range{Start: start, End: bound}}}
		for i, item := range n.Content {
			next := bound
			if i+1 < len(n.Content) {
				next = b.pos(n.Content[i+1])
			}
			s.Items = append(s.Items, b.build(item, next))
		}
		return s
	}
	return b.scalar(n, bound)
}

// scalar converts a scalar (or a node treated as one, such as a complex key or
// an alias) into a *Scalar.
func (b *builder) scalar(n *yaml.Node, bound hcl.Pos) *Scalar {
	value := n.Value
	if n.Kind == yaml.AliasNode {
		value = "*" + value
	}
	start := b.pos(n)
	if start.Line == 0 {
		start = bound
	}
	end := bound
	if n.Kind == yaml.ScalarNode &&
		n.Style&(yaml.LiteralStyle|yaml.FoldedStyle) == 0 &&
		!strings.Contains(value, "\n") {
		width := utf8.RuneCountInString(value)
		if n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
			width += 2
		}
		end = b.at(start.Line, start.Column+width)
	} else if n.Kind == yaml.AliasNode {
		end = b.at(start.Line, start.Column+utf8.RuneCountInString(value))
	}
	if posBefore(end, start) {
		end = start
	}
	return &Scalar{
		node:  node{rng: hcl.Range{Start: start, End: end}},
		Value: value,
	}
}
