package decode

import (
	"strconv"
	"strings"
)

// Draw renders the issues carried by err as a tree grouped by path:
//
//	required property "num"
//	└─ cannot decode -5: positive
//
// Errors that are not Issues are rendered with their Error text.
func Draw(err error) string {
	if err == nil {
		return ""
	}
	iss, ok := AsIssues(err)
	if !ok {
		return err.Error()
	}
	root := &drawNode{}
	for _, it := range iss {
		n := root
		for _, seg := range segmentsOf(it) {
			n = n.child(seg)
		}
		n.leaves = append(n.leaves, leafText(it))
	}
	lines := append([]string{}, root.leaves...)
	for _, c := range root.children {
		lines = append(lines, c.lines()...)
	}
	return strings.Join(lines, "\n")
}

type drawNode struct {
	segment  segment
	leaves   []string
	children []*drawNode
}

func (n *drawNode) child(seg segment) *drawNode {
	for _, c := range n.children {
		if c.segment == seg {
			return c
		}
	}
	c := &drawNode{segment: seg}
	n.children = append(n.children, c)
	return c
}

// lines renders the node header followed by its subtree.
func (n *drawNode) lines() []string {
	out := []string{n.label()}
	var entries [][]string
	for _, l := range n.leaves {
		entries = append(entries, []string{l})
	}
	for _, c := range n.children {
		entries = append(entries, c.lines())
	}
	for i, e := range entries {
		last := i == len(entries)-1
		head, tail := "├─ ", "│  "
		if last {
			head, tail = "└─ ", "   "
		}
		for j, l := range e {
			if j == 0 {
				out = append(out, head+l)
			} else {
				out = append(out, tail+l)
			}
		}
	}
	return out
}

func (n *drawNode) label() string {
	if n.segment.index {
		return "required index " + n.segment.name
	}
	return "required property " + strconv.Quote(n.segment.name)
}

func leafText(it Issue) string {
	if it.InputFragment == "" {
		return it.Message
	}
	return "cannot decode " + it.InputFragment + ": " + it.Message
}
