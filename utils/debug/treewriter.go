// Package debug has helpers producing human readable dumps of internal
// structures. Output format is not stable and exists for troubleshooting only.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type node struct {
	depth int
	text  string
}

// TreeWriter collects lines with their nesting depth and renders them as a
// tree with guide lines. Depth of a line must not exceed depth of previous
// line by more than one.
type TreeWriter struct {
	nodes []node
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

// Line adds formatted line at requested depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.nodes = append(tw.nodes, node{depth: max(depth, 0), text: fmt.Sprintf(format, args...)})
}

// TextBlock adds labeled quoted value, empty value is left empty.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	if len(value) > 0 {
		value = strconv.Quote(value)
	}
	tw.Line(depth, "%s: %s", label, value)
}

// TextPreview quotes text shortened to limit runes, limit 0 means no limit.
func (tw *TreeWriter) TextPreview(s string, limit int) string {
	return Preview(s, limit)
}

// Preview quotes text shortened to limit runes, limit 0 means no limit.
func Preview(s string, limit int) string {
	if r := []rune(s); limit > 0 && len(r) > limit {
		s = string(r[:limit]) + "..."
	}
	return strconv.Quote(s)
}

func (tw *TreeWriter) String() string {
	var b strings.Builder
	for i, n := range tw.nodes {
		for level := 1; level <= n.depth; level++ {
			more := tw.continues(i, level)
			switch {
			case level < n.depth && more:
				b.WriteString("│   ")
			case level < n.depth:
				b.WriteString("    ")
			case more:
				b.WriteString("├── ")
			default:
				b.WriteString("└── ")
			}
		}
		b.WriteString(n.text)
		b.WriteByte('\n')
	}
	return b.String()
}

// continues reports whether another line at level follows node i before
// tree goes above that level.
func (tw *TreeWriter) continues(i, level int) bool {
	for _, n := range tw.nodes[i+1:] {
		if n.depth < level {
			return false
		}
		if n.depth == level {
			return true
		}
	}
	return false
}
