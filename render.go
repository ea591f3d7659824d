package bintree

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/width"
)

// Printer produces the text for a key in debug output of a tree.
type Printer[K any] interface {
	Str(key K) string
}

// PrinterFunc adapts an ordinary function to the Printer interface.
type PrinterFunc[K any] func(key K) string

// Str calls f(key).
func (f PrinterFunc[K]) Str(key K) string {
	return f(key)
}

// ValuePrinter prints the textual value of keys, as fmt.Sprint does.
type ValuePrinter[K any] struct{}

// Str returns fmt.Sprint(key).
func (ValuePrinter[K]) Str(key K) string {
	return fmt.Sprint(key)
}

// SizePrinter prints the storage size of keys in bytes.
type SizePrinter[K any] struct{}

// Str returns the decimal storage size of key.
func (SizePrinter[K]) Str(key K) string {
	return strconv.FormatUint(uint64(sizeOf(key)), 10)
}

// cellWidth is the number of display columns a node label occupies.
const cellWidth = 8

// Render returns an ASCII drawing of t, for debugging purposes.
//
// Every node is printed on a line of its own, the left subtree of a node
// above it and the right subtree below it. Lines are indented by depth.
// A label looks like
//
//	/--{42}-<
//
// The first character tells whether the node is the left (/) or right (\)
// child of its parent; it is missing for the root. The text between braces
// is produced by p. Labels are cut or padded to a fixed width, padding with
// '-' if the node has children. The trailing glyph shows which children are
// present: < for both, / for left only, \ for right only, nothing for leafs.
//
// The empty tree renders as the empty string.
func Render[K any](t Tree[K], p Printer[K]) string {
	if t.root == nil {
		return ""
	}
	if p == nil {
		T().Debugf("bintree render: no printer given, printing values")
		p = ValuePrinter[K]{}
	}
	type frame struct {
		n     *node[K]
		depth int
		from  byte // 0 for root, '/' or '\\' for left or right child
	}
	var lines []string
	var stack []frame
	cur := frame{n: t.root}
	for cur.n != nil || len(stack) > 0 {
		for cur.n != nil {
			stack = append(stack, cur)
			cur = frame{n: cur.n.left, depth: cur.depth + 1, from: '/'}
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lines = append(lines, renderLine(f.n, f.depth, f.from, p))
		cur = frame{n: f.n.right, depth: f.depth + 1, from: '\\'}
	}
	return strings.Join(lines, "\n")
}

func renderLine[K any](n *node[K], depth int, from byte, p Printer[K]) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", (cellWidth+1)*depth))
	label := "--{" + p.Str(n.key) + "}"
	if from != 0 {
		label = string(from) + label
	}
	pad := ' '
	if n.left != nil || n.right != nil {
		pad = '-'
	}
	sb.WriteString(fitCell(label, cellWidth, pad))
	sb.WriteString(branchGlyph(n))
	return sb.String()
}

func branchGlyph[K any](n *node[K]) string {
	switch {
	case n.left != nil && n.right != nil:
		return "<"
	case n.left != nil:
		return "/"
	case n.right != nil:
		return "\\"
	}
	return ""
}

var setupGraphemes sync.Once

// displayWidth returns the number of fixed-width columns s occupies in a
// western context. Each grapheme takes one column, or two if its base rune is
// East Asian wide or fullwidth. Ambiguous and neutral runes are narrow.
func displayWidth(s string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		w += graphemeWidth(gstr.Nth(i))
	}
	return w
}

func graphemeWidth(g string) int {
	r, _ := utf8.DecodeRuneInString(g)
	if r == utf8.RuneError {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// fitCell cuts s to cols columns or pads it with pad up to cols columns.
func fitCell(s string, cols int, pad rune) string {
	w := displayWidth(s)
	for w > cols && len(s) > 0 {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
		w = displayWidth(s)
	}
	if w < cols {
		s += strings.Repeat(string(pad), cols-w)
	}
	return s
}
