package bintree

import (
	"fmt"
	"io"
)

type nodeids[K any] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n *node[K]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Node labels are produced by p.
//
// Nodes shared between subtrees will be drawn once. Passing a forest, i.e.
// more than one tree, draws all of them into a single graph, making
// structural sharing between tree versions visible.
func Tree2Dot[K any](w io.Writer, p Printer[K], forest ...Tree[K]) error {
	if p == nil {
		p = ValuePrinter[K]{}
	}
	ids := newtable[K]()
	nodelist, edgelist := "", ""
	nilcnt := 0
	emitNil := func(parent int) {
		nilcnt++
		nilid := fmt.Sprintf("nil%d", nilcnt)
		nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
		edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", parent, nilid)
	}
	drawn := make(map[*node[K]]bool)
	for i, t := range forest {
		if t.root == nil {
			continue
		}
		rootname := fmt.Sprintf("tree%d", i)
		nodelist += fmt.Sprintf("\"%s\" [label=\"v%d\",shape=plaintext];\n", rootname, i)
		edgelist += fmt.Sprintf("\"%s\" -> \"%d\";\n", rootname, ids.alloc(t.root))
		stack := []*node[K]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if drawn[n] {
				continue
			}
			drawn[n] = true
			ID := ids.alloc(n)
			isleaf := n.left == nil && n.right == nil
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", ID, dotEscape(p.Str(n.key)), nodeDotStyles(isleaf))
			if isleaf {
				continue
			}
			for _, child := range [2]*node[K]{n.left, n.right} {
				if child == nil {
					emitNil(ID)
					continue
				}
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				stack = append(stack, child)
			}
		}
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist)
	write(edgelist)
	write("}\n")
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
