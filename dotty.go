package radix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// each walks the nodes of the trie in pre-order, i.e. parents before children
// and children in edge order. Walking stops when fn returns an error.
func (s *Set) each(fn func(n *node, parent *node, depth int) error) error {
	if s == nil || s.root == nil {
		return nil
	}
	return eachNode(s.root, nil, 0, fn)
}

func eachNode(n, parent *node, depth int, fn func(*node, *node, int) error) error {
	if err := fn(n, parent, depth); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := eachNode(c, n, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Set2Dot outputs the internal structure of a set in Graphviz DOT format
// (for debugging purposes). Nodes are numbered in walk order, starting at 1
// for the root.
func Set2Dot(set *Set, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := make(map[*node]int) // parents are numbered before their children
	var nodelist, edgelist strings.Builder
	err := set.each(func(n *node, parent *node, depth int) error {
		ID := len(ids) + 1
		ids[n] = ID
		fmt.Fprintf(&nodelist, "\"%d\" [label=%s %s];\n", ID, dotLabel(n, parent == nil),
			nodeDotStyles(n, parent == nil))
		if parent != nil {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ids[parent], ID)
		}
		return nil
	})
	if err != nil {
		T().Errorf("radix DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func dotLabel(n *node, isRoot bool) string {
	if isRoot {
		return "\"\""
	}
	return strconv.Quote(strconv.Quote(string(n.label)))
}

func nodeDotStyles(n *node, isRoot bool) string {
	s := ",style=filled"
	if isRoot {
		s += ",color=black,fillcolor=white,shape=point"
		if n.terminal {
			s += ",shape=doublecircle,width=.2"
		}
		return s
	}
	if n.terminal {
		s += ",fillcolor=\"#a3d7e4\",shape=box"
	} else {
		s += ",color=black,fillcolor=white,shape=ellipse"
	}
	return s
}
