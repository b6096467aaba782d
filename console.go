package radix

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors used for printing the nodes of a set to a terminal.
type Palette struct {
	Member *color.Color // nodes whose path is a member key
	Inner  *color.Color // pure branching nodes
	Lines  *color.Color // tree drawing
}

// DefaultPalette is used by Print and Fprint.
var DefaultPalette = Palette{
	Member: color.New(color.FgGreen, color.Bold),
	Inner:  color.New(color.FgBlue),
	Lines:  color.New(color.Faint),
}

// Print outputs the internal structure of a set to stdout, one edge per line
// (for debugging purposes). If stdout is a terminal, output is colored.
func Print(set *Set) error {
	return Fprint(os.Stdout, set)
}

// Fprint outputs the internal structure of a set to w, one edge per line.
// Member nodes are marked with an asterisk. Colors are used only if w is a
// terminal.
//
//	ε (3 keys)
//	├── "ca"
//	│   ├── "r" *
//	│   └── "t" *
//	└── "dog" *
func Fprint(w io.Writer, set *Set) error {
	p := printer{w: w}
	if isTerminal(w) {
		p.palette = &DefaultPalette
	}
	root := "ε"
	if set != nil && set.root != nil && set.root.terminal {
		root += " *"
	}
	p.write(p.memberOrInner(set != nil && set.root != nil && set.root.terminal), root)
	p.write(nil, fmt.Sprintf(" (%d keys)\n", set.Len()))
	if set == nil || set.root == nil {
		return p.err
	}
	p.children(set.root, "")
	return p.err
}

type printer struct {
	w       io.Writer
	palette *Palette
	err     error // first write error
}

func (p *printer) children(n *node, indent string) {
	for i, c := range n.children {
		branch, next := "├── ", "│   "
		if i == len(n.children)-1 {
			branch, next = "└── ", "    "
		}
		p.write(p.lines(), indent+branch)
		label := strconv.Quote(string(c.label))
		if c.terminal {
			label += " *"
		}
		p.write(p.memberOrInner(c.terminal), label)
		p.write(nil, "\n")
		p.children(c, indent+next)
	}
}

func (p *printer) lines() *color.Color {
	if p.palette == nil {
		return nil
	}
	return p.palette.Lines
}

func (p *printer) memberOrInner(member bool) *color.Color {
	if p.palette == nil {
		return nil
	}
	if member {
		return p.palette.Member
	}
	return p.palette.Inner
}

func (p *printer) write(c *color.Color, s string) {
	if p.err != nil {
		return
	}
	if c != nil {
		_, p.err = c.Fprint(p.w, s)
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
