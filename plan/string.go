package plan

import (
	"fmt"
	"strings"
)

// String renders the forest as a box-drawing tree per root: useful for
// debugging a join plan, not part of any required output surface.
func (f *JoinForest) String() string {
	var b strings.Builder
	for i, root := range f.Roots {
		if i > 0 {
			b.WriteByte('\n')
		}
		f.writeNode(&b, root, "", true)
	}
	return b.String()
}

func (f *JoinForest) writeNode(b *strings.Builder, idx int, prefix string, isRoot bool) {
	node := f.Nodes[idx]
	if isRoot {
		fmt.Fprintf(b, "%s\n", node.Atom.String())
	}
	for i, ce := range node.Children {
		last := i == len(node.Children)-1
		connector := "├─ "
		nextPrefix := prefix + "│  "
		if last {
			connector = "└─ "
			nextPrefix = prefix + "   "
		}
		fmt.Fprintf(b, "%s%s%s  [%s]\n", prefix, connector, f.Nodes[ce.to].Atom.String(), strings.Join(ce.sep, ", "))
		f.writeNode(b, ce.to, nextPrefix, false)
	}
}
