package pager

import (
	"fmt"
	"io"
	"strings"

	"github.com/cellardb/cellar/internal/storage"
)

// WriteTree prints the tree rooted at the table's root page, one node
// per line, indented two spaces per level.
func (t *Table) WriteTree(w io.Writer) {
	t.writeNode(w, t.rootPageNum, 0)
}

func (t *Table) writeNode(w io.Writer, pageNum, depth uint32) {
	page := t.page(pageNum)
	indent := strings.Repeat("  ", int(depth))

	if storage.NodeKind(page) == storage.NodeLeaf {
		leaf := storage.ReadLeaf(page)
		fmt.Fprintf(w, "%s- leaf (size %d)\n", indent, leaf.NumCells)
		for i := uint32(0); i < leaf.NumCells; i++ {
			fmt.Fprintf(w, "%s  - %d\n", indent, leaf.Cells[i].Key)
		}
		return
	}

	node := storage.ReadInternal(page)
	fmt.Fprintf(w, "%s- internal (size %d)\n", indent, node.NumKeys)
	for i := uint32(0); i < node.NumKeys; i++ {
		t.writeNode(w, node.Cells[i].Child, depth+1)
		fmt.Fprintf(w, "%s  - key %d\n", indent, node.Cells[i].Key)
	}
	t.writeNode(w, node.RightChild, depth+1)
}
