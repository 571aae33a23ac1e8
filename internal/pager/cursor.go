package pager

import "github.com/cellardb/cellar/internal/storage"

// Cursor is a position within the table's tree: a page number, a cell
// index within that page, and an end-of-table flag. Cursors are cheap
// values; a structural change to the tree invalidates outstanding
// cursors and callers must re-Find.
type Cursor struct {
	table      *Table
	pageNum    uint32
	cellNum    uint32
	endOfTable bool
}

// EndOfTable reports whether the cursor has moved past the last row.
func (c *Cursor) EndOfTable() bool {
	return c.endOfTable
}

// Value returns the row at the cursor's position.
func (c *Cursor) Value() storage.Row {
	leaf := storage.ReadLeaf(c.table.page(c.pageNum))
	return storage.DeserializeRow(leaf.Cells[c.cellNum].Value[:])
}

// Advance moves the cursor to the next cell, following the sibling
// pointer when the current leaf is exhausted.
func (c *Cursor) Advance() {
	leaf := storage.ReadLeaf(c.table.page(c.pageNum))

	c.cellNum++
	if c.cellNum < leaf.NumCells {
		return
	}

	if leaf.NextLeaf == 0 {
		c.endOfTable = true
		return
	}

	c.pageNum = leaf.NextLeaf
	c.cellNum = 0
}
