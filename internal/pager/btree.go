package pager

import (
	"errors"

	"github.com/cellardb/cellar/internal/storage"
)

var (
	// ErrDuplicateKey is returned by Insert when a row with the same
	// id already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrTableFull is returned by Insert when a required split cannot
	// allocate a page.
	ErrTableFull = errors.New("table full")
)

// Find descends from the root to the leaf that contains key, or would
// contain it after an insert. The returned cursor points at the
// smallest cell whose key is >= key.
func (t *Table) Find(key uint32) *Cursor {
	pageNum := t.rootPageNum

	for {
		page := t.page(pageNum)
		if storage.NodeKind(page) == storage.NodeLeaf {
			leaf := storage.ReadLeaf(page)
			i := leaf.Find(key)
			return &Cursor{
				table:      t,
				pageNum:    pageNum,
				cellNum:    i,
				endOfTable: i == leaf.NumCells && leaf.NextLeaf == 0,
			}
		}

		node := storage.ReadInternal(page)
		pageNum = node.ChildAt(node.FindIndex(key))
	}
}

// Insert adds a row to the table, keyed by its id.
func (t *Table) Insert(r storage.Row) error {
	cursor := t.Find(r.ID)

	page := t.page(cursor.pageNum)
	leaf := storage.ReadLeaf(page)
	if cursor.cellNum < leaf.NumCells && leaf.Cells[cursor.cellNum].Key == r.ID {
		return ErrDuplicateKey
	}

	var cell storage.LeafCell
	cell.Key = r.ID
	r.Serialize(cell.Value[:])

	if leaf.NumCells < storage.LeafMaxCells {
		// Shift cells right to make room at the cursor position.
		for i := leaf.NumCells; i > cursor.cellNum; i-- {
			leaf.Cells[i] = leaf.Cells[i-1]
		}
		leaf.Cells[cursor.cellNum] = cell
		leaf.NumCells++
		leaf.Serialize(page)
		return nil
	}

	if t.pager.NumPages() >= storage.MaxPages {
		return ErrTableFull
	}

	t.leafSplitInsert(cursor, cell)
	return nil
}

// leafSplitInsert divides a full leaf into two half-full leaves,
// placing the new cell at the cursor position, then wires the new leaf
// into the tree.
func (t *Table) leafSplitInsert(cursor *Cursor, cell storage.LeafCell) {
	oldPage := t.page(cursor.pageNum)
	oldLeaf := storage.ReadLeaf(oldPage)
	oldMax := oldLeaf.MaxKey()

	newPageNum := t.pager.Allocate()
	newPage := t.page(newPageNum)
	newLeaf := storage.NewLeaf()
	newLeaf.Parent = oldLeaf.Parent
	newLeaf.NextLeaf = oldLeaf.NextLeaf
	oldLeaf.NextLeaf = newPageNum

	// Distribute the MaxCells+1 cells between the two leaves,
	// high-to-low so moves within the old leaf never clobber a cell
	// that is still to be read.
	for i := storage.LeafMaxCells; i >= 0; i-- {
		dst := oldLeaf
		if i >= storage.LeafLeftSplitCount {
			dst = newLeaf
		}
		slot := i % storage.LeafLeftSplitCount

		switch {
		case uint32(i) == cursor.cellNum:
			dst.Cells[slot] = cell
		case uint32(i) > cursor.cellNum:
			dst.Cells[slot] = oldLeaf.Cells[i-1]
		default:
			dst.Cells[slot] = oldLeaf.Cells[i]
		}
	}

	oldLeaf.NumCells = storage.LeafLeftSplitCount
	newLeaf.NumCells = storage.LeafRightSplitCount
	oldLeaf.Serialize(oldPage)
	newLeaf.Serialize(newPage)

	if oldLeaf.IsRoot {
		t.createNewRoot(newPageNum)
		return
	}

	parentPageNum := oldLeaf.Parent
	parentPage := t.page(parentPageNum)
	parent := storage.ReadInternal(parentPage)
	parent.UpdateKey(oldMax, oldLeaf.MaxKey())
	parent.Serialize(parentPage)
	t.insertInternal(parentPageNum, newPageNum)
}

// createNewRoot handles a root split: the old root's contents move to
// a freshly allocated page, and page 0 becomes an internal node with
// exactly two children.
func (t *Table) createNewRoot(rightChildPageNum uint32) {
	rootPageFrame := t.page(t.rootPageNum)

	leftChildPageNum := t.pager.Allocate()
	leftPage := t.page(leftChildPageNum)
	leftPage.Data = rootPageFrame.Data

	leftMax := t.nodeMaxKey(leftPage)
	t.setNodeParent(leftPage, t.rootPageNum, false)

	rightPage := t.page(rightChildPageNum)
	t.setNodeParent(rightPage, t.rootPageNum, false)

	root := storage.NewInternal()
	root.IsRoot = true
	root.NumKeys = 1
	root.Cells[0] = storage.InternalCell{Key: leftMax, Child: leftChildPageNum}
	root.RightChild = rightChildPageNum
	root.Serialize(rootPageFrame)
}

// insertInternal registers a newly split-off child with its parent.
// Splitting internal nodes is not implemented; a full parent is a hard
// limit of the engine.
func (t *Table) insertInternal(parentPageNum, childPageNum uint32) {
	parentPage := t.page(parentPageNum)
	parent := storage.ReadInternal(parentPage)

	childMax := t.nodeMaxKey(t.page(childPageNum))
	index := parent.FindIndex(childMax)

	originalNumKeys := parent.NumKeys
	parent.NumKeys++
	if originalNumKeys >= storage.InternalMaxCells {
		t.log.Fatalf("internal node %d full: splitting internal nodes is not implemented", parentPageNum)
	}

	rightChildMax := t.nodeMaxKey(t.page(parent.RightChild))
	if childMax > rightChildMax {
		// New child becomes the right child; the old right child joins
		// the key list.
		parent.Cells[originalNumKeys] = storage.InternalCell{Key: rightChildMax, Child: parent.RightChild}
		parent.RightChild = childPageNum
	} else {
		for i := originalNumKeys; i > index; i-- {
			parent.Cells[i] = parent.Cells[i-1]
		}
		parent.Cells[index] = storage.InternalCell{Key: childMax, Child: childPageNum}
	}

	parent.Serialize(parentPage)
}

// nodeMaxKey returns the maximum key stored in the node on page,
// regardless of node kind.
func (t *Table) nodeMaxKey(page *storage.Page) uint32 {
	if storage.NodeKind(page) == storage.NodeLeaf {
		return storage.ReadLeaf(page).MaxKey()
	}
	return storage.ReadInternal(page).MaxKey()
}

// setNodeParent rewrites a node's parent pointer and root flag.
func (t *Table) setNodeParent(page *storage.Page, parent uint32, isRoot bool) {
	if storage.NodeKind(page) == storage.NodeLeaf {
		leaf := storage.ReadLeaf(page)
		leaf.Parent = parent
		leaf.IsRoot = isRoot
		leaf.Serialize(page)
		return
	}
	node := storage.ReadInternal(page)
	node.Parent = parent
	node.IsRoot = isRoot
	node.Serialize(page)
}
