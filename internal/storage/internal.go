package storage

import "encoding/binary"

// InternalCell pairs a key with the page number of the child whose
// maximum key it is.
type InternalCell struct {
	Key   uint32
	Child uint32
}

// InternalNode is a structured view over an internal page. The ith key
// is the maximum key of the ith child; RightChild covers keys greater
// than every listed key.
type InternalNode struct {
	IsRoot     bool
	Parent     uint32
	NumKeys    uint32
	RightChild uint32
	Cells      [InternalMaxCells]InternalCell
}

// NewInternal returns an empty internal view.
func NewInternal() *InternalNode {
	return &InternalNode{}
}

// ReadInternal parses an internal view from a page's bytes.
func ReadInternal(p *Page) *InternalNode {
	n := &InternalNode{}
	n.IsRoot, n.Parent = readCommonHeader(p)
	n.NumKeys = binary.LittleEndian.Uint32(p.Data[InternalNumKeysOffset:])
	n.RightChild = binary.LittleEndian.Uint32(p.Data[InternalRightChildOffset:])
	for i := uint32(0); i < n.NumKeys && i < InternalMaxCells; i++ {
		cell := p.Data[InternalHeaderSize+int(i)*InternalCellSize:]
		n.Cells[i].Key = binary.LittleEndian.Uint32(cell)
		n.Cells[i].Child = binary.LittleEndian.Uint32(cell[InternalKeySize:])
	}
	return n
}

// Serialize writes the view's fields back into p at the fixed layout
// offsets.
func (n *InternalNode) Serialize(p *Page) {
	writeCommonHeader(p, NodeInternal, n.IsRoot, n.Parent)
	binary.LittleEndian.PutUint32(p.Data[InternalNumKeysOffset:], n.NumKeys)
	binary.LittleEndian.PutUint32(p.Data[InternalRightChildOffset:], n.RightChild)
	for i := uint32(0); i < n.NumKeys && i < InternalMaxCells; i++ {
		cell := p.Data[InternalHeaderSize+int(i)*InternalCellSize:]
		binary.LittleEndian.PutUint32(cell, n.Cells[i].Key)
		binary.LittleEndian.PutUint32(cell[InternalKeySize:], n.Cells[i].Child)
	}
}

// MaxKey returns the key of the last cell.
func (n *InternalNode) MaxKey() uint32 {
	return n.Cells[n.NumKeys-1].Key
}

// FindIndex returns the smallest index whose key is >= key, or NumKeys
// if every key is smaller (the right-child branch).
func (n *InternalNode) FindIndex(key uint32) uint32 {
	lo, hi := uint32(0), n.NumKeys
	for lo < hi {
		mid := (lo + hi) / 2
		if n.Cells[mid].Key < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// ChildAt returns the page number of the child at index i, where
// i == NumKeys selects the right child.
func (n *InternalNode) ChildAt(i uint32) uint32 {
	if i == n.NumKeys {
		return n.RightChild
	}
	return n.Cells[i].Child
}

// UpdateKey replaces oldKey with newKey in the key list. A key that is
// not present is left alone; its subtree is reachable through the
// right-child pointer and needs no separator.
func (n *InternalNode) UpdateKey(oldKey, newKey uint32) {
	i := n.FindIndex(oldKey)
	if i < n.NumKeys && n.Cells[i].Key == oldKey {
		n.Cells[i].Key = newKey
	}
}
