package storage

import "encoding/binary"

// LeafCell is a key paired with a serialized row.
type LeafCell struct {
	Key   uint32
	Value [RowSize]byte
}

// LeafNode is a structured view over a leaf page. Mutations apply to
// the view only; Serialize writes the view back into a page.
type LeafNode struct {
	IsRoot   bool
	Parent   uint32
	NumCells uint32
	NextLeaf uint32
	Cells    [LeafMaxCells]LeafCell
}

// NewLeaf returns an empty leaf view.
func NewLeaf() *LeafNode {
	return &LeafNode{}
}

// ReadLeaf parses a leaf view from a page's bytes.
func ReadLeaf(p *Page) *LeafNode {
	l := &LeafNode{}
	l.IsRoot, l.Parent = readCommonHeader(p)
	l.NumCells = binary.LittleEndian.Uint32(p.Data[LeafNumCellsOffset:])
	l.NextLeaf = binary.LittleEndian.Uint32(p.Data[LeafNextLeafOffset:])
	for i := uint32(0); i < l.NumCells && i < LeafMaxCells; i++ {
		cell := p.Data[LeafHeaderSize+int(i)*LeafCellSize:]
		l.Cells[i].Key = binary.LittleEndian.Uint32(cell)
		copy(l.Cells[i].Value[:], cell[LeafKeySize:LeafCellSize])
	}
	return l
}

// Serialize writes the view's fields back into p at the fixed layout
// offsets.
func (l *LeafNode) Serialize(p *Page) {
	writeCommonHeader(p, NodeLeaf, l.IsRoot, l.Parent)
	binary.LittleEndian.PutUint32(p.Data[LeafNumCellsOffset:], l.NumCells)
	binary.LittleEndian.PutUint32(p.Data[LeafNextLeafOffset:], l.NextLeaf)
	for i := uint32(0); i < l.NumCells && i < LeafMaxCells; i++ {
		cell := p.Data[LeafHeaderSize+int(i)*LeafCellSize:]
		binary.LittleEndian.PutUint32(cell, l.Cells[i].Key)
		copy(cell[LeafKeySize:LeafCellSize], l.Cells[i].Value[:])
	}
}

// MaxKey returns the key of the last cell.
func (l *LeafNode) MaxKey() uint32 {
	return l.Cells[l.NumCells-1].Key
}

// Find returns the smallest index whose key is >= key, or NumCells if
// every key is smaller.
func (l *LeafNode) Find(key uint32) uint32 {
	lo, hi := uint32(0), l.NumCells
	for lo < hi {
		mid := (lo + hi) / 2
		if l.Cells[mid].Key < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
