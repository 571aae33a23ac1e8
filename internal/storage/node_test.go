package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeaf_SerializeRoundTrip(t *testing.T) {
	assert := require.New(t)

	leaf := NewLeaf()
	leaf.IsRoot = true
	leaf.Parent = 9
	leaf.NextLeaf = 3
	leaf.NumCells = 2
	leaf.Cells[0].Key = 10
	leaf.Cells[1].Key = 20
	rowA := Row{ID: 10, Username: "a", Email: "a@x"}
	rowB := Row{ID: 20, Username: "b", Email: "b@x"}
	rowA.Serialize(leaf.Cells[0].Value[:])
	rowB.Serialize(leaf.Cells[1].Value[:])

	page := &Page{}
	leaf.Serialize(page)

	assert.Equal(NodeLeaf, NodeKind(page))
	got := ReadLeaf(page)
	assert.Equal(leaf, got)
}

func TestLeaf_Find(t *testing.T) {
	assert := require.New(t)

	leaf := NewLeaf()
	leaf.NumCells = 3
	leaf.Cells[0].Key = 10
	leaf.Cells[1].Key = 20
	leaf.Cells[2].Key = 30

	assert.Equal(uint32(0), leaf.Find(5))
	assert.Equal(uint32(0), leaf.Find(10))
	assert.Equal(uint32(1), leaf.Find(15))
	assert.Equal(uint32(2), leaf.Find(30))
	assert.Equal(uint32(3), leaf.Find(31))
}

func TestInternal_SerializeRoundTrip(t *testing.T) {
	assert := require.New(t)

	node := NewInternal()
	node.Parent = 4
	node.NumKeys = 2
	node.RightChild = 7
	node.Cells[0] = InternalCell{Key: 5, Child: 1}
	node.Cells[1] = InternalCell{Key: 12, Child: 2}

	page := &Page{}
	node.Serialize(page)

	assert.Equal(NodeInternal, NodeKind(page))
	got := ReadInternal(page)
	assert.Equal(node, got)
}

func TestInternal_FindIndexAndChildAt(t *testing.T) {
	assert := require.New(t)

	node := NewInternal()
	node.NumKeys = 2
	node.RightChild = 9
	node.Cells[0] = InternalCell{Key: 5, Child: 1}
	node.Cells[1] = InternalCell{Key: 12, Child: 2}

	assert.Equal(uint32(0), node.FindIndex(3))
	assert.Equal(uint32(0), node.FindIndex(5))
	assert.Equal(uint32(1), node.FindIndex(6))
	assert.Equal(uint32(2), node.FindIndex(13))

	assert.Equal(uint32(1), node.ChildAt(0))
	assert.Equal(uint32(2), node.ChildAt(1))
	assert.Equal(uint32(9), node.ChildAt(2))
}

func TestInternal_UpdateKey(t *testing.T) {
	assert := require.New(t)

	node := NewInternal()
	node.NumKeys = 2
	node.Cells[0] = InternalCell{Key: 5, Child: 1}
	node.Cells[1] = InternalCell{Key: 12, Child: 2}

	node.UpdateKey(5, 8)
	assert.Equal(uint32(8), node.Cells[0].Key)

	// A key not in the list belongs to the right child and needs no
	// separator rewrite.
	node.UpdateKey(99, 100)
	assert.Equal(uint32(8), node.Cells[0].Key)
	assert.Equal(uint32(12), node.Cells[1].Key)
}

func TestLayout_DerivedConstants(t *testing.T) {
	assert := require.New(t)

	assert.Equal(293, RowSize)
	assert.Equal(297, LeafCellSize)
	assert.Equal(13, LeafMaxCells)
	assert.Equal(LeafMaxCells+1, LeafLeftSplitCount+LeafRightSplitCount)
	assert.True(LeafHeaderSize+LeafMaxCells*LeafCellSize <= PageSize)
	assert.True(InternalHeaderSize+InternalMaxCells*InternalCellSize <= PageSize)
}
