package storage

// PageSize is the size of a single database page. Every on-disk and
// in-memory layout constant below derives from it and the row schema.
const PageSize = 4096

// MaxPages caps the database file at MaxPages * PageSize bytes.
const MaxPages = 100

// Row layout. Text columns are fixed width with one reserved
// terminator byte.
const (
	MaxUsernameLen = 32
	MaxEmailLen    = 255

	IDSize       = 4
	UsernameSize = MaxUsernameLen + 1
	EmailSize    = MaxEmailLen + 1

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = IDSize + UsernameSize + EmailSize
)

// Common node header, the prefix of every page.
const (
	NodeTypeSize   = 1
	NodeTypeOffset = 0
	IsRootSize     = 1
	IsRootOffset   = NodeTypeOffset + NodeTypeSize
	ParentSize     = 4
	ParentOffset   = IsRootOffset + IsRootSize

	CommonHeaderSize = NodeTypeSize + IsRootSize + ParentSize
)

// Leaf node layout.
const (
	LeafNumCellsSize   = 4
	LeafNumCellsOffset = CommonHeaderSize
	LeafNextLeafSize   = 4
	LeafNextLeafOffset = LeafNumCellsOffset + LeafNumCellsSize
	LeafHeaderSize     = CommonHeaderSize + LeafNumCellsSize + LeafNextLeafSize

	LeafKeySize       = 4
	LeafValueSize     = RowSize
	LeafCellSize      = LeafKeySize + LeafValueSize
	LeafSpaceForCells = PageSize - LeafHeaderSize
	LeafMaxCells      = LeafSpaceForCells / LeafCellSize

	LeafRightSplitCount = (LeafMaxCells + 2) / 2
	LeafLeftSplitCount  = (LeafMaxCells + 1) - LeafRightSplitCount
)

// Internal node layout.
const (
	InternalNumKeysSize      = 4
	InternalNumKeysOffset    = CommonHeaderSize
	InternalRightChildSize   = 4
	InternalRightChildOffset = InternalNumKeysOffset + InternalNumKeysSize
	InternalHeaderSize       = CommonHeaderSize + InternalNumKeysSize + InternalRightChildSize

	InternalKeySize   = 4
	InternalChildSize = 4
	InternalCellSize  = InternalKeySize + InternalChildSize
	InternalMaxCells  = (PageSize - InternalHeaderSize) / InternalCellSize
)
