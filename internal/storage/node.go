package storage

import "encoding/binary"

// NodeType discriminates the two page interpretations.
type NodeType byte

const (
	NodeInternal NodeType = 0
	NodeLeaf     NodeType = 1
)

// NodeKind reports the node type recorded in a page's common header.
func NodeKind(p *Page) NodeType {
	return NodeType(p.Data[NodeTypeOffset])
}

func readCommonHeader(p *Page) (isRoot bool, parent uint32) {
	return p.Data[IsRootOffset] != 0, binary.LittleEndian.Uint32(p.Data[ParentOffset:])
}

func writeCommonHeader(p *Page, typ NodeType, isRoot bool, parent uint32) {
	p.Data[NodeTypeOffset] = byte(typ)
	if isRoot {
		p.Data[IsRootOffset] = 1
	} else {
		p.Data[IsRootOffset] = 0
	}
	binary.LittleEndian.PutUint32(p.Data[ParentOffset:], parent)
}
