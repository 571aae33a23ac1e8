package engine

import (
	"fmt"
	"io"

	"github.com/cellardb/cellar/internal/storage"
)

// ExecuteMeta runs a dot-prefixed meta command, writing any output to
// w. It returns true when the command asks the session to end.
func (e *Engine) ExecuteMeta(input string, w io.Writer) (exit bool, err error) {
	switch input {
	case ".exit":
		return true, nil

	case ".btree":
		fmt.Fprintln(w, "Tree:")
		e.table.WriteTree(w)
		return false, nil

	case ".constants":
		fmt.Fprintln(w, "Constants:")
		fmt.Fprintf(w, "ROW_SIZE: %d\n", storage.RowSize)
		fmt.Fprintf(w, "COMMON_HEADER_SIZE: %d\n", storage.CommonHeaderSize)
		fmt.Fprintf(w, "LEAF_HEADER_SIZE: %d\n", storage.LeafHeaderSize)
		fmt.Fprintf(w, "LEAF_CELL_SIZE: %d\n", storage.LeafCellSize)
		fmt.Fprintf(w, "LEAF_SPACE_FOR_CELLS: %d\n", storage.LeafSpaceForCells)
		fmt.Fprintf(w, "LEAF_MAX_CELLS: %d\n", storage.LeafMaxCells)
		return false, nil
	}

	return false, ErrUnrecognizedCommand
}
