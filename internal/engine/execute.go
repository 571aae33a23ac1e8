package engine

import "github.com/cellardb/cellar/internal/storage"

// Execute runs a prepared statement. Selected rows are streamed to out
// in ascending id order.
func (e *Engine) Execute(stmt Statement, out func(storage.Row)) error {
	switch stmt.Kind {
	case StatementInsert:
		e.log.WithField("id", stmt.Row.ID).Debug("execute insert")
		return e.table.Insert(stmt.Row)
	case StatementSelect:
		e.log.Debug("execute select")
		e.table.SelectAll(out)
		return nil
	}
	return ErrUnhandledStatement
}
