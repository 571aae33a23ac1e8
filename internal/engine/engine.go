// Package engine turns lines of input into operations against a
// single-table database: a prepare step that parses statements, an
// execute step that runs them against the tree, and a small set of
// meta commands for inspection and shutdown.
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/cellardb/cellar/internal/pager"
)

// Engine binds a prepared-statement executor to an open table.
type Engine struct {
	log   logrus.FieldLogger
	table *pager.Table
}

// Start opens the database file at path and returns an engine over it.
func Start(path string, log logrus.FieldLogger) (*Engine, error) {
	table, err := pager.OpenTable(path, log)
	if err != nil {
		return nil, err
	}
	return &Engine{log: log, table: table}, nil
}

// Close flushes and closes the underlying table.
func (e *Engine) Close() error {
	return e.table.Close()
}
