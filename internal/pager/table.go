package pager

import (
	"github.com/sirupsen/logrus"

	"github.com/cellardb/cellar/internal/storage"
)

// rootPage is the fixed page number of the tree root.
const rootPage = 0

// Table owns a Pager and the root of the b+ tree holding the table's
// rows. All access to rows goes through Find, Insert, and cursors.
type Table struct {
	pager       *Pager
	rootPageNum uint32
	log         logrus.FieldLogger
}

// OpenTable opens or creates the database file at path. A fresh file
// is initialized with an empty leaf as its root.
func OpenTable(path string, log logrus.FieldLogger) (*Table, error) {
	p, err := Open(path)
	if err != nil {
		return nil, err
	}

	t := &Table{
		pager:       p,
		rootPageNum: rootPage,
		log:         log,
	}

	if p.NumPages() == 0 {
		page, err := p.Get(rootPage)
		if err != nil {
			return nil, err
		}
		root := storage.NewLeaf()
		root.IsRoot = true
		root.Serialize(page)
	}

	log.WithField("path", path).Debug("table open")

	return t, nil
}

// Start returns a cursor positioned at the smallest key in the table.
func (t *Table) Start() *Cursor {
	return t.Find(0)
}

// SelectAll streams every row in ascending key order.
func (t *Table) SelectAll(fn func(storage.Row)) {
	for c := t.Start(); !c.EndOfTable(); c.Advance() {
		fn(c.Value())
	}
}

// Close flushes all cached pages and closes the underlying file.
func (t *Table) Close() error {
	t.log.Debug("table close")
	return t.pager.Close()
}

// page loads a page that is expected to be reachable; pager failures
// here mean the tree references a page the file cannot hold, which is
// not recoverable.
func (t *Table) page(pageNum uint32) *storage.Page {
	page, err := t.pager.Get(pageNum)
	if err != nil {
		t.log.Fatalf("get page %d: %v", pageNum, err)
	}
	return page
}
