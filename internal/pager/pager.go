package pager

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cellardb/cellar/internal/storage"
)

var (
	// ErrPageOutOfRange is returned when a page number at or beyond
	// storage.MaxPages is requested.
	ErrPageOutOfRange = errors.New("pager: page number out of range")

	// ErrFlushUncached is returned when flushing a frame that holds no
	// data.
	ErrFlushUncached = errors.New("pager: flush of uncached page")
)

// Pager manages database paging to and from disk: a direct-mapped
// cache of storage.MaxPages frames over a flat file of
// storage.PageSize pages. There is no eviction; every cached frame is
// written back on Close.
type Pager struct {
	file       *os.File
	fileLength int64
	numPages   uint32
	pages      [storage.MaxPages]storage.Page
}

// Open opens or creates the database file at path.
func Open(path string) (*Pager, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("pager: open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	length := info.Size()
	return &Pager{
		file:       file,
		fileLength: length,
		numPages:   uint32((length + storage.PageSize - 1) / storage.PageSize),
	}, nil
}

// NumPages returns the number of pages currently known to the pager.
func (p *Pager) NumPages() uint32 {
	return p.numPages
}

// Get returns the frame for pageNum, populating it from disk on a
// cache miss. Reads past the end of the file yield a zeroed frame.
// Requesting the page equal to the current page count extends the
// pager by one page.
func (p *Pager) Get(pageNum uint32) (*storage.Page, error) {
	if pageNum >= storage.MaxPages {
		return nil, fmt.Errorf("%w: %d >= %d", ErrPageOutOfRange, pageNum, storage.MaxPages)
	}

	frame := &p.pages[pageNum]
	if !frame.Cached {
		if _, err := p.file.ReadAt(frame.Data[:], int64(pageNum)*storage.PageSize); err != nil && err != io.EOF {
			return nil, fmt.Errorf("pager: read page %d: %w", pageNum, err)
		}
		frame.Cached = true
		if pageNum == p.numPages {
			p.numPages++
		}
	}

	return frame, nil
}

// Allocate returns the next unused page number. The page is
// materialized as a zeroed frame by a subsequent Get.
func (p *Pager) Allocate() uint32 {
	return p.numPages
}

// Flush writes the frame for pageNum back to disk and marks it
// uncached.
func (p *Pager) Flush(pageNum uint32) error {
	frame := &p.pages[pageNum]
	if !frame.Cached {
		return fmt.Errorf("%w: %d", ErrFlushUncached, pageNum)
	}

	if _, err := p.file.WriteAt(frame.Data[:], int64(pageNum)*storage.PageSize); err != nil {
		return fmt.Errorf("pager: write page %d: %w", pageNum, err)
	}
	frame.Cached = false

	return nil
}

// Close flushes every cached frame and closes the file. Changes are
// durable only after Close succeeds.
func (p *Pager) Close() error {
	for i := uint32(0); i < storage.MaxPages; i++ {
		if !p.pages[i].Cached {
			continue
		}
		if err := p.Flush(i); err != nil {
			p.file.Close()
			return err
		}
	}

	if err := p.file.Sync(); err != nil {
		p.file.Close()
		return err
	}

	return p.file.Close()
}
