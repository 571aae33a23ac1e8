package engine

import (
	"errors"

	"github.com/cellardb/cellar/internal/storage"
)

var (
	// ErrUnrecognizedStatement is returned by Prepare when the input
	// does not begin with a known keyword.
	ErrUnrecognizedStatement = errors.New("unrecognized keyword at start of statement")

	// ErrSyntax is returned by Prepare when a statement's arguments
	// are missing or malformed.
	ErrSyntax = errors.New("could not parse statement")

	// ErrNegativeID is returned by Prepare when an insert carries a
	// negative id.
	ErrNegativeID = errors.New("id must be positive")

	// ErrStringTooLong is returned by Prepare when a username or email
	// exceeds its column width.
	ErrStringTooLong = errors.New("string is too long")

	// ErrUnrecognizedCommand is returned by ExecuteMeta for an unknown
	// meta command.
	ErrUnrecognizedCommand = errors.New("unrecognized command")

	// ErrUnhandledStatement is returned by Execute for a statement
	// kind it does not implement.
	ErrUnhandledStatement = errors.New("unhandled statement")
)

// StatementKind discriminates prepared statements.
type StatementKind int

const (
	StatementInsert StatementKind = iota
	StatementSelect
)

// Statement is the prepared form of one line of input. Row is only
// meaningful for inserts.
type Statement struct {
	Kind StatementKind
	Row  storage.Row
}
