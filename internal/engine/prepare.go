package engine

import (
	"strconv"
	"strings"

	"github.com/cellardb/cellar/internal/storage"
)

// Prepare parses one line of input into a Statement. The statement
// language has two keywords: "insert" takes an id, a username, and an
// email; "select" takes no arguments.
func Prepare(input string) (Statement, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return Statement{}, ErrUnrecognizedStatement
	}

	switch tokens[0] {
	case "insert":
		return prepareInsert(tokens)
	case "select":
		return Statement{Kind: StatementSelect}, nil
	}

	return Statement{}, ErrUnrecognizedStatement
}

func prepareInsert(tokens []string) (Statement, error) {
	if len(tokens) != 4 {
		return Statement{}, ErrSyntax
	}

	id, err := strconv.ParseInt(tokens[1], 10, 64)
	if err != nil {
		return Statement{}, ErrSyntax
	}
	if id < 0 {
		return Statement{}, ErrNegativeID
	}

	username, email := tokens[2], tokens[3]
	if len(username) > storage.MaxUsernameLen || len(email) > storage.MaxEmailLen {
		return Statement{}, ErrStringTooLong
	}

	return Statement{
		Kind: StatementInsert,
		Row: storage.Row{
			ID:       uint32(id),
			Username: username,
			Email:    email,
		},
	}, nil
}
