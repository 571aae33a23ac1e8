package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellardb/cellar/internal/storage"
)

func TestPrepare_Insert(t *testing.T) {
	assert := require.New(t)

	stmt, err := Prepare("insert 1 user1 person1@example.com")
	assert.NoError(err)
	assert.Equal(StatementInsert, stmt.Kind)
	assert.Equal(storage.Row{ID: 1, Username: "user1", Email: "person1@example.com"}, stmt.Row)
}

func TestPrepare_InsertCollapsesSpaceRuns(t *testing.T) {
	assert := require.New(t)

	stmt, err := Prepare("  insert   2   bob   bob@example.com  ")
	assert.NoError(err)
	assert.Equal(uint32(2), stmt.Row.ID)
	assert.Equal("bob", stmt.Row.Username)
}

func TestPrepare_Select(t *testing.T) {
	assert := require.New(t)

	stmt, err := Prepare("select")
	assert.NoError(err)
	assert.Equal(StatementSelect, stmt.Kind)
}

func TestPrepare_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrUnrecognizedStatement},
		{"blank", "   ", ErrUnrecognizedStatement},
		{"unknown keyword", "update 1 a b", ErrUnrecognizedStatement},
		{"missing args", "insert", ErrSyntax},
		{"too few args", "insert 1 a", ErrSyntax},
		{"too many args", "insert 1 a b c", ErrSyntax},
		{"non-numeric id", "insert a b c", ErrSyntax},
		{"trailing garbage in id", "insert 1x a b", ErrSyntax},
		{"negative id", "insert -1 a b", ErrNegativeID},
		{"username too long", "insert 1 " + strings.Repeat("u", storage.MaxUsernameLen+1) + " e@x", ErrStringTooLong},
		{"email too long", "insert 1 u " + strings.Repeat("e", storage.MaxEmailLen+1), ErrStringTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Prepare(tc.input)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPrepare_BoundaryWidthsAccepted(t *testing.T) {
	assert := require.New(t)

	input := "insert 1 " + strings.Repeat("u", storage.MaxUsernameLen) +
		" " + strings.Repeat("e", storage.MaxEmailLen)
	stmt, err := Prepare(input)
	assert.NoError(err)
	assert.Len(stmt.Row.Username, storage.MaxUsernameLen)
	assert.Len(stmt.Row.Email, storage.MaxEmailLen)
}
