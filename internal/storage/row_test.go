package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRow_RoundTrip(t *testing.T) {
	assert := require.New(t)

	row := Row{ID: 42, Username: "alice", Email: "alice@example.com"}

	var buf [RowSize]byte
	row.Serialize(buf[:])

	got := DeserializeRow(buf[:])
	assert.Equal(row, got)
}

func TestRow_MaxWidthFields(t *testing.T) {
	assert := require.New(t)

	row := Row{
		ID:       1,
		Username: strings.Repeat("u", MaxUsernameLen),
		Email:    strings.Repeat("e", MaxEmailLen),
	}

	var buf [RowSize]byte
	row.Serialize(buf[:])

	got := DeserializeRow(buf[:])
	assert.Equal(row, got)
	assert.Len(got.Username, MaxUsernameLen)
	assert.Len(got.Email, MaxEmailLen)
}

func TestRow_String(t *testing.T) {
	assert := require.New(t)

	row := Row{ID: 7, Username: "bob", Email: "bob@example.com"}
	assert.Equal("(7, bob, bob@example.com)", row.String())
}

func TestRow_SerializeZeroFillsShortFields(t *testing.T) {
	assert := require.New(t)

	var buf [RowSize]byte
	for i := range buf {
		buf[i] = 0xFF
	}

	row := Row{ID: 3, Username: "ab", Email: "c@d"}
	row.Serialize(buf[:])

	// Bytes past the text must be zero so reopening a page never
	// resurrects a longer value written earlier.
	for i := UsernameOffset + len(row.Username); i < UsernameOffset+UsernameSize; i++ {
		assert.Zero(buf[i])
	}
	for i := EmailOffset + len(row.Email); i < EmailOffset+EmailSize; i++ {
		assert.Zero(buf[i])
	}
}
