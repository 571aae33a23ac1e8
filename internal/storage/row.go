package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Row is the single record type stored by the table: an unsigned
// 32-bit primary key and two fixed-width text columns.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Serialize writes the row into dst, which must be at least RowSize
// bytes. Text columns are null padded to their full width.
func (r *Row) Serialize(dst []byte) {
	binary.LittleEndian.PutUint32(dst[IDOffset:], r.ID)

	username := dst[UsernameOffset : UsernameOffset+UsernameSize]
	for i := range username {
		username[i] = 0
	}
	copy(username, r.Username)

	email := dst[EmailOffset : EmailOffset+EmailSize]
	for i := range email {
		email[i] = 0
	}
	copy(email, r.Email)
}

// DeserializeRow reads a row from src, which must be at least RowSize
// bytes.
func DeserializeRow(src []byte) Row {
	return Row{
		ID:       binary.LittleEndian.Uint32(src[IDOffset:]),
		Username: trimNul(src[UsernameOffset : UsernameOffset+UsernameSize]),
		Email:    trimNul(src[EmailOffset : EmailOffset+EmailSize]),
	}
}

func trimNul(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}
