package section

import (
	"github.com/arloliu/logintpack/endian"
	"github.com/arloliu/logintpack/errs"
)

// SetIndexEntry locates one column inside a column set.
type SetIndexEntry struct {
	// ID is the xxHash64 of the column name.
	ID uint64 // byte offset 0-7
	// Offset is the absolute offset of the column from the start of the set.
	Offset uint32 // byte offset 8-11
	// Length is the total size of the column, header included.
	Length uint32 // byte offset 12-15
}

// NewSetIndexEntry creates an index entry.
func NewSetIndexEntry(id uint64, offset, length uint32) SetIndexEntry {
	return SetIndexEntry{ID: id, Offset: offset, Length: length}
}

// End returns the offset just past the column.
func (e SetIndexEntry) End() int {
	return int(e.Offset) + int(e.Length)
}

// AppendTo appends the serialized entry to dst.
func (e SetIndexEntry) AppendTo(engine endian.EndianEngine, dst []byte) []byte {
	dst = engine.AppendUint64(dst, e.ID)
	dst = engine.AppendUint32(dst, e.Offset)
	dst = engine.AppendUint32(dst, e.Length)

	return dst
}

// ParseSetIndexEntry parses an entry from exactly SetIndexEntrySize bytes.
func ParseSetIndexEntry(data []byte, engine endian.EndianEngine) (SetIndexEntry, error) {
	if len(data) != SetIndexEntrySize {
		return SetIndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return SetIndexEntry{
		ID:     engine.Uint64(data[0:8]),
		Offset: engine.Uint32(data[8:12]),
		Length: engine.Uint32(data[12:16]),
	}, nil
}
