package column

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/internal/collision"
	"github.com/arloliu/logintpack/internal/hash"
	"github.com/arloliu/logintpack/internal/options"
	"github.com/arloliu/logintpack/internal/pool"
	"github.com/arloliu/logintpack/logint"
	"github.com/arloliu/logintpack/section"
)

// MaxSetColumns is the maximum number of columns in a single set.
const MaxSetColumns = math.MaxUint16

// SetOption configures a SetEncoder.
type SetOption = options.Option[*SetEncoder]

// WithSetBigEndian stores set header and index fields big-endian. Columns keep
// their own byte order.
func WithSetBigEndian() SetOption {
	return options.NoError(func(e *SetEncoder) {
		e.header.WithBigEndian()
	})
}

// WithSetLittleEndian stores set header and index fields little-endian. It is the default.
func WithSetLittleEndian() SetOption {
	return options.NoError(func(e *SetEncoder) {
		e.header.WithLittleEndian()
	})
}

// SetEncoder groups named columns into one record.
//
// Layout:
//
//	header (16 bytes) | index (16 bytes per column) | names | columns
//
// Names are stored as uvarint length followed by the name bytes, in index order.
type SetEncoder struct {
	header   *section.SetHeader
	tracker  *collision.Tracker
	entries  []section.SetIndexEntry
	columns  []Column
	finished bool
}

// NewSetEncoder creates an empty set encoder.
func NewSetEncoder(opts ...SetOption) (*SetEncoder, error) {
	e := &SetEncoder{
		header:  section.NewSetHeader(),
		tracker: collision.NewTracker(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Len returns the number of columns added.
func (e *SetEncoder) Len() int {
	return len(e.columns)
}

// Add adds a finished column under name.
//
// Returns:
//   - error: ErrInvalidColumnName, ErrDuplicateColumn, ErrHashCollision,
//     ErrTooManyColumns or ErrEncoderFinished
func (e *SetEncoder) Add(name string, col Column) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	if len(e.columns) >= MaxSetColumns {
		return fmt.Errorf("%w: set is limited to %d columns", errs.ErrTooManyColumns, MaxSetColumns)
	}

	if col.Size() == 0 {
		return fmt.Errorf("%w: column %q is empty", errs.ErrNoValuesAdded, name)
	}

	id := hash.ID(name)
	if err := e.tracker.Track(name, id); err != nil {
		return err
	}

	e.entries = append(e.entries, section.NewSetIndexEntry(id, 0, uint32(col.Size())))
	e.columns = append(e.columns, col)

	return nil
}

// AddValues encodes values into a new column and adds it under name.
func (e *SetEncoder) AddValues(name string, r logint.Range, values []float64, opts ...EncoderOption) error {
	enc, err := NewEncoder(r, opts...)
	if err != nil {
		return err
	}

	if err := enc.AddValues(values); err != nil {
		return fmt.Errorf("column %q: %w", name, err)
	}

	col, err := enc.Finish()
	if err != nil {
		return fmt.Errorf("column %q: %w", name, err)
	}

	return e.Add(name, col)
}

// Finish assembles the set. The encoder cannot be used afterwards.
//
// Returns:
//   - []byte: the encoded set
//   - error: ErrNoColumnsAdded, ErrOffsetOutOfRange or ErrEncoderFinished
func (e *SetEncoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}

	if len(e.columns) == 0 {
		return nil, errs.ErrNoColumnsAdded
	}

	names := e.tracker.Names()
	namesSize := 0
	for _, name := range names {
		namesSize += uvarintLen(uint64(len(name))) + len(name)
	}

	namesOffset := section.SetHeaderSize + len(e.columns)*section.SetIndexEntrySize
	dataOffset := namesOffset + namesSize

	offset := dataOffset
	for i := range e.entries {
		if offset > math.MaxUint32 || offset+int(e.entries[i].Length) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: set exceeds %d bytes", errs.ErrOffsetOutOfRange, uint64(math.MaxUint32))
		}
		e.entries[i].Offset = uint32(offset)
		offset += int(e.entries[i].Length)
	}

	e.header.ColumnCount = uint32(len(e.columns))
	e.header.NamesOffset = uint32(namesOffset)
	e.header.DataOffset = uint32(dataOffset)

	engine := e.header.EndianEngine()
	buf := pool.GetSetBuffer()
	defer pool.PutSetBuffer(buf)

	buf.Grow(offset)
	_, _ = buf.Write(e.header.Bytes())

	var scratch []byte
	for _, entry := range e.entries {
		scratch = entry.AppendTo(engine, scratch[:0])
		_, _ = buf.Write(scratch)
	}

	for _, name := range names {
		scratch = binary.AppendUvarint(scratch[:0], uint64(len(name)))
		_, _ = buf.Write(scratch)
		_, _ = buf.Write([]byte(name))
	}

	for _, col := range e.columns {
		_, _ = buf.Write(col.Bytes())
	}

	e.finished = true

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// SetDecoder looks up columns in an encoded set.
//
// Column data is referenced in place; the input must not be modified while the
// decoder is in use.
type SetDecoder struct {
	header  section.SetHeader
	data    []byte
	names   []string
	entries []section.SetIndexEntry
	byID    map[uint64]int
}

// NewSetDecoder parses the set header, index and names and checks that every
// column lies inside data. Columns themselves are verified on access.
func NewSetDecoder(data []byte) (*SetDecoder, error) {
	header, err := section.ParseSetHeader(data)
	if err != nil {
		return nil, err
	}

	count := int(header.ColumnCount)
	indexEnd := section.SetHeaderSize + count*section.SetIndexEntrySize
	if int(header.NamesOffset) != indexEnd || header.DataOffset < header.NamesOffset || int(header.DataOffset) > len(data) {
		return nil, fmt.Errorf("%w: names at %d, data at %d, set size %d",
			errs.ErrOffsetOutOfRange, header.NamesOffset, header.DataOffset, len(data))
	}

	engine := header.EndianEngine()
	d := &SetDecoder{
		header:  header,
		data:    data,
		names:   make([]string, 0, count),
		entries: make([]section.SetIndexEntry, 0, count),
		byID:    make(map[uint64]int, count),
	}

	for i := range count {
		start := section.SetHeaderSize + i*section.SetIndexEntrySize
		entry, err := section.ParseSetIndexEntry(data[start:start+section.SetIndexEntrySize], engine)
		if err != nil {
			return nil, err
		}

		if int(entry.Offset) < int(header.DataOffset) || entry.End() > len(data) {
			return nil, fmt.Errorf("%w: column %d spans [%d, %d) of %d bytes",
				errs.ErrOffsetOutOfRange, i, entry.Offset, entry.End(), len(data))
		}

		d.entries = append(d.entries, entry)
		d.byID[entry.ID] = i
	}

	names := data[header.NamesOffset:header.DataOffset]
	for i := range count {
		n, size := binary.Uvarint(names)
		if size <= 0 || uint64(len(names)-size) < n {
			return nil, fmt.Errorf("%w: name %d is truncated", errs.ErrOffsetOutOfRange, i)
		}
		d.names = append(d.names, string(names[size:size+int(n)]))
		names = names[size+int(n):]
	}

	return d, nil
}

// Len returns the number of columns.
func (d *SetDecoder) Len() int {
	return len(d.entries)
}

// Names returns column names in the order they were added.
func (d *SetDecoder) Names() []string {
	return d.names
}

// Has reports whether the set holds a column named name.
func (d *SetDecoder) Has(name string) bool {
	_, ok := d.byID[hash.ID(name)]

	return ok
}

// Column returns the column named name without verifying its payload.
func (d *SetDecoder) Column(name string) (Column, bool) {
	i, ok := d.byID[hash.ID(name)]
	if !ok {
		return Column{}, false
	}

	entry := d.entries[i]
	col, err := ParseColumn(d.data[entry.Offset:entry.End()])
	if err != nil {
		return Column{}, false
	}

	return col, true
}

// Decoder returns a verified decoder for the column named name.
func (d *SetDecoder) Decoder(name string) (*Decoder, error) {
	dec, err := d.DecoderByID(hash.ID(name))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}

	return dec, nil
}

// DecoderByID returns a verified decoder for the column with the given id.
func (d *SetDecoder) DecoderByID(id uint64) (*Decoder, error) {
	i, ok := d.byID[id]
	if !ok {
		return nil, errs.ErrColumnNotFound
	}

	entry := d.entries[i]

	return NewDecoder(d.data[entry.Offset:entry.End()])
}
