// Package column stores log-packed values as compact byte columns.
//
// A Column is a self-describing byte slice: a 40-byte header (codec parameters,
// count, checksum) followed by one signed byte per value, optionally compressed.
// It is the storage form of the logint codec, meant to be embedded in larger
// per-object records or written to disk as is.
//
// # Encoding
//
//	enc, err := column.NewEncoder(logint.NewRange(0.5, 1000),
//	    column.WithRounding(format.RoundingFloor),
//	    column.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	for _, pt := range candidatePts {
//	    if err := enc.AddValue(pt); err != nil {
//	        return err
//	    }
//	}
//	col, err := enc.Finish()
//
// Unlike the bare codec, the encoder validates its input: it rejects a degenerate
// range, a base below 2, zero and NaN values. Values outside the range are still
// accepted and saturate as the codec defines.
//
// # Decoding
//
//	dec, err := column.NewDecoder(col.Bytes())
//	if err != nil {
//	    return err
//	}
//	for i, v := range dec.All() {
//	    fmt.Println(i, v)
//	}
//
// NewDecoder verifies the payload length and the xxHash64 checksum before any
// value is returned.
//
// # Column Sets
//
// SetEncoder groups several named columns, e.g. one per packed observable of a
// candidate collection, into one record. SetDecoder finds them again by name.
package column
