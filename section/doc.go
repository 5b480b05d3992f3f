// Package section defines the fixed-size binary sections of packed columns and
// column sets.
//
// # Column Layout
//
//	+--------------------+----------------------------------+
//	| ColumnHeader (40B) | payload (PayloadSize bytes)      |
//	+--------------------+----------------------------------+
//
// The payload holds one signed byte per value, optionally compressed. The header
// records everything needed to unpack it: rounding policy, base, log range,
// value count and an xxHash64 checksum of the uncompressed codes.
//
// # Column Set Layout
//
//	+-----------------+---------------------------+---------------+------------+
//	| SetHeader (16B) | SetIndexEntry (16B) × N   | names payload | columns... |
//	+-----------------+---------------------------+---------------+------------+
//
// Index entries hold the xxHash64 id of a column name and the absolute offset
// and length of the column inside the set. The names payload stores each name as
// a uvarint length followed by its bytes, in index order.
//
// The first two bytes of every header are the options field, always stored
// little-endian; bit 1 selects the byte order of the remaining fields.
package section
