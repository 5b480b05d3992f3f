package section

const (
	EndiannessMask      = 0x0002 // bit 1: 0 little-endian, 1 big-endian
	ReservedOptionsMask = 0x000D // bits 0, 2 and 3, must be zero
	MagicNumberMask     = 0xFFF0 // bits 4-15

	MagicColumnV1Opt = 0xC810 // packed column format v1
	MagicSetV1Opt    = 0xC820 // column set format v1
)

const (
	ColumnHeaderSize  = 40 // fixed column header size in bytes
	SetHeaderSize     = 16 // fixed column set header size in bytes
	SetIndexEntrySize = 16 // fixed column set index entry size in bytes
)
