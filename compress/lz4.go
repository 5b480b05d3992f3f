package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/logintpack/errs"
)

// maxLZ4DecompressedSize bounds the retry loop in Decompress.
const maxLZ4DecompressedSize = 128 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads in the LZ4 block format.
//
// The block format carries no size header, so Decompress grows its output
// buffer until the block fits, up to 128 MiB. DecompressSize has no such limit.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	// incompressible input yields n == 0; store it as a literal-only block
	if n == 0 {
		return literalBlock(data), nil
	}

	return dst[:n], nil
}

// Decompress restores an LZ4 block.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	for bufSize <= maxLZ4DecompressedSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxLZ4DecompressedSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressSize restores an LZ4 block into a buffer of exactly size bytes.
func (c LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize(size, 0)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("%w: block decodes to more than %d bytes", errs.ErrInvalidPayloadLength, size)
		}

		return nil, err
	}
	if err := checkSize(size, n); err != nil {
		return nil, err
	}

	return buf, nil
}

// literalBlock encodes data as one LZ4 sequence with no match, which every
// block decoder accepts.
func literalBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+2)

	if n < 15 {
		out = append(out, byte(n<<4))
	} else {
		out = append(out, 0xF0)
		rem := n - 15
		for rem >= 255 {
			out = append(out, 255)
			rem -= 255
		}
		out = append(out, byte(rem))
	}

	return append(out, data...)
}
