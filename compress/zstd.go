package compress

import (
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/logintpack/errs"
)

// maxZstdDecodedSize bounds the output of a single frame to the largest column.
const maxZstdDecodedSize = math.MaxInt32

// ZstdCompressor compresses payloads with Zstandard.
//
// It gives the best ratio of the built-in codecs and suits columns that are
// written once and archived. The implementation is pure Go by default; building
// with the cgo_zstd tag switches to the libzstd bindings of valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// checkFrameSize rejects a frame whose declared content size differs from size
// before any output is allocated.
func checkFrameSize(data []byte, size int) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return fmt.Errorf("zstd frame header: %w", err)
	}

	if h.HasFCS && h.FrameContentSize != uint64(size) {
		return fmt.Errorf("%w: frame declares %d bytes, expected %d",
			errs.ErrInvalidPayloadLength, h.FrameContentSize, size)
	}

	return nil
}
