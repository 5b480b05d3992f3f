//go:build cgo_zstd

package compress

import "github.com/valyala/gozstd"

const gozstdLevel = 3

// Compress compresses data into a single zstd frame using libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress restores a zstd frame using libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

// DecompressSize restores a zstd frame whose content is exactly size bytes.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize(size, 0)
	}

	if err := checkFrameSize(data, size); err != nil {
		return nil, err
	}

	decompressed, err := gozstd.Decompress(make([]byte, 0, size), data)
	if err != nil {
		return nil, err
	}
	if err := checkSize(size, len(decompressed)); err != nil {
		return nil, err
	}

	return decompressed, nil
}
