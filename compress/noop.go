package compress

// NoOpCompressor stores payloads unchanged.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as is, without copying.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as is, without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSize returns data as is once its length matches size.
func (c NoOpCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkSize(size, len(data)); err != nil {
		return nil, err
	}

	return data, nil
}
