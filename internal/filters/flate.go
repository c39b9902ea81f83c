package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// Decode applies the named filter. An empty name returns data unchanged.
func Decode(data []byte, filterName string) ([]byte, error) {
	switch filterName {
	case "":
		return data, nil
	case "FlateDecode", "Fl":
		return FlateDecode(data)
	default:
		return nil, fmt.Errorf("unsupported filter: %s", filterName)
	}
}

// FlateDecode decompresses Flate (zlib/deflate) compressed data.
func FlateDecode(data []byte) ([]byte, error) {
	decompressed, err := zlibDecompress(data)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	return decompressed, nil
}

// zlibDecompress decompresses zlib-compressed data using the standard library.
func zlibDecompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return buf.Bytes(), nil
}
