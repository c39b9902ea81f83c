// Package filters provides PDF stream decompression filters.
//
// The inspector decodes page content streams written by the PDF writer. The writer only
// ever emits uncompressed or FlateDecode streams, so that is what this package implements.
//
// FlateDecode (zlib/deflate):
//
//	decoded, err := filters.FlateDecode(data)
//
// Decode dispatches on a filter name taken from a stream dictionary:
//
//	decoded, err := filters.Decode(data, "FlateDecode")
package filters
