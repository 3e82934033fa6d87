// Package mmfile provides read-only, memory-mapped access to configuration
// files, falling back to a plain read where mapping is not possible.
package mmfile

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTooLarge indicates a file larger than the caller's limit.
var ErrTooLarge = errors.New("mmfile: file exceeds size limit")

// File is a read-only view of a file's contents. The bytes stay valid until
// Close.
type File struct {
	data  []byte
	unmap func([]byte) error
}

// Bytes returns the file contents.
func (f *File) Bytes() []byte { return f.data }

// Len returns the content length.
func (f *File) Len() int { return len(f.data) }

// Mapped reports whether the contents are backed by a memory mapping.
func (f *File) Mapped() bool { return f.unmap != nil }

// Close releases the mapping. It is safe to call more than once.
func (f *File) Close() error {
	if f.unmap == nil {
		f.data = nil
		return nil
	}
	data := f.data
	unmap := f.unmap
	f.data, f.unmap = nil, nil
	return unmap(data)
}

// Open maps the file at path. A limit > 0 rejects files larger than limit
// bytes with ErrTooLarge before anything is read.
func Open(path string, limit int64) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // mapping keeps pages alive after close

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if limit > 0 && size > limit {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, size, limit)
	}
	if !info.Mode().IsRegular() {
		// Pipes and devices report no useful size; read them as a stream.
		return readAll(f, limit)
	}
	if size == 0 {
		return &File{data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
	return mapFile(f, int(size))
}

func readAll(r io.Reader, limit int64) (*File, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return &File{data: data}, nil
}
