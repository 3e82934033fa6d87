//go:build unix

package mmfile

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(f *os.File, size int) (*File, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		// Some filesystems refuse mmap; read the file instead.
		if _, serr := f.Seek(0, 0); serr != nil {
			return nil, err
		}
		return readAll(f, int64(size))
	}
	// The tokenizer makes one forward pass.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	return &File{data: data, unmap: munmap}, nil
}

func munmap(data []byte) error {
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}
