//go:build !unix

package mmfile

import "os"

func mapFile(f *os.File, size int) (*File, error) {
	return readAll(f, int64(size))
}
