package raycaster

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB64 dumps the unclamped channels: int32 width and height, then
// Width*Height*3 float64 values, all little-endian.
func (c *Canvas) SaveRawRGB64(path string) error {
	exp := int64(c.Width) * int64(c.Height) * 3
	if int64(len(c.Buf)) != exp {
		return fmt.Errorf("buf length %d, expected %d (Width*Height*3): %w", len(c.Buf), exp, ErrSizeMismatch)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(c.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(c.Height)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c.Buf); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
