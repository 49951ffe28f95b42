package fenwick

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

const headerSize = 8 // size:int32 + capacity:int32

// MarshalBinary encodes the tree as size, capacity and size+1 cells, all
// little-endian int32. It fails with ErrValueOverflow if any cell lies
// outside the int32 range.
func (t *Tree) MarshalBinary() ([]byte, error) {
	if !t.alive() {
		return nil, ErrDestroyed
	}
	if t.size+1 > math.MaxInt32 {
		return nil, fmt.Errorf("size %d: %w", t.size, ErrValueOverflow)
	}
	buf := make([]byte, 0, headerSize+4*len(t.tree))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(t.size)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(len(t.tree))))
	for i, v := range t.tree {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("cell %d = %d: %w", i, v, ErrValueOverflow)
		}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(v)))
	}

	return buf, nil
}

// UnmarshalBinary replaces t with the tree encoded in data. Trailing bytes
// are rejected.
func (t *Tree) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	decoded, err := Decode(r)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%d trailing bytes: %w", r.Len(), ErrCorrupt)
	}
	*t = *decoded

	return nil
}

// WriteTo writes the binary encoding of t to w.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	buf, err := t.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)

	return int64(n), err
}

// Decode reads one encoded tree from r.
func Decode(r io.Reader) (*Tree, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, corrupt("header", err)
	}
	size := int32(binary.LittleEndian.Uint32(hdr[0:4]))
	capacity := int32(binary.LittleEndian.Uint32(hdr[4:8]))
	if size < 0 || int64(capacity) != int64(size)+1 {
		return nil, fmt.Errorf("size %d, capacity %d: %w", size, capacity, ErrCorrupt)
	}

	cells := make([]byte, 4*int(capacity))
	if _, err := io.ReadFull(r, cells); err != nil {
		return nil, corrupt("cells", err)
	}
	t := &Tree{tree: make([]int, capacity), size: int(size)}
	for i := range t.tree {
		t.tree[i] = int(int32(binary.LittleEndian.Uint32(cells[4*i:])))
	}
	t.tree[0] = 0

	return t, nil
}

// Save writes t to the file at path, creating or truncating it.
func (t *Tree) Save(path string) (err error) {
	buf, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(buf)

	return err
}

// Load reads a tree previously written by Save.
func Load(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

func corrupt(part string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("truncated %s: %w", part, ErrCorrupt)
	}

	return err
}
