// Package icoenc encodes Windows ICO containers. Each entry carries a
// PNG-compressed image, which keeps the container down to a 6-byte
// header, a 16-byte directory entry per image and the payloads
// themselves.
package icoenc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
)

// MaxEdge is the largest image edge an ICO directory can describe. The
// one-byte width and height fields store 256 as 0.
const MaxEdge = 256

// ErrNoEntries reports an Encode call with nothing to encode.
var ErrNoEntries = errors.New("icoenc: no entries")

// Entry is one image in the container.
type Entry struct {
	Size int    // square edge in pixels, 1 through 256
	PNG  []byte // PNG-encoded payload
}

// Encode writes the entries to w as an ICO container. Entries are sorted
// by ascending size first, so the output does not depend on argument
// order; duplicate sizes are rejected.
func Encode(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int { return a.Size - b.Size })
	for i, e := range sorted {
		if e.Size < 1 || e.Size > MaxEdge {
			return fmt.Errorf("icoenc: entry size %d out of range [1, %d]", e.Size, MaxEdge)
		}
		if len(e.PNG) == 0 {
			return fmt.Errorf("icoenc: entry of size %d has no payload", e.Size)
		}
		if i > 0 && sorted[i-1].Size == e.Size {
			return fmt.Errorf("icoenc: duplicate entry size %d", e.Size)
		}
	}

	// ICONDIR: reserved word, resource type 1 (icon), entry count.
	var header [6]byte
	binary.LittleEndian.PutUint16(header[2:4], 1)
	binary.LittleEndian.PutUint16(header[4:6], uint16(len(sorted)))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("icoenc: could not write header: %w", err)
	}

	// Payloads follow the directory back to back.
	offset := uint32(len(header) + 16*len(sorted))
	dir := make([]byte, 0, 16*len(sorted))
	for _, e := range sorted {
		var ent [16]byte
		ent[0] = edgeByte(e.Size)
		ent[1] = edgeByte(e.Size)
		// palette size and the reserved byte stay 0
		binary.LittleEndian.PutUint16(ent[4:6], 1)  // color planes
		binary.LittleEndian.PutUint16(ent[6:8], 32) // bits per pixel
		binary.LittleEndian.PutUint32(ent[8:12], uint32(len(e.PNG)))
		binary.LittleEndian.PutUint32(ent[12:16], offset)
		offset += uint32(len(e.PNG))
		dir = append(dir, ent[:]...)
	}
	if _, err := w.Write(dir); err != nil {
		return fmt.Errorf("icoenc: could not write directory: %w", err)
	}

	for _, e := range sorted {
		if _, err := w.Write(e.PNG); err != nil {
			return fmt.Errorf("icoenc: could not write %dpx payload: %w", e.Size, err)
		}
	}
	return nil
}

// edgeByte encodes an edge length for the directory; 256 becomes 0.
func edgeByte(size int) byte {
	if size == MaxEdge {
		return 0
	}
	return byte(size)
}
