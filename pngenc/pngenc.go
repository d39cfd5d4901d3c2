// Package pngenc encodes images as PNG files from first principles,
// without image/png: a fixed signature, an IHDR, a single IDAT holding
// zlib-compressed scanlines with filter type 0, and an IEND. Keeping the
// layout this rigid makes the output a pure function of the pixel
// content, which is what an icon build wants: rebuilding an unchanged
// asset yields byte-identical files.
package pngenc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ErrEmptyImage reports an image whose bounds enclose no pixels. The PNG
// format has no zero-extent form, so such images cannot be encoded.
var ErrEmptyImage = errors.New("pngenc: empty image")

// signature is the 8-byte PNG file header.
var signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Encode writes m to w as an 8-bit RGBA PNG: color type 6, bit depth 8,
// no interlace. Pixels are stored non-premultiplied, so decoding with any
// conforming decoder returns exactly the source image's NRGBA bytes.
//
// *image.NRGBA inputs are copied row by row; anything else goes through
// color.NRGBAModel per pixel.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ErrEmptyImage
	}

	if _, err := w.Write(signature[:]); err != nil {
		return fmt.Errorf("pngenc: could not write signature: %w", err)
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(b.Dy()))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: truecolor with alpha
	// compression, filter and interlace methods stay 0
	if err := writeChunk(w, "IHDR", ihdr[:]); err != nil {
		return err
	}

	idat, err := compressScanlines(m)
	if err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", idat); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

// compressScanlines serializes the image as PNG scanlines, each prefixed
// with filter type 0, and deflates them at the highest compression level.
func compressScanlines(m image.Image) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("pngenc: %w", err)
	}

	b := m.Bounds()
	row := make([]byte, 1+b.Dx()*4)
	nrgba, _ := m.(*image.NRGBA)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		if nrgba != nil {
			start := nrgba.PixOffset(b.Min.X, y)
			copy(row[1:], nrgba.Pix[start:start+b.Dx()*4])
		} else {
			i := 1
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				row[i] = c.R
				row[i+1] = c.G
				row[i+2] = c.B
				row[i+3] = c.A
				i += 4
			}
		}
		if _, err := zw.Write(row); err != nil {
			return nil, fmt.Errorf("pngenc: could not compress scanline %d: %w", y-b.Min.Y, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("pngenc: could not finish compression: %w", err)
	}
	return buf.Bytes(), nil
}

// writeChunk frames one PNG chunk: 4-byte big-endian payload length, the
// 4-byte tag, the payload, and a big-endian CRC-32 (IEEE) over tag and
// payload. The length covers the payload only.
func writeChunk(w io.Writer, tag string, payload []byte) error {
	var head [8]byte
	binary.BigEndian.PutUint32(head[0:4], uint32(len(payload)))
	copy(head[4:8], tag)

	crc := crc32.NewIEEE()
	crc.Write(head[4:8])
	crc.Write(payload)
	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], crc.Sum32())

	for _, part := range [][]byte{head[:], payload, tail[:]} {
		if len(part) == 0 {
			continue
		}
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("pngenc: could not write %s chunk: %w", tag, err)
		}
	}
	return nil
}
