package render

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/specialistvlad/histgen/internal/apperr"
)

// WritePNG encodes img as a PNG tagged with dpi and atomically replaces path
// with it. On failure path is left untouched.
func WritePNG(path string, img image.Image, dpi int) (err error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return apperr.IO("encode png", err)
	}
	data := withPhysicalSize(buf.Bytes(), dpi)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return apperr.IO("create output file", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return apperr.IO("write output file", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return apperr.IO("chmod output file", err)
	}
	if err = tmp.Close(); err != nil {
		return apperr.IO("close output file", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return apperr.IO("move output file into place", err)
	}
	return nil
}

// pngHeaderLen covers the 8-byte signature and the IHDR chunk, which
// image/png always writes first.
const pngHeaderLen = 8 + 4 + 4 + 13 + 4

// withPhysicalSize inserts a pHYs chunk after IHDR recording dpi as pixels
// per metre.
func withPhysicalSize(encoded []byte, dpi int) []byte {
	if dpi <= 0 || len(encoded) < pngHeaderLen {
		return encoded
	}
	ppm := uint32(math.Round(float64(dpi) / 0.0254))

	chunk := make([]byte, 0, 4+4+9+4)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, "pHYs"...)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = append(chunk, 1) // unit: metre
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	out := make([]byte, 0, len(encoded)+len(chunk))
	out = append(out, encoded[:pngHeaderLen]...)
	out = append(out, chunk...)
	return append(out, encoded[pngHeaderLen:]...)
}
