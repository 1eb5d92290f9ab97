package imgtools

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestImage returns an opaque image filled with a deterministic pattern.
func newTestImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 11), B: uint8((x + y) * 3), A: 0xff})
		}
	}
	return img
}

// newUniformImage returns an opaque image of a single color.
func newUniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writeCascade writes a single tree pigo cascade of depth one. Every window
// scores pred and is kept when the score is above threshold.
func writeCascade(t *testing.T, pred, threshold float32) string {
	t.Helper()

	buf := make([]byte, 8)
	buf = binary.LittleEndian.AppendUint32(buf, 1) // tree depth
	buf = binary.LittleEndian.AppendUint32(buf, 1) // tree count
	buf = append(buf, 0, 0, 0, 0)                  // compare the window centre with itself
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(pred))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(pred))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(threshold))

	path := filepath.Join(t.TempDir(), "cascade")
	require.NoError(t, os.WriteFile(path, buf, 0644))
	return path
}

func clonePix(img *image.NRGBA) []uint8 {
	return append([]uint8(nil), img.Pix...)
}
