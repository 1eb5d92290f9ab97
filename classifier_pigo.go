package imgtools

import (
	"encoding/binary"
	"image"
	"os"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"
	"github.com/loyer/imgtools/utils"
	"github.com/pkg/errors"
)

// Detection policy of the pigo backend. It is not configurable.
const (
	pigoMinSize        = 20
	pigoShiftFactor    = 0.1
	pigoScaleFactor    = 1.1
	pigoIoUThreshold   = 0.2
	pigoScoreThreshold = 5.0

	pigoHeaderSize   = 16
	pigoMaxTreeDepth = 16
)

type pigoClassifier struct {
	pg *pigo.Pigo
}

func loadPigo(path string) (*pigoClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return unpackPigo(data)
}

// unpackPigo validates the cascade layout before handing it to pigo, whose
// unpacker indexes the buffer without bounds checks.
func unpackPigo(data []byte) (*pigoClassifier, error) {
	if len(data) < pigoHeaderSize {
		return nil, errors.Wrapf(errMalformedCascade, "%d bytes is shorter than the header", len(data))
	}
	depth := binary.LittleEndian.Uint32(data[8:])
	trees := binary.LittleEndian.Uint32(data[12:])
	if depth == 0 || depth > pigoMaxTreeDepth || trees == 0 {
		return nil, errors.Wrapf(errMalformedCascade, "tree depth %d, tree count %d", depth, trees)
	}

	// Per tree: 4*(2^depth-1) node codes, 2^depth leaf predictions and a threshold.
	leaves := int64(1) << depth
	want := int64(pigoHeaderSize) + int64(trees)*(4*(leaves-1)+4*leaves+4)
	if int64(len(data)) < want {
		return nil, errors.Wrapf(errMalformedCascade, "truncated: got %d bytes, want %d", len(data), want)
	}

	pg, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, errors.Wrap(errMalformedCascade, err.Error())
	}
	return &pigoClassifier{pg: pg}, nil
}

func (c *pigoClassifier) DetectMultiScale(img image.Image) ([]image.Rectangle, error) {
	src := imaging.Clone(img)
	cols, rows := src.Bounds().Dx(), src.Bounds().Dy()

	params := pigo.CascadeParams{
		MinSize:     pigoMinSize,
		MaxSize:     utils.Max(cols, rows),
		ShiftFactor: pigoShiftFactor,
		ScaleFactor: pigoScaleFactor,

		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(src),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	// Detections are (row, col) centres with a square side of Scale.
	dets := c.pg.RunCascade(params, 0)
	dets = c.pg.ClusterDetections(dets, pigoIoUThreshold)

	var faces []image.Rectangle
	for _, d := range dets {
		if d.Q < pigoScoreThreshold {
			continue
		}
		half := d.Scale / 2
		r := image.Rect(d.Col-half, d.Row-half, d.Col+half, d.Row+half)
		faces = append(faces, r.Add(img.Bounds().Min))
	}
	return faces, nil
}

func (c *pigoClassifier) Close() error {
	c.pg = nil
	return nil
}
