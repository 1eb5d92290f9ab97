//go:build gocv
// +build gocv

package imgtools

import (
	"image"
	"os"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

type openCVClassifier struct {
	cc gocv.CascadeClassifier
}

func initOpenCV() error {
	logger().Debug("opencv backend enabled", "opencv", gocv.OpenCVVersion(), "gocv", gocv.Version())
	return nil
}

// loadOpenCV loads a Haar or LBP XML cascade.
func loadOpenCV(path string) (*openCVClassifier, error) {
	// CascadeClassifier.Load only reports a boolean.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	cc := gocv.NewCascadeClassifier()
	if !cc.Load(path) {
		cc.Close()
		return nil, errMalformedCascade
	}
	return &openCVClassifier{cc: cc}, nil
}

func (c *openCVClassifier) DetectMultiScale(img image.Image) ([]image.Rectangle, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, errors.Wrap(err, "could not convert the image to a matrix")
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	faces := c.cc.DetectMultiScale(gray)
	for i := range faces {
		faces[i] = faces[i].Add(img.Bounds().Min)
	}
	return faces, nil
}

func (c *openCVClassifier) Close() error {
	return c.cc.Close()
}
