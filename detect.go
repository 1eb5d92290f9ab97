package imgtools

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"
)

// Every detected face is outlined with this color and thickness.
const boxThickness = 3

var boxColor = color.NRGBA{R: 0xff, A: 0xff}

// Source is the image DetectFaces works on, either a file or an in-memory buffer.
type Source interface {
	open() (draw.Image, error)
	fmt.Stringer
}

type pathSource string

// FromPath returns a Source decoding the image file at path.
func FromPath(path string) Source { return pathSource(path) }

func (s pathSource) open() (draw.Image, error) {
	img, err := Load(string(s))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (s pathSource) String() string { return string(s) }

type bufferSource struct {
	img draw.Image
}

// FromImage returns a Source wrapping img. Boxes are drawn onto img itself.
func FromImage(img draw.Image) Source { return bufferSource{img: img} }

func (s bufferSource) open() (draw.Image, error) {
	if s.img == nil {
		return nil, &DecodeError{Err: errors.New("nil image buffer")}
	}
	return s.img, nil
}

func (s bufferSource) String() string {
	if s.img == nil {
		return "buffer(nil)"
	}
	return fmt.Sprintf("buffer(%v)", s.img.Bounds())
}

// DetectFaces runs the cascade model stored at modelPath over src and draws
// a box around every detected face. The model is loaded for this call only.
// The returned image is the buffer the boxes were drawn on; when no face is
// found it is left unchanged.
func DetectFaces(src Source, modelPath string) (draw.Image, error) {
	img, err := src.open()
	if err != nil {
		return nil, err
	}

	d, err := NewDetector(Config{ModelPath: modelPath})
	if err != nil {
		return nil, err
	}
	defer d.Close()

	return d.outline(img, src)
}

// Detector keeps a loaded classifier around for repeated detections.
// It must not be used from several goroutines at once.
type Detector struct {
	classifier Classifier
}

// NewDetector loads the model named by cfg.ModelPath with cfg.Backend.
func NewDetector(cfg Config) (*Detector, error) {
	c, err := LoadClassifier(cfg.Backend, cfg.ModelPath)
	if err != nil {
		return nil, err
	}
	return &Detector{classifier: c}, nil
}

// NewDetectorWithClassifier wraps an already loaded classifier.
func NewDetectorWithClassifier(c Classifier) *Detector {
	return &Detector{classifier: c}
}

// Faces returns the face regions found in img without drawing anything.
func (d *Detector) Faces(img image.Image) ([]image.Rectangle, error) {
	if d.classifier == nil {
		return nil, errDetectorClosed
	}
	return d.classifier.DetectMultiScale(img)
}

// Detect draws a box around every face found in src and returns the buffer.
func (d *Detector) Detect(src Source) (draw.Image, error) {
	img, err := src.open()
	if err != nil {
		return nil, err
	}
	return d.outline(img, src)
}

func (d *Detector) outline(img draw.Image, src Source) (draw.Image, error) {
	faces, err := d.Faces(img)
	if err != nil {
		return nil, err
	}
	for _, r := range faces {
		DrawRectangle(img, r.Min, r.Max, boxColor, boxThickness)
	}

	logger().Debug("face detection done", "source", src.String(), "faces", len(faces))
	return img, nil
}

// Close releases the classifier.
func (d *Detector) Close() error {
	if d.classifier == nil {
		return nil
	}
	err := d.classifier.Close()
	d.classifier = nil
	return err
}
