package imgtools

import (
	"image"

	"github.com/pkg/errors"
)

// Classifier is a loaded cascade model able to find faces in an image.
// Returned rectangles are in the coordinate space of the input image.
type Classifier interface {
	DetectMultiScale(img image.Image) ([]image.Rectangle, error)
	Close() error
}

// LoadClassifier loads the cascade model at path with the given backend.
// An empty backend selects the process default (see Init).
func LoadClassifier(backend Backend, path string) (Classifier, error) {
	if backend == "" {
		backend = processBackend()
	}
	if path == "" {
		return nil, &ClassifierLoadError{Path: path, Backend: backend, Err: errEmptyModelPath}
	}

	var (
		c   Classifier
		err error
	)
	switch backend {
	case BackendPigo:
		c, err = loadPigo(path)
	case BackendOpenCV:
		c, err = loadOpenCV(path)
	default:
		err = errors.Errorf("unknown classifier backend %q", backend)
	}
	if err != nil {
		return nil, &ClassifierLoadError{Path: path, Backend: backend, Err: err}
	}

	logger().Debug("cascade classifier loaded", "backend", backend, "path", path)
	return c, nil
}
