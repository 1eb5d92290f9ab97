//go:build !gocv
// +build !gocv

package imgtools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_OpenCVNeedsBuildTag(t *testing.T) {
	_, err := LoadClassifier(BackendOpenCV, "lbpcascade_frontalface.xml")

	var loadErr *ClassifierLoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.ErrorIs(t, err, errNoOpenCV)
	assert.Equal(t, BackendOpenCV, loadErr.Backend)
}

func TestConfig_FailedOpenCVInitKeepsState(t *testing.T) {
	prevLogger, prevBackend := logger(), processBackend()

	err := initialize(Config{Backend: BackendOpenCV, LogLevel: "error"})

	assert.ErrorIs(t, err, errNoOpenCV)
	assert.Equal(t, prevBackend, processBackend())
	assert.Same(t, prevLogger, logger())
}
