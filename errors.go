package imgtools

import (
	"fmt"

	"github.com/pkg/errors"
)

// DecodeError is returned when an image cannot be opened, read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not decode the image: %v", e.Err)
	}
	return fmt.Sprintf("could not decode the image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
func (e *DecodeError) Cause() error  { return e.Err }

// EncodeError is returned when an image cannot be encoded or written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not encode the image: %v", e.Err)
	}
	return fmt.Sprintf("could not encode the image %q: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
func (e *EncodeError) Cause() error  { return e.Err }

// ClassifierLoadError is returned when the cascade model is missing or malformed.
type ClassifierLoadError struct {
	Path    string
	Backend Backend
	Err     error
}

func (e *ClassifierLoadError) Error() string {
	return fmt.Sprintf("could not load the %s cascade classifier %q: %v", e.Backend, e.Path, e.Err)
}

func (e *ClassifierLoadError) Unwrap() error { return e.Err }
func (e *ClassifierLoadError) Cause() error  { return e.Err }

// ConversionPreconditionError is returned when the input of a color
// conversion does not have the channel layout the conversion expects.
type ConversionPreconditionError struct {
	Want, Got int // channel counts
	Reason    string
}

func (e *ConversionPreconditionError) Error() string {
	return fmt.Sprintf("color conversion expects a %d channel image, got %d channels: %s", e.Want, e.Got, e.Reason)
}

var (
	errEmptyModelPath   = errors.New("no cascade model path configured")
	errNotAnImage       = errors.New("the file is not an image")
	errUnsupportedExt   = errors.New("unsupported image format")
	errMalformedCascade = errors.New("malformed cascade file")
	errDetectorClosed   = errors.New("the detector is closed")
)
