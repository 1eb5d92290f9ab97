//go:build !gocv
// +build !gocv

package imgtools

import "github.com/pkg/errors"

var errNoOpenCV = errors.New("the opencv backend is not available, rebuild with -tags gocv")

func initOpenCV() error {
	return errNoOpenCV
}

func loadOpenCV(string) (Classifier, error) {
	return nil, errNoOpenCV
}
