/*
Package imgtools is a small facade over Go imaging libraries. It loads and
saves images, converts them to grayscale, draws rectangles and outlines the
faces found by a pretrained cascade classifier.

Two classifier backends are available. The default one runs pigo binary
cascades in pure Go. Building with the gocv tag enables the OpenCV backend,
which reads Haar and LBP XML cascades:

	$ go build -tags gocv ./...

No model path is built in. It is passed to DetectFaces or read from the
environment by LoadConfig:

	package main

	import (
		"log"

		"github.com/loyer/imgtools"
	)

	func main() {
		cfg := imgtools.LoadConfig()
		if err := imgtools.Init(cfg); err != nil {
			log.Fatal(err)
		}

		img, err := imgtools.DetectFaces(imgtools.FromPath("group.jpg"), cfg.ModelPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := imgtools.Save("group_faces.png", img); err != nil {
			log.Fatal(err)
		}
	}

Drawing mutates the image in place, so an image must not be drawn on from
several goroutines at once.
*/
package imgtools
