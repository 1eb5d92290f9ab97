package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/loyer/imgtools"
	"github.com/loyer/imgtools/utils"
)

const HelpBanner = `
┬┌┬┐┌─┐┌┬┐┌─┐┌─┐┬  ┌─┐
││││├ ┬ │ │ ││ ││  └─┐
┴┴ ┴└─┘ ┴ └─┘└─┘┴─┘└─┘

Image load, grayscale, drawing and face detection tool.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	source      = flag.String("in", pipeName, "Source file or directory")
	destination = flag.String("out", pipeName, "Destination file or directory")
	opName      = flag.String("op", "detect", "Operation: copy, gray, rect or detect")
	cascade     = flag.String("cc", "", "Cascade classifier (defaults to $"+imgtools.EnvModelPath+")")
	backend     = flag.String("backend", "", "Classifier backend: pigo or opencv (defaults to $"+imgtools.EnvBackend+")")
	rect        = flag.String("rect", "", "Rectangle corners as x1,y1,x2,y2")
	hexColor    = flag.String("color", "#ff0000", "Rectangle color")
	thickness   = flag.Int("thickness", 3, "Rectangle thickness, negative to fill")
	pipeFormat  = flag.String("fmt", "jpg", "Encoding used when writing to stdout")
	debug       = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := imgtools.LoadConfig()
	if *cascade != "" {
		cfg.ModelPath = *cascade
	}
	if *backend != "" {
		cfg.Backend = imgtools.Backend(strings.ToLower(*backend))
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := imgtools.Init(cfg); err != nil {
		fatal("Unable to initialize: %v", err)
	}

	fn, closer, err := newOperation(*opName, cfg)
	if err != nil {
		flag.Usage()
		fatal("Invalid operation: %v", err)
	}

	ops := &Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Format:   *pipeFormat,
	}
	failed := ops.Execute(fn)
	closer()

	if failed > 0 {
		os.Exit(1)
	}
}

// newOperation turns the -op flag into the function applied to every image.
// The returned closer releases the resources held by the operation.
func newOperation(name string, cfg imgtools.Config) (operation, func(), error) {
	noop := func() {}

	switch name {
	case "copy":
		return func(img *image.NRGBA) (image.Image, error) { return img, nil }, noop, nil
	case "gray":
		return func(img *image.NRGBA) (image.Image, error) { return imgtools.ToGrayscale(img) }, noop, nil
	case "rect":
		p1, p2, err := parseRect(*rect)
		if err != nil {
			return nil, nil, err
		}
		col, err := utils.ParseHexColor(*hexColor)
		if err != nil {
			return nil, nil, err
		}
		return func(img *image.NRGBA) (image.Image, error) {
			return imgtools.DrawRectangle(img, p1, p2, col, *thickness), nil
		}, noop, nil
	case "detect":
		d, err := imgtools.NewDetector(cfg)
		if err != nil {
			return nil, nil, err
		}
		return func(img *image.NRGBA) (image.Image, error) {
			return d.Detect(imgtools.FromImage(img))
		}, func() { d.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown operation %q", name)
}

// parseRect parses "x1,y1,x2,y2".
func parseRect(s string) (image.Point, image.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Point{}, image.Point{}, fmt.Errorf("expected x1,y1,x2,y2, got %q", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Point{}, image.Point{}, fmt.Errorf("invalid coordinate %q: %w", p, err)
		}
		v[i] = n
	}
	return image.Pt(v[0], v[1]), image.Pt(v[2], v[3]), nil
}

func fatal(format string, err error) {
	log.Fatalf(
		utils.DecorateText(format, utils.ErrorMessage),
		utils.DecorateText(err.Error(), utils.DefaultMessage),
	)
}
