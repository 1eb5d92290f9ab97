package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/loyer/imgtools"
	"github.com/loyer/imgtools/utils"
	"golang.org/x/term"
)

// validExtensions lists the files picked up when the source is a directory.
var validExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

// operation is applied to every decoded image.
type operation func(*image.NRGBA) (image.Image, error)

// Ops describes where images are read from and written to.
type Ops struct {
	Src, Dst, PipeName string
	// Format is the encoding used when writing to stdout.
	Format string

	spinner *utils.Spinner
}

// Execute applies fn to the source image, or to every image below the source
// directory, and returns the number of images that failed.
func (op *Ops) Execute(fn operation) int {
	op.spinner = utils.NewSpinner(os.Stderr, utils.DecorateText("⚡ IMGTOOLS ⇢ processing...", utils.StatusMessage), 80*time.Millisecond, true)

	// Restore the cursor visibility on CTRL-C.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)
	go func() {
		if _, ok := <-signalChan; ok {
			op.spinner.RestoreCursor()
			os.Exit(1)
		}
	}()

	var (
		info os.FileInfo
		err  error
	)
	if op.Src == op.PipeName {
		info, err = os.Stdin.Stat()
	} else {
		info, err = os.Stat(op.Src)
	}
	if err != nil {
		fatal("Failed to load the source image: %v", err)
	}
	if err := checkSource(info.Mode()); err != nil {
		fatal("Unsupported source: %v", err)
	}

	now := time.Now()
	failed := 0

	switch mode := info.Mode(); {
	case mode.IsDir():
		if err := os.MkdirAll(op.Dst, 0755); err != nil {
			fatal("Unable to create the destination directory: %v", err)
		}
		out, err := filepath.Abs(op.Dst)
		if err != nil {
			fatal("Invalid destination directory: %v", err)
		}
		err = filepath.WalkDir(op.Src, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && path != op.Src {
				// Results written below the source are not processed again.
				if abs, err := filepath.Abs(path); err == nil && abs == out {
					return filepath.SkipDir
				}
			}
			if !d.Type().IsRegular() || !isValidExtension(filepath.Ext(path), validExtensions) {
				return nil
			}
			dst := filepath.Join(op.Dst, filepath.Base(path))
			if _, err := imgtools.FormatFromPath(dst); err != nil {
				// Not every readable format can be written back.
				dst = strings.TrimSuffix(dst, filepath.Ext(dst)) + ".png"
			}
			err = op.process(fn, path, dst)
			op.printOpStatus(dst, err)
			if err != nil {
				failed++
			}
			return nil
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
			failed++
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0:
		if op.Dst != op.PipeName {
			if _, err := imgtools.FormatFromPath(op.Dst); err != nil {
				fatal("Unsupported destination: %v", err)
			}
		}
		err := op.process(fn, op.Src, op.Dst)
		op.printOpStatus(op.Dst, err)
		if err != nil {
			failed++
		}
	}

	if failed == 0 {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
	return failed
}

// process reads one image, applies fn and writes the result.
func (op *Ops) process(fn operation, in, out string) error {
	op.spinner.Start()

	img, err := op.read(in)
	if err == nil {
		var res image.Image
		if res, err = fn(img); err == nil {
			err = op.write(out, res)
		}
	}

	if err != nil {
		op.spinner.Stop(utils.DecorateText("⚡ IMGTOOLS ⇢ failed ✘", utils.ErrorMessage))
		return err
	}
	op.spinner.Stop(utils.DecorateText("⚡ IMGTOOLS ⇢ done ✔", utils.SuccessMessage))
	return nil
}

func (op *Ops) read(in string) (*image.NRGBA, error) {
	if in != op.PipeName {
		return imgtools.Load(in)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("`-` should be used with a pipe for stdin")
	}
	return imgtools.Decode(os.Stdin)
}

func (op *Ops) write(out string, img image.Image) error {
	if out != op.PipeName {
		return imgtools.Save(out, img)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("`-` should be used with a pipe for stdout")
	}
	format, err := imgtools.FormatFromPath("out." + strings.TrimPrefix(op.Format, "."))
	if err != nil {
		return err
	}
	return imgtools.Encode(os.Stdout, img, format)
}

// printOpStatus displays the outcome of one image.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%s %s\n",
			utils.DecorateText("Error processing the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(os.Stderr, "\nThe image has been saved as: %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		)
	}
}

// checkSource accepts directories, regular files and pipes.
func checkSource(mode os.FileMode) error {
	switch {
	case mode.IsDir(), mode.IsRegular(), mode&os.ModeNamedPipe != 0:
		return nil
	case mode&os.ModeCharDevice != 0:
		return errors.New("the source is a terminal or a device, use a file, a directory or a pipe")
	}
	return fmt.Errorf("the source mode %v is not a file, a directory or a pipe", mode)
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	ext = strings.ToLower(ext)
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
