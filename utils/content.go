package utils

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"os"
)

// TIFF is not covered by http.DetectContentType.
var tiffSignatures = [][]byte{
	[]byte("II*\x00"),
	[]byte("MM\x00*"),
}

// DetectContentType detects the file type by reading MIME type information of the file content.
func DetectContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()

	return SniffContentType(file)
}

// SniffContentType reads up to the first 512 bytes of r and returns their MIME type.
// It returns "application/octet-stream" if nothing else matched.
func SniffContentType(r io.Reader) (string, error) {
	buffer := make([]byte, 512)
	n, err := io.ReadFull(r, buffer)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", err
	}
	buffer = buffer[:n]

	for _, sig := range tiffSignatures {
		if bytes.HasPrefix(buffer, sig) {
			return "image/tiff", nil
		}
	}
	return http.DetectContentType(buffer), nil
}
