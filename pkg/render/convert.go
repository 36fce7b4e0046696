package render

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// converter is the external tool used for SVG conversion.
const converter = "rsvg-convert"

// ToPDF converts an SVG document to PDF.
//
// Conversion shells out to rsvg-convert, so librsvg must be installed
// (macOS: brew install librsvg, Linux: apt install librsvg2-bin).
func ToPDF(svg []byte) ([]byte, error) {
	return fromSVG(svg, "-f", "pdf")
}

// ToPNG converts an SVG document to PNG at the given scale factor. A
// scale of 2.0 doubles the pixel dimensions of the output.
//
// Conversion shells out to rsvg-convert, so librsvg must be installed
// (macOS: brew install librsvg, Linux: apt install librsvg2-bin).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return fromSVG(svg, "-f", "png", "-z", fmt.Sprintf("%.2f", scale))
}

// fromSVG pipes svg through the converter with the given arguments.
func fromSVG(svg []byte, args ...string) ([]byte, error) {
	path, err := exec.LookPath(converter)
	if err != nil {
		return nil, fmt.Errorf("%s not found; install librsvg (macOS: brew install librsvg, Linux: apt install librsvg2-bin)", converter)
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = bytes.NewReader(svg)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s: %v: %s", converter, err, bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, fmt.Errorf("%s: %w", converter, err)
	}
	return out, nil
}
