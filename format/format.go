package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JPG Format = iota
	SVG
	PDF
	PNG
)

var ErrUnknownFormat = errors.New("unknown output format")

// Supported is the menu order offered to the user.
var Supported = []Format{JPG, SVG, PDF, PNG}

var extensions = map[Format]string{
	JPG: "jpg",
	SVG: "svg",
	PDF: "pdf",
	PNG: "png",
}

func (f Format) String() string {
	if ext, ok := extensions[f]; ok {
		return ext
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// IsRaster reports whether the format is a pixel image.
func (f Format) IsRaster() bool {
	return f == JPG || f == PNG
}

// Path appends the format extension to base.
func (f Format) Path(base string) string {
	return base + "." + f.String()
}

// FromExtension returns the format implied by the extension of path.
// "jpeg" is accepted as an alias of jpg.
func FromExtension(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "jpeg" {
		return JPG, nil
	}
	for f, e := range extensions {
		if e == ext {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
}
