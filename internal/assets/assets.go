// Package assets loads the startup bitmap the renderer depends on.
// A failed load is a ResourceLoadFailure: fatal, reported to the user, no fallback.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG sprites are accepted as well
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// DefaultSpritePath is where the bird bitmap is looked up when no path is given.
const DefaultSpritePath = "assets/bird.bmp"

// ErrResourceLoad marks every failure to load a startup resource.
var ErrResourceLoad = errors.New("resource load failure")

// LoadError describes which resource failed to load and why.
type LoadError struct {
	Path string
	Err  error
}

// Error implements error.
func (e *LoadError) Error() string {
	return fmt.Sprintf("Failed to load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports ErrResourceLoad as a match so callers can test the kind
// with errors.Is.
func (e *LoadError) Is(target error) bool {
	return target == ErrResourceLoad
}

// LoadSprite reads and decodes the image at path. BMP files go through the
// bmp decoder directly; anything else is sniffed by image.Decode.
func LoadSprite(path string) (image.Image, error) {
	if path == "" {
		path = DefaultSpritePath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		img, err = bmp.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}

	if img.Bounds().Empty() {
		return nil, &LoadError{Path: path, Err: errors.New("image has no pixels")}
	}
	return img, nil
}
