package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image encoding.
type Format int

const (
	FormatWebP Format = iota
	FormatPNG
)

func (f Format) String() string {
	if f == FormatPNG {
		return "png"
	}
	return "webp"
}

// FormatFromPath picks the encoding from a file extension.
//
// Parameters:
//   - path: output file path ending in .webp or .png
//
// Returns:
//   - Format: the matching format
//   - error: if the extension is not supported
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return FormatWebP, nil
	case ".png":
		return FormatPNG, nil
	}
	return FormatWebP, fmt.Errorf("unsupported output extension %q (want .webp or .png)", filepath.Ext(path))
}

// Encode writes img in the given format.
//
// Parameters:
//   - w: destination writer
//   - img: the image to encode
//   - f: output format
//
// Returns:
//   - error: encode failure
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
	default:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	}
	return nil
}

// Save encodes img to path, choosing the format from its extension.
// Parent directories are created as needed.
//
// Parameters:
//   - path: output file path
//   - img: the image to write
//
// Returns:
//   - error: path, create, encode or close failure
func Save(path string, img image.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return Encode(f, img, format)
}

// LoadBackground decodes a PNG, JPEG or TGA image from disk. The decoder is chosen
// by extension: tga registers an empty magic string, so image.Decode would hand
// every file to it.
//
// Parameters:
//   - path: image file path ending in .png, .jpg, .jpeg or .tga
//
// Returns:
//   - image.Image: the decoded image
//   - error: unsupported extension, open or decode failure
func LoadBackground(path string) (image.Image, error) {
	var decode func(io.Reader) (image.Image, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		decode = png.Decode
	case ".jpg", ".jpeg":
		decode = jpeg.Decode
	case ".tga":
		decode = tga.Decode
	default:
		return nil, fmt.Errorf("unsupported background extension %q (want .png, .jpg, .jpeg or .tga)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open background %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background %s: %w", path, err)
	}
	return img, nil
}
