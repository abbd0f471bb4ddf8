package sbdimg

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"deedles.dev/pyramid"
	"deedles.dev/pyramid/tile"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format that rendered subdivisions can be
// written in. Its value doubles as the file extension.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ParseFormat returns the Format named by str, ignoring case. "tif" is
// accepted as TIFF.
func ParseFormat(str string) (Format, error) {
	switch f := Format(strings.ToLower(str)); f {
	case PNG, BMP, TIFF:
		return f, nil
	case "tif":
		return TIFF, nil
	default:
		return "", fmt.Errorf("unknown image format %q", str)
	}
}

// FormatFromPath determines the Format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("no extension in %q", path)
	}
	return ParseFormat(ext)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unknown image format %q", f)
	}
}

// FileName returns the name of the image file for a subdivision at
// the given level. id distinguishes between invocations.
func FileName(level int, id uint64, f Format) string {
	return fmt.Sprintf("sbd_level_%v_%v.%v", level, id, f)
}

// FileName returns a FileName with an identifier taken from r's
// random source.
func (r *Renderer) FileName(level int, f Format) string {
	return FileName(level, r.rand().Uint64(), f)
}

// WriteFile renders s and writes it to path. The format is determined
// by the extension of path.
func (r *Renderer) WriteFile(path string, s tile.Subdivision) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	img := r.Render(s)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer func() {
		cerr := file.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("close image file: %w", cerr)
		}
	}()

	buf := bufio.NewWriter(file)
	err = Encode(buf, img, f)
	if err != nil {
		return fmt.Errorf("encode %v: %w", f, err)
	}
	err = buf.Flush()
	if err != nil {
		return fmt.Errorf("write image file: %w", err)
	}

	pyramid.Logger().Info("wrote level subdivision image",
		slog.String("path", path),
		slog.Int("level", s.Level),
		slog.Bool("shift", s.Shift),
	)
	return nil
}
