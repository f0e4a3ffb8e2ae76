package collage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Image is a decoded photo with its natural pixel dimensions.
type Image struct {
	// ID identifies the photo across surfaces and log lines.
	ID uuid.UUID

	// Pixels is the decoded photo.
	Pixels image.Image

	// Width and Height are the natural dimensions in pixels.
	Width, Height int

	// Format is the name reported by the decoder ("jpeg", "png", ...).
	Format string
}

// NewImage wraps an already decoded image.
func NewImage(img image.Image) *Image {
	b := img.Bounds()
	return &Image{
		ID:     uuid.New(),
		Pixels: img,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// DecodeImage decodes a photo from r, auto-detecting the format.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
// Failures, including images with a zero dimension, wrap ErrImageLoad.
func DecodeImage(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrImageLoad, err)
	}
	out := NewImage(img)
	out.Format = format
	if out.Width <= 0 || out.Height <= 0 {
		return nil, fmt.Errorf("%w: image is %dx%d", ErrImageLoad, out.Width, out.Height)
	}
	return out, nil
}

// LoadImageFile decodes the photo stored at path.
func LoadImageFile(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open file: %w", ErrImageLoad, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeImage(f)
}

// Loader produces a decoded photo. Load may block; it should return early
// with ctx.Err() when ctx is done.
type Loader interface {
	Load(ctx context.Context) (*Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) (*Image, error)

// Load calls f(ctx).
func (f LoaderFunc) Load(ctx context.Context) (*Image, error) {
	return f(ctx)
}

// FileLoader returns a Loader that decodes the file at path.
func FileLoader(path string) Loader {
	return LoaderFunc(func(ctx context.Context) (*Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return LoadImageFile(path)
	})
}

// BytesLoader returns a Loader that decodes an in-memory upload.
func BytesLoader(data []byte) Loader {
	return LoaderFunc(func(ctx context.Context) (*Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: empty data", ErrImageLoad)
		}
		return DecodeImage(bytes.NewReader(data))
	})
}
