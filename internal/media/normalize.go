// filepath: internal/media/normalize.go
package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	// Import decoders for accepted upload formats
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Options bounds the normalizer.
type Options struct {
	MaxSide   int // longest allowed output side
	Quality   int // JPEG quality, 1-100
	MaxPixels int // largest accepted source width*height, 0 disables the check
}

// DefaultOptions matches the catalog's image policy: 1200px, quality 95.
func DefaultOptions() Options {
	return Options{MaxSide: 1200, Quality: 95, MaxPixels: 40_000_000}
}

// DecodeError reports input that could not be read as an image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("could not decode image: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a failure writing the normalized JPEG.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("failed to encode image to jpeg: %v", e.Err) }
func (e *EncodeError) Unwrap() error { return e.Err }

// NormalizeImage turns an uploaded image into an opaque JPEG whose sides do
// not exceed opts.MaxSide. Transparent and palette images are composited onto
// white first. Images already within bounds are re-encoded at their own size.
func NormalizeImage(data []byte, opts Options) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &DecodeError{Err: fmt.Errorf("zero-dimension image %dx%d", cfg.Width, cfg.Height)}
	}
	if opts.MaxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(opts.MaxPixels) {
		return nil, &DecodeError{Err: fmt.Errorf("image %dx%d exceeds %d pixels", cfg.Width, cfg.Height, opts.MaxPixels)}
	}

	// Decode the image. This loads it into memory.
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	canvas := flattenOnWhite(img)

	var out image.Image = canvas
	newWidth, newHeight := fitWithin(canvas.Bounds().Dx(), canvas.Bounds().Dy(), opts.MaxSide)
	if newWidth != canvas.Bounds().Dx() || newHeight != canvas.Bounds().Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(dst, dst.Rect, canvas, canvas.Bounds(), draw.Src, nil)
		out = dst
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = jpeg.DefaultQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: quality}); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}

// flattenOnWhite composites img over an opaque white canvas of the same size.
// The result is fully opaque, so opaque inputs come out unchanged.
func flattenOnWhite(img image.Image) *image.RGBA {
	b := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Over)
	return canvas
}

// fitWithin scales width and height down so neither exceeds maxSide,
// keeping the aspect ratio. It never scales up.
func fitWithin(width, height, maxSide int) (int, int) {
	if maxSide <= 0 || (width <= maxSide && height <= maxSide) {
		return width, height
	}

	var newWidth, newHeight int
	if width >= height {
		newWidth = maxSide
		newHeight = (height * maxSide) / width
	} else {
		newHeight = maxSide
		newWidth = (width * maxSide) / height
	}

	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	return newWidth, newHeight
}
