// Package imageproc shrinks uploaded listing photos before they are forwarded to the backend.
package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	minQuality  = 40
	qualityStep = 10
)

type Options struct {
	MaxDimension int
	MaxBytes     int
	Quality      int
}

// Result is a compressed image. Compressed is false when the original bytes were kept.
type Result struct {
	Data        []byte
	ContentType string
	Filename    string
	Compressed  bool
}

type Compressor struct {
	opts Options
}

func NewCompressor(opts Options) *Compressor {
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = 1920
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 1 << 20
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = 85
	}
	return &Compressor{opts: opts}
}

// Compress fits the image within MaxDimension and re-encodes it, lowering JPEG
// quality until it fits in MaxBytes or reaches the quality floor.
func (c *Compressor) Compress(filename, contentType string, data []byte) (*Result, error) {
	original := &Result{Data: data, ContentType: contentType, Filename: filename}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return original, fmt.Errorf("decoding %s: %w", filename, err)
	}
	// Re-encoding drops EXIF, so the orientation is applied to the pixels.
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return original, fmt.Errorf("decoding %s: %w", filename, err)
	}

	bounds := img.Bounds()
	resized := bounds.Dx() > c.opts.MaxDimension || bounds.Dy() > c.opts.MaxDimension
	if resized {
		img = imaging.Fit(img, c.opts.MaxDimension, c.opts.MaxDimension, imaging.Lanczos)
	}
	if !resized && len(data) <= c.opts.MaxBytes {
		return original, nil
	}

	var encoded []byte
	switch format {
	case "png":
		encoded, err = encode(img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
		contentType = "image/png"
	default:
		encoded, err = c.encodeJPEG(img)
		contentType = "image/jpeg"
		filename = withExtension(filename, ".jpg")
	}
	if err != nil {
		return original, fmt.Errorf("encoding %s: %w", filename, err)
	}
	if len(encoded) >= len(data) {
		return original, nil
	}

	return &Result{Data: encoded, ContentType: contentType, Filename: filename, Compressed: true}, nil
}

func (c *Compressor) encodeJPEG(img image.Image) ([]byte, error) {
	var out []byte
	for quality := c.opts.Quality; ; quality -= qualityStep {
		if quality < minQuality {
			quality = minQuality
		}
		data, err := encode(img, imaging.JPEG, imaging.JPEGQuality(quality))
		if err != nil {
			return nil, err
		}
		out = data
		if len(out) <= c.opts.MaxBytes || quality == minQuality {
			return out, nil
		}
	}
}

func encode(img image.Image, format imaging.Format, opts ...imaging.EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func withExtension(filename, ext string) string {
	current := filepath.Ext(filename)
	if strings.EqualFold(current, ".jpg") || strings.EqualFold(current, ".jpeg") {
		return filename
	}
	return strings.TrimSuffix(filename, current) + ext
}
