package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxBytes     = 1 << 20
	DefaultMaxDimension = 4096
	defaultMinDimension = 64
	downscaleStep       = 0.75
)

var jpegQualities = []int{85, 75, 65, 55, 45, 35}

var (
	ErrUnsupportedImage = errors.New("unsupported image format")
	ErrCannotFit        = errors.New("image cannot be compressed under the size limit")
)

type Config struct {
	MaxBytes     int
	MaxDimension int
	MinDimension int
}

// Output is a compressed image and the media type of its encoding.
type Output struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Compressor shrinks images until their encoding fits within MaxBytes. It is
// stateless and safe for concurrent use.
type Compressor struct {
	maxBytes     int
	maxDimension int
	minDimension int
}

func NewCompressor(cfg Config) *Compressor {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = DefaultMaxDimension
	}
	if cfg.MinDimension <= 0 {
		cfg.MinDimension = defaultMinDimension
	}
	return &Compressor{
		maxBytes:     cfg.MaxBytes,
		maxDimension: cfg.MaxDimension,
		minDimension: cfg.MinDimension,
	}
}

func (c *Compressor) MaxBytes() int {
	return c.maxBytes
}

// Compress returns data unchanged when it already fits the byte and dimension
// limits. Otherwise JPEG and WebP input is re-encoded as JPEG with decreasing
// quality, PNG and GIF keep their format, and the image is downscaled step by
// step until it fits or falls below the minimum dimension.
func (c *Compressor) Compress(data []byte) (Output, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if len(data) <= c.maxBytes && cfg.Width <= c.maxDimension && cfg.Height <= c.maxDimension {
		return Output{Data: data, ContentType: contentType(format), Width: cfg.Width, Height: cfg.Height}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Output{}, fmt.Errorf("decode %s: %w", format, err)
	}
	img = fitWithin(img, c.maxDimension)

	for {
		bounds := img.Bounds()
		encoded, outFormat, err := c.encodeSmallest(img, format)
		if err != nil {
			return Output{}, err
		}
		if len(encoded) <= c.maxBytes {
			return Output{Data: encoded, ContentType: contentType(outFormat), Width: bounds.Dx(), Height: bounds.Dy()}, nil
		}

		nextW := int(float64(bounds.Dx()) * downscaleStep)
		nextH := int(float64(bounds.Dy()) * downscaleStep)
		if nextW < c.minDimension || nextH < c.minDimension {
			return Output{}, fmt.Errorf("%w: %d bytes at %dx%d, limit %d", ErrCannotFit, len(encoded), bounds.Dx(), bounds.Dy(), c.maxBytes)
		}
		img = resize(img, nextW, nextH)
	}
}

// encodeSmallest encodes img in its target format, stopping at the first
// JPEG quality that fits.
func (c *Compressor) encodeSmallest(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "png", nil
	case "gif":
		if err := gif.Encode(&buf, img, &gif.Options{NumColors: 256}); err != nil {
			return nil, "", fmt.Errorf("encode gif: %w", err)
		}
		return buf.Bytes(), "gif", nil
	}

	var last []byte
	for _, quality := range jpegQualities {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		last = buf.Bytes()
		if len(last) <= c.maxBytes {
			break
		}
	}
	return append([]byte(nil), last...), "jpeg", nil
}

func fitWithin(img image.Image, maxDimension int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}
	if w >= h {
		return resize(img, maxDimension, h*maxDimension/w)
	}
	return resize(img, w*maxDimension/h, maxDimension)
}

func resize(img image.Image, width, height int) image.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func contentType(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
