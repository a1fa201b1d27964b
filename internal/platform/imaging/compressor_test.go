package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noisyImage(w, h int, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image, quality int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}))
	return buf.Bytes()
}

func TestCompress_SmallImagePassesThrough(t *testing.T) {
	data := encodePNG(t, noisyImage(16, 16, 1))

	out, err := NewCompressor(Config{}).Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out.Data)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, 16, out.Width)
}

func TestCompress_LargeJPEGFitsLimit(t *testing.T) {
	data := encodeJPEG(t, noisyImage(600, 400, 2), 100)
	limit := len(data) / 3

	out, err := NewCompressor(Config{MaxBytes: limit}).Compress(data)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out.Data), limit)
	assert.Equal(t, "image/jpeg", out.ContentType)

	_, format, err := image.DecodeConfig(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestCompress_PNGKeepsFormatAndDownscales(t *testing.T) {
	data := encodePNG(t, noisyImage(300, 300, 3))
	limit := len(data) / 2

	out, err := NewCompressor(Config{MaxBytes: limit}).Compress(data)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out.Data), limit)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Less(t, out.Width, 300)
}

func TestCompress_OversizedDimensionsAreReduced(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 500, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 500; x++ {
			img.Set(x, y, color.White)
		}
	}
	data := encodePNG(t, img)

	out, err := NewCompressor(Config{MaxDimension: 100}).Compress(data)
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, 100, out.Width)
	assert.Equal(t, 40, out.Height)
}

func TestCompress_FailsWhenItCannotFit(t *testing.T) {
	data := encodePNG(t, noisyImage(128, 128, 4))

	_, err := NewCompressor(Config{MaxBytes: 64, MinDimension: 32}).Compress(data)
	require.ErrorIs(t, err, ErrCannotFit)
}

func TestCompress_RejectsNonImage(t *testing.T) {
	_, err := NewCompressor(Config{}).Compress([]byte("definitely not an image"))
	require.ErrorIs(t, err, ErrUnsupportedImage)
}
