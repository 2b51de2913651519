package imageproc

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

func noisyImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := rand.New(rand.NewSource(1))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256)), 255})
		}
	}
	return img
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}))
	return buf.Bytes()
}

func TestCompressResizesLargeJPEG(t *testing.T) {
	data := encodeJPEG(t, noisyImage(800, 400))
	c := NewCompressor(Options{MaxDimension: 200, MaxBytes: 1 << 20, Quality: 85})

	res, err := c.Compress("frente.jpeg", "image/jpeg", data)
	require.NoError(t, err)
	assert.True(t, res.Compressed)
	assert.Equal(t, "image/jpeg", res.ContentType)
	assert.Equal(t, "frente.jpeg", res.Filename)
	assert.Less(t, len(res.Data), len(data))

	cfg, _, err := image.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
}

// withOrientation inserts an EXIF APP1 segment carrying the orientation tag
// right after the SOI marker.
func withOrientation(data []byte, orientation byte) []byte {
	app1 := []byte{
		0xff, 0xe1, 0x00, 0x22,
		'E', 'x', 'i', 'f', 0x00, 0x00,
		'M', 'M', 0x00, 0x2a, 0x00, 0x00, 0x00, 0x08,
		0x00, 0x01,
		0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, orientation, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	out := append([]byte{}, data[:2]...)
	out = append(out, app1...)
	return append(out, data[2:]...)
}

func TestCompressAppliesEXIFOrientation(t *testing.T) {
	data := withOrientation(encodeJPEG(t, noisyImage(800, 400)), 6)
	c := NewCompressor(Options{MaxDimension: 200, MaxBytes: 1 << 20, Quality: 85})

	res, err := c.Compress("celular.jpg", "image/jpeg", data)
	require.NoError(t, err)
	assert.True(t, res.Compressed)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestCompressLowersQualityToFitBudget(t *testing.T) {
	data := encodeJPEG(t, noisyImage(300, 300))
	budget := len(data) / 2
	c := NewCompressor(Options{MaxDimension: 1920, MaxBytes: budget, Quality: 95})

	res, err := c.Compress("patio.jpg", "image/jpeg", data)
	require.NoError(t, err)
	assert.True(t, res.Compressed)
	assert.LessOrEqual(t, len(res.Data), len(data))
}

func TestCompressKeepsSmallImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, noisyImage(20, 20)))
	c := NewCompressor(Options{})

	res, err := c.Compress("plano.png", "image/png", buf.Bytes())
	require.NoError(t, err)
	assert.False(t, res.Compressed)
	assert.Equal(t, buf.Bytes(), res.Data)
	assert.Equal(t, "image/png", res.ContentType)
}

func TestCompressKeepsOriginalOnError(t *testing.T) {
	data := []byte("not an image")
	res, err := NewCompressor(Options{}).Compress("roto.jpg", "image/jpeg", data)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, data, res.Data)
	assert.False(t, res.Compressed)
}

func TestWithExtension(t *testing.T) {
	assert.Equal(t, "a.jpg", withExtension("a.webp", ".jpg"))
	assert.Equal(t, "a.JPEG", withExtension("a.JPEG", ".jpg"))
	assert.Equal(t, "a.jpg", withExtension("a", ".jpg"))
}
