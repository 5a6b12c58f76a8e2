package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}
	return img
}

func isWebP(t *testing.T, data []byte) {
	t.Helper()
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestToWebPFromPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sample()))

	out, err := ToWebP(buf.Bytes(), 90)
	require.NoError(t, err)
	isWebP(t, out)
}

func TestToWebPFromJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, sample(), nil))

	out, err := ToWebP(buf.Bytes(), 75)
	require.NoError(t, err)
	isWebP(t, out)
}

func TestToWebPRejectsGarbage(t *testing.T) {
	_, err := ToWebP([]byte("<html>not an image</html>"), 90)
	assert.ErrorContains(t, err, "failed to decode image")
}
