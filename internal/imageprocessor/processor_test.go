package imageprocessor

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestNormalize_DownscalesOversized(t *testing.T) {
	n := NewNormalizer(100, 85)

	out, size, err := n.Normalize(bytes.NewReader(pngBytes(t, 400, 200)))
	require.NoError(t, err)
	require.Positive(t, size)

	img, format, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestNormalize_KeepsSmallImages(t *testing.T) {
	n := NewNormalizer(100, 85)
	original := pngBytes(t, 60, 40)

	out, size, err := n.Normalize(bytes.NewReader(original))
	require.NoError(t, err)
	assert.Equal(t, int64(len(original)), size)

	data, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestNormalize_PassesThroughNonImages(t *testing.T) {
	n := NewNormalizer(100, 85)
	payload := []byte("not an image at all")

	out, size, err := n.Normalize(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), size)

	data, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}
