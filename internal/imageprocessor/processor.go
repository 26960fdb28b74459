package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Normalizer downscales uploaded photos so dog and profile images are stored
// at a bounded size regardless of what the client sends.
type Normalizer struct {
	maxEdge int
	quality int
}

func NewNormalizer(maxEdge, quality int) *Normalizer {
	if maxEdge <= 0 {
		maxEdge = 1600
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Normalizer{maxEdge: maxEdge, quality: quality}
}

// Normalize decodes the payload, downscales it when either edge exceeds the
// bound and re-encodes in the source format. Payloads that are not decodable
// JPEG or PNG pass through unchanged.
func (n *Normalizer) Normalize(reader io.Reader) (io.Reader, int64, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, fmt.Errorf("read image payload: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return bytes.NewReader(raw), int64(len(raw)), nil
	}

	bounds := img.Bounds()
	if bounds.Dx() <= n.maxEdge && bounds.Dy() <= n.maxEdge {
		return bytes.NewReader(raw), int64(len(raw)), nil
	}

	resized := n.scale(img)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: n.quality})
	case "png":
		err = png.Encode(&buf, resized)
	default:
		// Decodable but not re-encodable here; keep the original bytes.
		return bytes.NewReader(raw), int64(len(raw)), nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("encode %s image: %w", format, err)
	}
	return &buf, int64(buf.Len()), nil
}

// scale fits the image into a maxEdge square, keeping aspect ratio.
func (n *Normalizer) scale(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth := n.maxEdge
	newHeight := n.maxEdge
	ratio := float64(width) / float64(height)
	if ratio > 1 {
		newHeight = int(float64(n.maxEdge) / ratio)
	} else {
		newWidth = int(float64(n.maxEdge) * ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
