package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/gen2brain/webp"
)

const ContentType = "image/webp"

// ToWebP decodes a PNG, JPEG or GIF image and re-encodes it as lossy WebP.
func ToWebP(data []byte, quality int) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (image.Image, error) {
	// Sprites are PNG, so try that first.
	img, err := png.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}

	img, _, err2 := image.Decode(bytes.NewReader(data))
	if err2 != nil {
		return nil, fmt.Errorf("failed to decode image (png: %v, generic: %v)", err, err2)
	}
	return img, nil
}
