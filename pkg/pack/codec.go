package pack

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"os"

	// Decoders for the supported source formats. JPEG output only.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	packerrors "github.com/provide-io/imagepack/pkg/pack/errors"
)

// ClampQuality clamps a requested quality into the JPEG encoder's valid
// range. Estimation uses the raw value; encoding always uses the clamped one.
func ClampQuality(quality int) int {
	if quality < MinJPEGQuality {
		return MinJPEGQuality
	}
	if quality > MaxJPEGQuality {
		return MaxJPEGQuality
	}
	return quality
}

// EncodeJPEG decodes the image at path and re-encodes it as an in-memory
// JPEG at the given quality. Transparency is not preserved: any alpha
// channel is flattened onto a white background before encoding.
func EncodeJPEG(path string, quality int) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", packerrors.ErrDecodeFailed, path, err)
	}

	img = flattenOntoWhite(img)

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: ClampQuality(quality)}
	if err := jpeg.Encode(&buf, img, opts); err != nil {
		return nil, fmt.Errorf("failed to encode image %s: %w", path, err)
	}

	return buf.Bytes(), nil
}

// flattenOntoWhite composites a possibly-transparent image over a white
// background. Opaque images pass through untouched.
func flattenOntoWhite(img image.Image) image.Image {
	type opaquer interface{ Opaque() bool }
	if o, ok := img.(opaquer); ok && o.Opaque() {
		return img
	}

	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)
	return flat
}
