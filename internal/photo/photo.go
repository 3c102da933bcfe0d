// Package photo handles photo payloads: data-URL validation, the per-entity
// photo cap, and BlurHash placeholders for list views.
package photo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"strings"

	"github.com/bbrks/go-blurhash"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/errors"
)

// blurHashSize is the target size for BlurHash computation.
// BlurHash doesn't need high resolution - a small thumbnail produces nearly
// identical results while cutting computation to milliseconds.
const blurHashSize = 64

// Result is a capped photo list plus whether anything was dropped.
type Result struct {
	Photos    []string `json:"photos"`
	Truncated bool     `json:"truncated"`
}

// Cap truncates a photo list to the per-entity cap. Extra photos are
// dropped silently from the tail; the flag lets callers surface a notice.
func Cap(photos []string) Result {
	if len(photos) <= domain.MaxPhotos {
		return Result{Photos: photos}
	}
	return Result{Photos: photos[:domain.MaxPhotos], Truncated: true}
}

// ParseDataURL splits a data-URL photo payload into its MIME type and
// decoded bytes. Only base64-encoded image payloads are accepted.
func ParseDataURL(payload string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(payload, "data:")
	if !ok {
		return "", nil, errors.Validation("photo payload is not a data URL")
	}
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.Validation("photo payload has no data section")
	}
	mime, params, _ := strings.Cut(meta, ";")
	if !strings.HasPrefix(mime, "image/") {
		return "", nil, errors.Validationf("unsupported photo type %q", mime)
	}
	if params != "base64" {
		return "", nil, errors.Validation("photo payload must be base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, errors.Validation("photo payload is not valid base64").WithCause(err)
	}
	return mime, data, nil
}

// EncodeDataURL builds a data-URL payload from raw image bytes.
func EncodeDataURL(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// Placeholder generates a BlurHash string from a data-URL photo payload.
// Uses 4x3 components for a good balance of size (~20-30 chars) and detail.
func Placeholder(payload string) (string, error) {
	_, data, err := ParseDataURL(payload)
	if err != nil {
		return "", err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errors.Validation("photo payload is not a decodable image").WithCause(err)
	}

	hash, err := blurhash.Encode(4, 3, resizeForBlurHash(img))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "encode blurhash")
	}
	return hash, nil
}

// resizeForBlurHash creates a small thumbnail suitable for BlurHash
// computation. Nearest-neighbor scaling is fast and sufficient here.
func resizeForBlurHash(img image.Image) image.Image {
	bounds := img.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	if srcWidth <= blurHashSize && srcHeight <= blurHashSize {
		return img
	}

	var dstWidth, dstHeight int
	if srcWidth > srcHeight {
		dstWidth = blurHashSize
		dstHeight = max((srcHeight*blurHashSize)/srcWidth, 1)
	} else {
		dstHeight = blurHashSize
		dstWidth = max((srcWidth*blurHashSize)/srcHeight, 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for y := range dstHeight {
		for x := range dstWidth {
			srcX := int(float64(x) * xRatio)
			srcY := int(float64(y) * yRatio)
			dst.Set(x, y, img.At(bounds.Min.X+srcX, bounds.Min.Y+srcY))
		}
	}
	return dst
}
