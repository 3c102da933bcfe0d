package photo_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/photo"
)

func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 13), B: 180, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return photo.EncodeDataURL("image/png", buf.Bytes())
}

func TestCap(t *testing.T) {
	photos := make([]string, domain.MaxPhotos+2)
	for i := range photos {
		photos[i] = fmt.Sprintf("p%d", i)
	}

	res := photo.Cap(photos)
	assert.True(t, res.Truncated)
	assert.Equal(t, photos[:domain.MaxPhotos], res.Photos)

	res = photo.Cap(photos[:2])
	assert.False(t, res.Truncated)
	assert.Len(t, res.Photos, 2)

	res = photo.Cap(nil)
	assert.False(t, res.Truncated)
	assert.Empty(t, res.Photos)
}

func TestParseDataURL(t *testing.T) {
	payload := pngDataURL(t, 4, 4)

	mime, data, err := photo.ParseDataURL(payload)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.NotEmpty(t, data)
}

func TestParseDataURL_Rejects(t *testing.T) {
	for _, payload := range []string{
		"",
		"https://example.com/photo.png",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,not-base64-marked",
		"data:image/png;base64,%%%not-base64%%%",
	} {
		_, _, err := photo.ParseDataURL(payload)
		assert.Error(t, err, "payload=%q", payload)
	}
}

func TestPlaceholder(t *testing.T) {
	hash, err := photo.Placeholder(pngDataURL(t, 120, 80))
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Small images skip the resize path but still hash.
	small, err := photo.Placeholder(pngDataURL(t, 8, 8))
	require.NoError(t, err)
	assert.NotEmpty(t, small)
}

func TestPlaceholder_RejectsNonImage(t *testing.T) {
	_, err := photo.Placeholder(photo.EncodeDataURL("image/png", []byte("not an image")))
	assert.Error(t, err)
}
