package storage_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/infrastructure/storage"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNormalizer_Normalize(t *testing.T) {
	n := storage.NewNormalizer()

	t.Run("accepts jpg, jpeg and png extensions", func(t *testing.T) {
		data := encodeJPEG(t, solidImage(10, 10, color.RGBA{R: 255, A: 255}))
		pngData := encodePNG(t, solidImage(10, 10, color.RGBA{G: 255, A: 255}))

		for filename, payload := range map[string][]byte{
			"photo.jpg":  data,
			"photo.jpeg": data,
			"photo.PNG":  pngData,
		} {
			result, err := n.Normalize(payload, filename)
			require.NoError(t, err, filename)
			assert.Equal(t, 10, result.Width)
			assert.Equal(t, 10, result.Height)
		}
	})

	t.Run("rejects unsupported extensions without decoding", func(t *testing.T) {
		for _, filename := range []string{"photo.gif", "photo.bmp", "photo.webp", "photo", "photo.jpg.txt"} {
			_, err := n.Normalize([]byte("irrelevant"), filename)
			assert.ErrorIs(t, err, domain.ErrUnsupportedFormat, filename)
		}
	})

	t.Run("rejects bytes that do not decode", func(t *testing.T) {
		_, err := n.Normalize([]byte("definitely not an image"), "photo.jpg")
		assert.ErrorIs(t, err, domain.ErrDecodeFailed)
	})

	t.Run("extension is checked before content", func(t *testing.T) {
		// Valid PNG bytes under a rejected extension still fail on the
		// extension, not the decode.
		data := encodePNG(t, solidImage(4, 4, color.White))
		_, err := n.Normalize(data, "photo.gif")
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("re-encodes as jpeg", func(t *testing.T) {
		data := encodePNG(t, solidImage(16, 16, color.RGBA{B: 200, A: 255}))

		result, err := n.Normalize(data, "photo.png")
		require.NoError(t, err)

		decoded, format, err := image.Decode(bytes.NewReader(result.Data))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 16, decoded.Bounds().Dx())
	})

	t.Run("flattens translucent pixels keeping raw rgb", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
			}
		}

		result, err := n.Normalize(encodePNG(t, img), "photo.png")
		require.NoError(t, err)

		r, g, b, a := result.Source.At(4, 4).RGBA()
		assert.Equal(t, uint32(0xffff), a)
		// JPEG has not touched Source yet, so channel values are exact.
		assert.Equal(t, uint32(200), r>>8)
		assert.Equal(t, uint32(100), g>>8)
		assert.Equal(t, uint32(50), b>>8)
	})

	t.Run("keeps dimensions", func(t *testing.T) {
		result, err := n.Normalize(encodePNG(t, solidImage(800, 600, color.Black)), "photo.png")
		require.NoError(t, err)
		assert.Equal(t, 800, result.Width)
		assert.Equal(t, 600, result.Height)
	})
}
