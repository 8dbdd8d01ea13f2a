package compress

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

func encodeTestImage(t *testing.T, width, height int, asPNG bool) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 8 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	if asPNG {
		require.NoError(t, png.Encode(&buf, img))
	} else {
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	}
	return buf.Bytes()
}

func TestWorker_CompressReencodesAsJPEG(t *testing.T) {
	w := NewWorker(logger.NewLogger())
	defer w.Close()

	data := encodeTestImage(t, 64, 48, true)
	result, err := w.Compress(context.Background(), Request{
		Data:    data,
		Name:    "avatar.png",
		Quality: 0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "avatar.png", result.OriginalName)

	img, format, err := image.Decode(bytes.NewReader(result.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestWorker_DownscalesOversizedImages(t *testing.T) {
	w := NewWorker(logger.NewLogger())
	defer w.Close()

	data := encodeTestImage(t, 2560, 1440, false)
	result, err := w.Compress(context.Background(), Request{Data: data, Name: "wide.jpg"})
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 720, img.Bounds().Dy())
}

func TestWorker_RejectsNonImageData(t *testing.T) {
	w := NewWorker(logger.NewLogger())
	defer w.Close()

	_, err := w.Compress(context.Background(), Request{Data: []byte("not an image"), Name: "nope.txt"})

	require.Error(t, err)
	assert.True(t, errors.IsWorkerError(err))
}

func TestWorker_CloseStopsAcceptingWork(t *testing.T) {
	w := NewWorker(logger.NewLogger())
	w.Close()

	_, err := w.Compress(context.Background(), Request{Data: []byte{1}, Name: "x"})
	require.Error(t, err)
	assert.True(t, errors.IsWorkerError(err))

	// Close is idempotent.
	w.Close()
}

func TestWorker_CompressHonorsContext(t *testing.T) {
	w := NewWorker(logger.NewLogger())
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// Saturate the worker with a job so the next submit has to wait.
	big := encodeTestImage(t, 2560, 1440, false)
	go func() {
		_, _ = w.Compress(context.Background(), Request{Data: big, Name: "big.jpg"})
	}()

	time.Sleep(time.Millisecond)
	data := encodeTestImage(t, 32, 32, false)
	_, err := w.Compress(ctx, Request{Data: data, Name: "small.jpg"})
	if err != nil {
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}
}
