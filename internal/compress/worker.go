// Package compress re-encodes uploaded images off the caller's goroutine,
// the way the original app pushed avatar compression into a web worker.
package compress

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"deskline/internal/shared/errors"
	"deskline/internal/shared/goroutine"
	"deskline/internal/shared/logger"
)

// maxDimension bounds the longest image side after compression.
const maxDimension = 1280

// DefaultQuality matches the avatar upload path.
const DefaultQuality = 0.7

type Request struct {
	Data []byte
	Name string
	// Quality is the JPEG quality in (0, 1]; zero means DefaultQuality.
	Quality float64
}

type Result struct {
	Data         []byte
	OriginalName string
}

type job struct {
	req   Request
	reply chan jobResult
}

type jobResult struct {
	result *Result
	err    error
}

// Worker processes compression requests one at a time on a background
// goroutine. Close terminates it; requests after Close fail.
type Worker struct {
	jobs chan job
	done chan struct{}
}

func NewWorker(log logger.Interface) *Worker {
	w := &Worker{
		jobs: make(chan job),
		done: make(chan struct{}),
	}

	goroutine.SafeGo(log, "compress.worker", w.run)

	return w
}

func (w *Worker) run() {
	for {
		select {
		case <-w.done:
			return
		case j := <-w.jobs:
			result, err := recompress(j.req)
			j.reply <- jobResult{result: result, err: err}
		}
	}
}

// Compress submits a request and waits for the result.
func (w *Worker) Compress(ctx context.Context, req Request) (*Result, error) {
	reply := make(chan jobResult, 1)

	select {
	case w.jobs <- job{req: req, reply: reply}:
	case <-w.done:
		return nil, errors.NewWorkerError("compression worker is closed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-reply:
		return res.result, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close terminates the worker.
func (w *Worker) Close() {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
}

func recompress(req Request) (*Result, error) {
	src, _, err := image.Decode(bytes.NewReader(req.Data))
	if err != nil {
		return nil, errors.NewWorkerError("unsupported image data", err.Error())
	}

	quality := req.Quality
	if quality <= 0 || quality > 1 {
		quality = DefaultQuality
	}

	src = downscale(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: int(quality * 100)}); err != nil {
		return nil, errors.NewWorkerError(fmt.Sprintf("failed to encode %s", req.Name), err.Error())
	}

	return &Result{
		Data:         buf.Bytes(),
		OriginalName: req.Name,
	}, nil
}

// downscale shrinks the image so its longest side is at most
// maxDimension, preserving aspect ratio.
func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	longest := width
	if height > longest {
		longest = height
	}
	if longest <= maxDimension {
		return src
	}

	scale := float64(maxDimension) / float64(longest)
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return dst
}
