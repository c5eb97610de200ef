// Package ingest turns a user-supplied image file into a compact,
// storage-safe encoded form: a base64 data URL small enough to live inside a
// meal record.
//
// Files at or below the size threshold pass through untouched. Larger files
// are decoded, scaled so the longer side is capped at 800 pixels (aspect
// preserved), and re-encoded as JPEG at quality 80. An image already within
// the pixel cap but over the byte threshold is still re-encoded, just not
// resized.
package ingest

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"os"

	// Decoders for the formats a user may reasonably upload.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// SizeThreshold is the byte size at or below which the original file is
// stored as-is.
const SizeThreshold = 500 * 1024

// MaxDimension caps the longer side of a recompressed image, in pixels.
const MaxDimension = 800

// Quality is the JPEG quality factor used when re-encoding.
const Quality = 80

// ErrUndecodable reports a corrupt or unsupported image file. The pipeline
// aborts with it instead of leaving the operation pending.
var ErrUndecodable = errors.New("undecodable image")

// Ingest converts raw image bytes into the encoded form stored on a meal
// record.
func Ingest(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrUndecodable)
	}
	if len(raw) <= SizeThreshold {
		return dataURL(http.DetectContentType(raw), raw), nil
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return "", fmt.Errorf("could not re-encode image: %w", err)
	}
	return dataURL("image/jpeg", buf.Bytes()), nil
}

// File reads and ingests an image from disk.
func File(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read image file %q: %w", path, err)
	}
	return Ingest(raw)
}

// Result is the outcome of an asynchronous ingestion.
type Result struct {
	Image string
	Err   error
}

// Go runs the pipeline without blocking the caller. The single result is
// delivered on the returned channel; the channel is buffered so the worker
// never leaks when the caller walks away.
func Go(raw []byte) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		img, err := Ingest(raw)
		ch <- Result{Image: img, Err: err}
	}()
	return ch
}

// shrink scales img so its longer side is at most MaxDimension, preserving
// aspect ratio. Images already within the cap are returned unchanged.
func shrink(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= MaxDimension && h <= MaxDimension {
		return img
	}

	var nw, nh int
	if w >= h {
		nw = MaxDimension
		nh = h * MaxDimension / w
	} else {
		nh = MaxDimension
		nw = w * MaxDimension / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// dataURL encodes raw into the data:<mime>;base64,<data> form the original
// storage uses.
func dataURL(mime string, raw []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}
