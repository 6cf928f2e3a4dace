// Package qrcode renders URLs as PNG QR codes.
package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/url"
	"os"
	"path/filepath"

	goqrcode "github.com/skip2/go-qrcode"
)

// ErrInvalidURL is returned when the content is not an absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid QR code URL")

// Options controls the rendered image.
type Options struct {
	// BoxSize is the edge length of one module in pixels.
	BoxSize int
	// Border is the quiet zone width in modules.
	Border int
	Level  goqrcode.RecoveryLevel
}

// DefaultOptions returns medium error correction, 10px modules and a 5-module border.
func DefaultOptions() Options {
	return Options{
		BoxSize: 10,
		Border:  5,
		Level:   goqrcode.Medium,
	}
}

// ValidateURL checks that raw is an absolute http or https URL.
func ValidateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

// Render encodes content as a black-on-white QR code and returns the PNG bytes.
func Render(content string, opts Options) ([]byte, error) {
	if err := ValidateURL(content); err != nil {
		return nil, err
	}
	if opts.BoxSize <= 0 {
		opts.BoxSize = DefaultOptions().BoxSize
	}
	if opts.Border < 0 {
		opts.Border = 0
	}

	code, err := goqrcode.New(content, opts.Level)
	if err != nil {
		return nil, fmt.Errorf("encode QR code: %w", err)
	}
	code.DisableBorder = true
	code.ForegroundColor = color.Black
	code.BackgroundColor = color.White

	// A negative size renders each module at -size pixels.
	symbol := code.Image(-opts.BoxSize)

	pad := opts.Border * opts.BoxSize
	b := symbol.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*pad, b.Dy()+2*pad))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, b.Add(image.Pt(pad, pad)), symbol, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders content and writes the PNG to path, creating its directory.
func WriteFile(content, path string, opts Options) error {
	data, err := Render(content, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create QR directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write QR image: %w", err)
	}
	return nil
}
