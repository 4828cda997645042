// Package thumbnail produces resized variants of uploaded images.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// Resize scales src to the given width, keeping the aspect ratio, and
// re-encodes it in its original format (gif falls back to png, animated
// frames are not preserved anyway).  src must be a decodable jpeg, png
// or gif.
func Resize(src []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid thumbnail width %d", width)
	}
	img, format, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty image %dx%d", b.Dx(), b.Dy())
	}
	height := (width*b.Dy() + b.Dx()/2) / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	var out bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&out, dst, &jpeg.Options{Quality: 90})
	case "gif":
		err = gif.Encode(&out, dst, nil)
	default:
		err = png.Encode(&out, dst)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s thumbnail: %w", format, err)
	}
	return out.Bytes(), nil
}
