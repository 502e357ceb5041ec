// Package raster provides a bounds-checked RGBA pixel buffer used as the
// exchange format between frame renderers and the atlas compositor.
//
// Buffers are row-major with a top-left origin. Renderers that produce
// bottom-left-origin output (OpenGL readbacks, Blender image buffers) must
// be normalized with FlipVertical before compositing.
package raster

import (
	"fmt"
	"image"
	"image/draw"
)

// Buffer is an RGBA image with 8 bits per channel and top-left origin.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte // len == Width*Height*4, rows top to bottom
}

// New returns a fully transparent (all-zero) buffer of the given size.
func New(width, height int) *Buffer {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("raster: invalid buffer size %dx%d", width, height))
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// FromImage converts any image.Image into a Buffer, copying pixels.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	buf := New(bounds.Dx(), bounds.Dy())
	rgba := &image.RGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * 4,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
	draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)
	return buf
}

func (b *Buffer) offset(x, y int) int {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		panic(fmt.Sprintf("raster: pixel (%d,%d) out of bounds %dx%d", x, y, b.Width, b.Height))
	}
	return (y*b.Width + x) * 4
}

// At returns the RGBA components of the pixel at (x, y).
// Panics if the coordinates are out of bounds.
func (b *Buffer) At(x, y int) (r, g, bl, a byte) {
	o := b.offset(x, y)
	return b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3]
}

// Set writes the RGBA components of the pixel at (x, y).
// Panics if the coordinates are out of bounds.
func (b *Buffer) Set(x, y int, r, g, bl, a byte) {
	o := b.offset(x, y)
	b.Pix[o] = r
	b.Pix[o+1] = g
	b.Pix[o+2] = bl
	b.Pix[o+3] = a
}

// Alpha returns the alpha channel of the pixel at (x, y).
func (b *Buffer) Alpha(x, y int) byte {
	return b.Pix[b.offset(x, y)+3]
}

// Blit copies src into b with src's top-left corner at (dx, dy).
// Only the overlapping region is copied; there is no scaling. Source rows
// are copied with a single copy per row.
func (b *Buffer) Blit(src *Buffer, dx, dy int) {
	if src == nil {
		return
	}
	b.BlitRect(src, dx, dy, src.Width, src.Height)
}

// BlitRect copies at most maxW x maxH pixels from src's top-left corner
// into b at (dx, dy), clipping to both buffers. No scaling.
func (b *Buffer) BlitRect(src *Buffer, dx, dy, maxW, maxH int) {
	if src == nil {
		return
	}
	if maxW > src.Width {
		maxW = src.Width
	}
	if maxH > src.Height {
		maxH = src.Height
	}
	for sy := 0; sy < maxH; sy++ {
		ty := dy + sy
		if ty < 0 || ty >= b.Height {
			continue
		}
		// Clamp the copied span to the destination row.
		sx, tx := 0, dx
		if tx < 0 {
			sx = -tx
			tx = 0
		}
		width := maxW - sx
		if tx+width > b.Width {
			width = b.Width - tx
		}
		if width <= 0 {
			continue
		}
		srcOff := (sy*src.Width + sx) * 4
		dstOff := (ty*b.Width + tx) * 4
		copy(b.Pix[dstOff:dstOff+width*4], src.Pix[srcOff:srcOff+width*4])
	}
}

// FlipVertical mirrors the buffer in place about its horizontal axis,
// converting between top-left and bottom-left origin conventions.
func (b *Buffer) FlipVertical() {
	rowSize := b.Width * 4
	tmp := make([]byte, rowSize)
	for y := 0; y < b.Height/2; y++ {
		top := b.Pix[y*rowSize : (y+1)*rowSize]
		bot := b.Pix[(b.Height-1-y)*rowSize : (b.Height-y)*rowSize]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := New(b.Width, b.Height)
	copy(out.Pix, b.Pix)
	return out
}

// Image wraps the buffer in an image.RGBA sharing the same pixel storage.
func (b *Buffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
