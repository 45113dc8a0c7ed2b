// This file is part of Specx.
//
// Specx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Specx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Specx.  If not, see <https://www.gnu.org/licenses/>.

// Package framebuffer is an implementation of the display.Renderer interface
// that draws the screen into an image.RGBA. The image can be saved to disk as
// a PNG file.
//
// The image is twice the width of the screen so that the hires modes can be
// drawn without loss. Lores pixels are drawn two pixels wide.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/television/specification"
	"golang.org/x/image/draw"
)

// SaveError is the pattern used for errors returned by Save().
const SaveError = "framebuffer: %v"

// Width and Height of the image.
const (
	Width  = specification.ScreenWidth * 2
	Height = specification.ScreenHeight
)

// Framebuffer implements the display.Renderer interface.
type Framebuffer struct {
	img *image.RGBA

	// areas painted since the end of the last frame
	painted []image.Rectangle

	// areas painted in the most recently completed frame
	lastPainted []image.Rectangle

	frameNum int
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{
		img: image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
	draw.Draw(fb.img, fb.img.Bounds(), &image.Uniform{C: specification.Colour(0)}, image.Point{}, draw.Src)
	return fb
}

func (fb *Framebuffer) plot(col int, line int, data uint16, bits int, ink uint8, paper uint8) {
	x := col * 16
	w := 16 / bits
	i := specification.Colour(ink)
	p := specification.Colour(paper)
	for b := bits - 1; b >= 0; b-- {
		c := p
		if data&(1<<b) != 0 {
			c = i
		}
		for j := 0; j < w; j++ {
			fb.img.SetRGBA(x, line, c)
			x++
		}
	}
}

// PlotChunk8 implements the display.Renderer interface.
func (fb *Framebuffer) PlotChunk8(col int, line int, data uint8, ink uint8, paper uint8) {
	fb.plot(col, line, uint16(data), 8, ink, paper)
}

// PlotChunk16 implements the display.Renderer interface.
func (fb *Framebuffer) PlotChunk16(col int, line int, data uint16, ink uint8, paper uint8) {
	fb.plot(col, line, data, 16, ink, paper)
}

// PaintArea implements the display.Renderer interface. The area is in lores
// pixels.
func (fb *Framebuffer) PaintArea(x int, y int, w int, h int) {
	fb.painted = append(fb.painted, image.Rect(x*2, y, (x+w)*2, y+h))
}

// FrameEnd implements the display.Renderer interface.
func (fb *Framebuffer) FrameEnd() {
	fb.lastPainted = append(fb.lastPainted[:0], fb.painted...)
	fb.painted = fb.painted[:0]
	fb.frameNum++
}

// Painted returns the areas of the image that were changed in the most
// recently completed frame.
func (fb *Framebuffer) Painted() []image.Rectangle {
	return fb.lastPainted
}

// FrameNum returns the number of completed frames.
func (fb *Framebuffer) FrameNum() int {
	return fb.frameNum
}

// Image returns the framebuffer image. The image will change when the
// emulation runs.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// At returns the colour of the hires pixel.
func (fb *Framebuffer) At(x int, y int) color.RGBA {
	return fb.img.RGBAAt(x, y)
}

// Scaled returns a copy of the image scaled by the horizontal and vertical
// factors. A vertical scale of two gives an image with the correct aspect
// ratio.
func (fb *Framebuffer) Scaled(sx int, sy int) *image.RGBA {
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, Width*sx, Height*sy))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), fb.img, fb.img.Bounds(), draw.Src, nil)
	return dst
}

// Save the image to disk as a PNG file. The image is scaled vertically so
// that the aspect ratio is correct. An existing file will not be
// overwritten.
func (fb *Framebuffer) Save(filename string) error {
	f, err := os.Open(filename)
	if f != nil {
		f.Close()
		return curated.Errorf(SaveError, fmt.Sprintf("image file (%s) already exists", filename))
	}
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf(SaveError, err)
	}

	f, err = os.Create(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}
	defer f.Close()

	err = png.Encode(f, fb.Scaled(1, 2))
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}
