package surface

import (
	"fmt"
	"image"
	"io"
	"log"
	"sync"

	"fretdiagram/fretboard"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularFont     *truetype.Font
	regularFontOnce sync.Once
)

func getRegularFont() *truetype.Font {
	regularFontOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			log.Fatal(err)
		}
		regularFont = f
	})
	return regularFont
}

// Image is a fretboard.Surface backed by an in-memory raster. The drawable
// area is inset by margin on every side so dots on the edge rows stay whole.
type Image struct {
	dc         *gg.Context
	margin     float64
	background fretboard.Color
	faces      map[float64]font.Face
}

func NewImage(width, height int, margin float64) *Image {
	img := &Image{
		dc:         gg.NewContext(width, height),
		margin:     margin,
		background: PaperColor,
		faces:      map[float64]font.Face{},
	}
	img.Clear()
	return img
}

func setRGBColor(dc *gg.Context, c fretboard.Color) {
	dc.SetRGB(c.R, c.G, c.B)
}

// SetBackground changes the background color and repaints the image with it.
func (i *Image) SetBackground(c fretboard.Color) {
	i.background = c
	i.Clear()
}

// Clear paints the whole image, margins included, with the background.
func (i *Image) Clear() {
	setRGBColor(i.dc, i.background)
	i.dc.DrawRectangle(0, 0, float64(i.dc.Width()), float64(i.dc.Height()))
	i.dc.Fill()
}

func (i *Image) Size() (float64, float64) {
	return float64(i.dc.Width()) - 2*i.margin, float64(i.dc.Height()) - 2*i.margin
}

func (i *Image) DrawLine(p1, p2 fretboard.Point, c fretboard.Color, width float64) {
	m := i.margin
	setRGBColor(i.dc, c)
	i.dc.SetLineWidth(width)
	i.dc.DrawLine(p1.X+m, p1.Y+m, p2.X+m, p2.Y+m)
	i.dc.Stroke()
}

func (i *Image) DrawCircle(center fretboard.Point, radius float64, c fretboard.Color) {
	setRGBColor(i.dc, c)
	i.dc.DrawCircle(center.X+i.margin, center.Y+i.margin, radius)
	i.dc.Fill()
}

func (i *Image) DrawText(text string, pos fretboard.Point, c fretboard.Color, size float64) {
	i.dc.SetFontFace(i.face(size))
	setRGBColor(i.dc, c)
	i.dc.DrawStringAnchored(text, pos.X+i.margin, pos.Y+i.margin, 0.5, 0.35)
}

func (i *Image) face(size float64) font.Face {
	if f, ok := i.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(getRegularFont(), &truetype.Options{Size: size})
	i.faces[size] = f
	return f
}

func (i *Image) Image() image.Image {
	return i.dc.Image()
}

func (i *Image) EncodePNG(w io.Writer) error {
	if err := i.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (i *Image) SavePNG(path string) error {
	if err := i.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
