package report

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/xtding233/panic-lab/internal/card"
	"github.com/xtding233/panic-lab/internal/sim"
)

var ErrNothingMatched = errors.New("no matches recorded; nothing to render")

// BoardOptions controls the board render.
type BoardOptions struct {
	CardSize int // tile edge in pixels
}

var (
	background = color.RGBA{0xC7, 0xC7, 0xC7, 0xFF}
	ink        = color.RGBA{0x33, 0x33, 0x33, 0xFF}
	white      = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

	labFill = map[card.LabColor]color.RGBA{
		card.LabRed:    {0xD9, 0x4B, 0x4B, 0xFF},
		card.LabGreen:  {0x4C, 0xAF, 0x50, 0xFF},
		card.LabYellow: {0xF2, 0xC9, 0x4C, 0xFF},
	}
	amoebaFill = map[card.Color]color.RGBA{
		card.Red:  {0xE5, 0x73, 0x73, 0xFF},
		card.Blue: {0x64, 0x95, 0xED, 0xFF},
	}
	ventFill      = color.RGBA{0x55, 0x55, 0x55, 0xFF}
	evolutionFill = color.RGBA{0x9C, 0x7B, 0xC9, 0xFF}
)

// WriteBoardFile renders the board to a PNG file at path.
func WriteBoardFile(path string, sum sim.Summary, opts BoardOptions) error {
	if sum.Matched == 0 {
		return ErrNothingMatched
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create board file: %w", err)
	}
	if err := RenderBoard(f, sum, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RenderBoard draws the ring as a PNG: cards on a circle starting at twelve
// o'clock and running clockwise, each labelled with its source line, amoebas
// with their win chance and evolutions with the axes they rotate.
func RenderBoard(w io.Writer, sum sim.Summary, opts BoardOptions) error {
	if sum.Matched == 0 {
		return ErrNothingMatched
	}
	size := opts.CardSize
	if size <= 0 {
		size = 70
	}

	n := len(sum.Shares)
	// keep neighboring tiles apart: circumference ~ 1.5 tiles per card
	radius := math.Max(float64(size)*2, float64(n)*float64(size)*1.5/(2*math.Pi))
	textRadius := radius + float64(size)*0.95
	half := int(math.Ceil(textRadius + float64(size)))
	img := image.NewRGBA(image.Rect(0, 0, 2*half, 2*half))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, sh := range sum.Shares {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		cx := half + int(math.Round(radius*math.Cos(angle)))
		cy := half + int(math.Round(radius*math.Sin(angle)))
		drawTile(img, sh.Card, image.Rect(cx-size/2, cy-size/2, cx+size/2, cy+size/2))

		tx := half + int(math.Round(textRadius*math.Cos(angle)))
		ty := half + int(math.Round(textRadius*math.Sin(angle)))
		if label := caption(sh); label != "" {
			drawText(img, label, tx, ty, ink)
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return nil
}

func caption(sh sim.Share) string {
	switch sh.Card.Kind {
	case card.KindAmoeba:
		return fmt.Sprintf("%.1f%%", sh.WinChance*100)
	case card.KindEvolution:
		return strings.Join(sh.Card.Evolve.Names(), " / ")
	}
	return ""
}

func drawTile(img *image.RGBA, c card.Card, r image.Rectangle) {
	fill := ventFill
	switch c.Kind {
	case card.KindLab:
		fill = labFill[c.Lab]
	case card.KindAmoeba:
		fill = amoebaFill[c.Target.Color]
	case card.KindEvolution:
		fill = evolutionFill
	}
	draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)
	outline(img, r, ink)

	if c.Kind == card.KindAmoeba {
		drawPattern(img, r, c.Target.Pattern)
		drawEyes(img, r, c.Target.Eye)
	}
	if c.Kind == card.KindVent {
		drawText(img, "VENT", (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2, white)
	}
	drawText(img, fmt.Sprintf("%d", c.Line), r.Min.X+10, r.Min.Y+9, ink)
}

func drawPattern(img *image.RGBA, r image.Rectangle, p card.Pattern) {
	shade := image.NewUniform(color.RGBA{0, 0, 0, 0x40})
	inner := r.Inset(4)
	switch p {
	case card.Striped:
		for y := inner.Min.Y; y < inner.Max.Y; y += 6 {
			draw.Draw(img, image.Rect(inner.Min.X, y, inner.Max.X, y+2), shade, image.Point{}, draw.Over)
		}
	case card.Dotty:
		for y := inner.Min.Y + 2; y < inner.Max.Y-2; y += 8 {
			for x := inner.Min.X + 2; x < inner.Max.X-2; x += 8 {
				draw.Draw(img, image.Rect(x, y, x+3, y+3), shade, image.Point{}, draw.Over)
			}
		}
	}
}

func drawEyes(img *image.RGBA, r image.Rectangle, e card.Eye) {
	cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
	eye := r.Dx() / 8
	if eye < 2 {
		eye = 2
	}
	centers := []int{cx}
	if e == card.Double {
		centers = []int{cx - eye, cx + eye}
	}
	for _, x := range centers {
		draw.Draw(img, image.Rect(x-eye/2-1, cy-eye/2-1, x+eye/2+1, cy+eye/2+1), image.NewUniform(ink), image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(x-eye/2, cy-eye/2, x+eye/2, cy+eye/2), image.NewUniform(white), image.Point{}, draw.Src)
	}
}

func outline(img *image.RGBA, r image.Rectangle, c color.Color) {
	u := image.NewUniform(c)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

// drawText centers s on (x, y).
func drawText(img *image.RGBA, s string, x, y int, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	width := d.MeasureString(s)
	m := face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.I(x) - width/2,
		Y: fixed.I(y) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(s)
}
