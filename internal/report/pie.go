package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/xtding233/panic-lab/internal/card"
	"github.com/xtding233/panic-lab/internal/sim"
)

// PieOptions controls the pie chart render.
type PieOptions struct {
	Size int // image edge in pixels
}

const defaultPieSize = 480

var piePalette = []color.RGBA{
	{0x1F, 0x77, 0xB4, 0xFF},
	{0xFF, 0x7F, 0x0E, 0xFF},
	{0x2C, 0xA0, 0x2C, 0xFF},
	{0xD6, 0x27, 0x28, 0xFF},
	{0x94, 0x67, 0xBD, 0xFF},
	{0x8C, 0x56, 0x4B, 0xFF},
	{0xE3, 0x77, 0xC2, 0xFF},
	{0x7F, 0x7F, 0x7F, 0xFF},
	{0xBC, 0xBD, 0x22, 0xFF},
	{0x17, 0xBE, 0xCF, 0xFF},
}

// pieSlices returns the amoebas that won at least once, in ring order.
func pieSlices(sum sim.Summary) ([]sim.Share, int) {
	var (
		out   []sim.Share
		total int
	)
	for _, sh := range sum.Shares {
		if sh.Card.Kind == card.KindAmoeba && sh.Count > 0 {
			out = append(out, sh)
			total += sh.Count
		}
	}
	return out, total
}

// WritePieFile renders the pie chart to a PNG file at path.
func WritePieFile(path string, sum sim.Summary, opts PieOptions) error {
	if slices, _ := pieSlices(sum); len(slices) == 0 {
		return ErrNothingMatched
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pie file: %w", err)
	}
	if err := RenderPie(f, sum, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RenderPie draws one slice per amoeba with at least one win, sized by its
// wins. Slices start at twelve o'clock and run counter-clockwise in ring
// order; each carries its percentage inside and "Line N" outside.
func RenderPie(w io.Writer, sum sim.Summary, opts PieOptions) error {
	slices, total := pieSlices(sum)
	if len(slices) == 0 {
		return ErrNothingMatched
	}
	size := opts.Size
	if size <= 0 {
		size = defaultPieSize
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	c := float64(size) / 2
	radius := c * 0.7

	// cumulative slice ends as fractions of the full turn
	ends := make([]float64, len(slices))
	acc := 0
	for i, sh := range slices {
		acc += sh.Count
		ends[i] = float64(acc) / float64(total)
	}
	ends[len(ends)-1] = 1

	for y := range size {
		for x := range size {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			img.SetRGBA(x, y, piePalette[sliceAt(ends, turnFromTop(dx, dy))%len(piePalette)])
		}
	}

	start := 0.0
	for i, sh := range slices {
		mid := (start + ends[i]) / 2
		start = ends[i]

		ix, iy := polar(c, radius*0.6, mid)
		drawText(img, fmt.Sprintf("%.1f%%", float64(sh.Count)/float64(total)*100), ix, iy, white)
		ox, oy := polar(c, radius+22, mid)
		drawText(img, fmt.Sprintf("Line %d", sh.Card.Line), ox, oy, ink)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode pie: %w", err)
	}
	return nil
}

// turnFromTop maps an offset from the center (y pointing down) to the
// counter-clockwise fraction of a turn measured from twelve o'clock.
func turnFromTop(dx, dy float64) float64 {
	a := math.Atan2(-dy, dx) - math.Pi/2
	if a < 0 {
		a += 2 * math.Pi
	}
	return a / (2 * math.Pi)
}

func sliceAt(ends []float64, f float64) int {
	for i, e := range ends {
		if f < e {
			return i
		}
	}
	return len(ends) - 1
}

// polar is the inverse of turnFromTop at distance r from (c, c).
func polar(c, r, turn float64) (int, int) {
	a := turn*2*math.Pi + math.Pi/2
	return int(math.Round(c + r*math.Cos(a))), int(math.Round(c - r*math.Sin(a)))
}
