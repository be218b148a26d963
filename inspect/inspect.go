package inspect

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"adaptivebg"
)

// Report summarizes the pixels of a decoded PNG.
type Report struct {
	Width    int
	Height   int
	Distinct int
	// Fill is the most frequent color.
	Fill adaptivebg.RGB
}

func (r *Report) Uniform() bool {
	return r.Distinct == 1
}

func (r *Report) Square() bool {
	return r.Width == r.Height
}

func File(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Inspect(f)
}

func Inspect(r io.Reader) (*Report, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode png: %w", err)
	}
	return summarize(img), nil
}

func summarize(img image.Image) *Report {
	b := img.Bounds()
	hist := make(map[adaptivebg.RGB]int)
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			c := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
			hist[adaptivebg.RGB{R: c.R, G: c.G, B: c.B}]++
		}
	}

	rep := &Report{Width: b.Dx(), Height: b.Dy(), Distinct: len(hist)}
	best := -1
	for c, n := range hist {
		if n > best || (n == best && less(c, rep.Fill)) {
			best = n
			rep.Fill = c
		}
	}
	return rep
}

// less breaks ties so Fill does not depend on map order.
func less(a, b adaptivebg.RGB) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}
