package adaptivebg

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/k1LoW/errors"
	"golang.org/x/image/draw"
)

const (
	// DefaultSize is the edge length of the adaptive icon background.
	DefaultSize       = 1024
	// DefaultOutputPath is written relative to the working directory.
	DefaultOutputPath = "app_icon_adaptive_bg.png"

	// MaxSize bounds the edge length so a bitmap never exceeds 1 GiB.
	MaxSize = 16384
)

// Encoder writes m to w. *png.Encoder satisfies it.
type Encoder interface {
	Encode(w io.Writer, m image.Image) error
}

type Generator struct {
	encoder Encoder
	logger  *slog.Logger
}

type Option func(*Generator) error

func WithEncoder(enc Encoder) Option {
	return func(g *Generator) error {
		g.encoder = enc
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			return fmt.Errorf("logger is nil")
		}
		g.logger = logger
		return nil
	}
}

func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		encoder: &png.Encoder{},
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Result describes a written file.
type Result struct {
	Path  string
	Size  int
	Color RGB
}

func (r *Result) String() string {
	return fmt.Sprintf("Created %s (%dx%d) with color %s", r.Path, r.Size, r.Size, r.Color)
}

// NewBitmap returns a size x size opaque image with every pixel set to c.
func NewBitmap(size int, c RGB) (_ *image.RGBA, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if size <= 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidSize, size, MaxSize)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img, nil
}

// Generate writes a size x size PNG filled with c to outputPath. The parent
// directory must exist. On failure no file is left at outputPath.
func (g *Generator) Generate(size int, c RGB, outputPath string) (_ *Result, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if g.encoder == nil {
		return nil, ErrCapabilityMissing
	}
	img, err := NewBitmap(size, c)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("bitmap allocated", slog.Int("size", size), slog.String("color", c.Hex()))

	if err := g.write(img, outputPath); err != nil {
		return nil, err
	}
	g.logger.Debug("png written", slog.String("path", outputPath))

	return &Result{Path: outputPath, Size: size, Color: c}, nil
}

func (g *Generator) write(img image.Image, outputPath string) (err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			if rerr := os.Remove(outputPath); rerr != nil {
				g.logger.Warn("failed to remove partial file", slog.String("path", outputPath), slog.String("error", rerr.Error()))
			}
		}
	}()

	if err := g.encoder.Encode(f, img); err != nil {
		return fmt.Errorf("could not encode png: %w", err)
	}
	return nil
}
