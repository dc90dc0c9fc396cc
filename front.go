package card2pdf

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/alnah/go-card2pdf/internal/layout"
	"github.com/alnah/go-card2pdf/internal/richtext"
	"github.com/alnah/go-card2pdf/internal/style"
)

// titleImageGap separates the front title from the image above it.
const titleImageGap = 1.0

// Box is a rectangle in millimetres, top-left origin.
type Box struct {
	X, Y, W, H float64
}

// BestOrientation reports whether an image must be turned 90 degrees to
// match the card: it is when one is landscape and the other is not.
func BestOrientation(imgW, imgH, cardW, cardH float64) (rotate bool) {
	return (imgW > imgH) != (cardW > cardH)
}

// TitleScale returns the factor a title is scaled by so that it takes no
// more room than targetChars characters. A zero target disables scaling.
func TitleScale(title string, targetChars int) float64 {
	n := len([]rune(title))
	if targetChars <= 0 || n <= targetChars {
		return 1
	}
	return float64(targetChars) / float64(n)
}

// FitImage returns the largest size with the image's aspect ratio that fits
// in a box.
func FitImage(imgW, imgH, boxW, boxH float64) (w, h float64) {
	if imgW <= 0 || imgH <= 0 || boxW <= 0 || boxH <= 0 {
		return 0, 0
	}
	scale := min(boxW/imgW, boxH/imgH)
	return imgW * scale, imgH * scale
}

// ImageSize reads the pixel size of a PNG, JPEG or GIF file without decoding it.
func ImageSize(path string) (w, h float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrImageLoad, path, err)
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// Front is the planned layout of a card front. Coordinates are in the
// oriented frame: when Rotate is set the frame is the card turned 90 degrees,
// Width and Height swapped.
type Front struct {
	Rotate        bool
	Width, Height float64
	Border        Border

	Title    *layout.RichText
	TitleBox Box

	ImagePath string
	ImageBox  Box // fitted and centred in the space above the title
}

// planFront measures the title, then gives the image what is left above it.
func planFront(h *Header, imgW, imgH float64, tmpl Template, title *style.Style) Front {
	g := tmpl.Geometry
	f := Front{Width: g.Width, Height: g.Height, Border: g.BorderFront, ImagePath: h.ImagePath}
	if h.ImagePath != "" && BestOrientation(imgW, imgH, g.Width, g.Height) {
		f.Rotate = true
		f.Width, f.Height = g.Height, g.Width
	}

	margins := g.BorderFront.Inset(frontInset)
	innerW := f.Width - margins.Left - margins.Right

	text := strings.ToUpper(h.Title)
	titleStyle := title.Scaled(TitleScale(text, tmpl.TitleFitChars))
	f.Title = layout.NewRichText(richtext.Plain(text, 0), titleStyle)
	titleH := titleStyle.Measure(f.Title.Tokens, innerW)
	f.TitleBox = Box{X: margins.Left, Y: f.Height - margins.Bottom - titleH, W: innerW, H: titleH}

	if h.ImagePath == "" {
		return f
	}
	box := Box{X: margins.Left, Y: margins.Top, W: innerW, H: f.TitleBox.Y - titleImageGap - margins.Top}
	w, ih := FitImage(imgW, imgH, box.W, box.H)
	f.ImageBox = Box{X: box.X + (box.W-w)/2, Y: box.Y + (box.H-ih)/2, W: w, H: ih}
	return f
}
