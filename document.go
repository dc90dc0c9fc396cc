package card2pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/alnah/go-card2pdf/internal/layout"
	"github.com/alnah/go-card2pdf/internal/richtext"
	"github.com/alnah/go-card2pdf/internal/style"
)

// parchment fills the card faces when no background image is set.
var parchment = layout.RGB{R: 243, G: 233, B: 210}

// Document collects card pages into one PDF. Each card takes a page twice
// as wide as the card: front on the left, back on the right.
//
// Drawing only reads a Plan: text is re-measured on the document itself, so
// a plan may be drawn while the renderer that made it plans another card.
// A Document is not safe for concurrent use.
type Document struct {
	pdf *fpdf.Fpdf
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("go-card2pdf", true)
	return &Document{pdf: pdf}
}

// SetCreationDate stamps the PDF metadata. Output is byte-stable for a
// fixed date.
func (d *Document) SetCreationDate(t time.Time) {
	d.pdf.SetCreationDate(t)
	d.pdf.SetModificationDate(t)
}

// Pages returns the number of card pages drawn so far.
func (d *Document) Pages() int { return d.pdf.PageCount() }

// Draw adds a page for the planned card.
func (d *Document) Draw(p *Plan) error {
	if err := p.Styles.Install(d.pdf); err != nil {
		return err
	}

	w, h := p.Template.Geometry.PageSize()
	d.pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

	if err := d.drawFront(p); err != nil {
		return err
	}
	if err := d.drawBack(p); err != nil {
		return err
	}

	if d.pdf.Err() {
		return fmt.Errorf("%w: %s: %v", ErrPDFGeneration, p.Card.Info().Title, d.pdf.Error())
	}
	return nil
}

// Output writes the PDF. The document cannot be drawn to afterwards.
func (d *Document) Output(w io.Writer) error {
	if d.pdf.PageCount() == 0 {
		return fmt.Errorf("%w: no pages", ErrPDFGeneration)
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}

func (d *Document) drawFront(p *Plan) error {
	g := p.Template.Geometry
	f := p.Front

	d.fillRounded(0, 0, g.Width, g.Height, CardCornerRadius, p.Decor.BorderColor)

	d.pdf.TransformBegin()
	defer d.pdf.TransformEnd()
	if f.Rotate {
		// Turn the frame a quarter counter-clockwise into the card.
		d.pdf.TransformTranslate(0, g.Height)
		d.pdf.TransformRotate(90, 0, 0)
	}

	d.background(f.Width, f.Height, f.Border, p.Decor.Background)

	if p.Decor.Logo != "" {
		info := d.pdf.RegisterImageOptions(p.Decor.Logo, fpdf.ImageOptions{ReadDpi: true})
		if info != nil && info.Width() > 0 {
			logoH := LogoWidth * info.Height() / info.Width()
			d.image(p.Decor.Logo, Box{X: (f.Width - LogoWidth) / 2, Y: (f.Border.Top - logoH) / 2, W: LogoWidth, H: logoH})
		}
	}

	if err := d.drawText(f.Title, f.TitleBox.X, f.TitleBox.Y, f.TitleBox.W); err != nil {
		return err
	}

	if artist := p.Card.Info().Artist; artist != "" {
		st, err := p.Styles.Style("artist")
		if err != nil {
			return err
		}
		d.centered(st, "Artist: "+artist, f.Width/2, f.Height-f.Border.Bottom, f.Border.Bottom)
	}

	if f.ImagePath != "" && f.ImageBox.W > 0 {
		d.image(f.ImagePath, f.ImageBox)
	}
	return nil
}

func (d *Document) drawBack(p *Plan) error {
	g := p.Template.Geometry
	b := g.BorderBack
	h := p.Card.Info()
	x0 := g.Width

	d.fillRounded(x0, 0, g.Width, g.Height, CardCornerRadius, p.Decor.BorderColor)

	d.pdf.TransformBegin()
	d.pdf.TransformTranslate(x0, 0)
	d.background(g.Width, g.Height, b, p.Decor.Background)
	d.pdf.TransformEnd()

	styles, err := backStyles(p.Styles)
	if err != nil {
		return err
	}

	title := strings.ToUpper(h.Title)
	titleStyle := styles.title.Scaled(TitleScale(title, p.Template.TitleFitChars))
	d.centered(titleStyle, title, x0+BaseWidth/2, b.Top, TitleBarHeight)

	d.fill(p.Decor.BorderColor)
	d.pdf.Rect(x0, b.Top+TitleBarHeight, BaseWidth, StandardBorder, "F")
	d.centered(styles.subtitle, h.Subtitle, x0+BaseWidth/2, b.Top+TitleBarHeight, StandardBorder)

	for _, region := range p.Placements() {
		for _, pl := range region {
			pd := placementDrawer{doc: d, at: pl}
			pl.Block.Accept(&pd)
			if pd.err != nil {
				return pd.err
			}
		}
	}

	if g.Columns > 1 {
		d.fill(p.Decor.BorderColor)
		d.pdf.Rect(x0+BaseWidth-StandardBorder/2, 0, StandardBorder, g.Height, "F")
	}

	if m, ok := p.Card.(*Monster); ok {
		d.line(styles.challenge, m.Challenge(), x0+g.Footer.ChallengeX, g.Height-g.Footer.ChallengeBaseline)
		d.line(styles.text, m.Source, x0+g.Footer.SourceX, g.Height-g.Footer.SourceBaseline)
	}
	return nil
}

type backStyleSet struct {
	title, subtitle, challenge, text *style.Style
}

func backStyles(reg *style.Registry) (backStyleSet, error) {
	var s backStyleSet
	for name, dst := range map[string]**style.Style{
		"title": &s.title, "subtitle": &s.subtitle, "challenge": &s.challenge, "text": &s.text,
	} {
		st, err := reg.Style(name)
		if err != nil {
			return s, err
		}
		*dst = st
	}
	return s, nil
}

// background fills the face inside its border, clipped to rounded corners.
// Coordinates are relative to the current transformation.
func (d *Document) background(w, h float64, b Border, img string) {
	x, y := b.Left, b.Top
	iw, ih := w-b.Left-b.Right, h-b.Top-b.Bottom
	if img == "" {
		d.fillRounded(x, y, iw, ih, BackCornerRadius, parchment)
		return
	}
	d.pdf.ClipRoundedRect(x, y, iw, ih, BackCornerRadius, false)
	d.image(img, Box{X: 0, Y: 0, W: w, H: h})
	d.pdf.ClipEnd()
}

func (d *Document) fill(c layout.RGB) {
	d.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (d *Document) fillRounded(x, y, w, h, r float64, c layout.RGB) {
	d.fill(c)
	d.pdf.RoundedRect(x, y, w, h, r, "1234", "F")
}

func (d *Document) image(path string, b Box) {
	d.pdf.ImageOptions(path, b.X, b.Y, b.W, b.H, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
}

// measure returns a width function that measures on the document, so
// drawing never touches a registry's measuring surface.
func (d *Document) measure(st *style.Style) richtext.WidthFunc {
	return func(text string, e richtext.Emphasis) float64 {
		st.Apply(d.pdf, e)
		return d.pdf.GetStringWidth(st.Encode(text))
	}
}

// line draws one line of plain text with its baseline at y.
func (d *Document) line(st *style.Style, text string, x, y float64) {
	if text == "" {
		return
	}
	st.Apply(d.pdf, 0)
	d.pdf.Text(x, y, st.Encode(text))
}

// centered draws one line of plain text centred on cx and vertically
// centred in the band [top, top+height].
func (d *Document) centered(st *style.Style, text string, cx, top, height float64) {
	if text == "" {
		return
	}
	st.Apply(d.pdf, 0)
	s := st.Encode(text)
	w := d.pdf.GetStringWidth(s)
	baseline := top + (height-st.LineHeight())/2 + st.Baseline()
	d.pdf.Text(cx-w/2, baseline, s)
}

// drawText draws wrapped rich text with its first line at the top y.
func (d *Document) drawText(t *layout.RichText, x, y, width float64) error {
	st, ok := t.Style.(*style.Style)
	if !ok {
		return fmt.Errorf("%w: text style %T cannot draw", ErrPDFGeneration, t.Style)
	}

	measure := d.measure(st)
	for i, ln := range richtext.Wrap(t.Tokens, width, measure) {
		lx := x
		switch st.Align() {
		case style.AlignCenter:
			lx += (width - ln.Width) / 2
		case style.AlignRight:
			lx += width - ln.Width
		}
		baseline := y + float64(i)*st.LineHeight() + st.Baseline()

		for _, tok := range t.Tokens[ln.Start:ln.End] {
			switch tok.Kind {
			case richtext.Word:
				st.Apply(d.pdf, tok.Emphasis)
				s := st.Encode(tok.Text)
				d.pdf.Text(lx, baseline, s)
				lx += d.pdf.GetStringWidth(s)
			case richtext.Space:
				lx += measure(" ", tok.Emphasis)
			}
		}
	}
	return nil
}

// textHeight is the height of t wrapped to width, measured on the document.
func (d *Document) textHeight(t *layout.RichText, width float64) float64 {
	st, ok := t.Style.(*style.Style)
	if !ok {
		return 0
	}
	return float64(len(richtext.Wrap(t.Tokens, width, d.measure(st)))) * st.LineHeight()
}

// placementDrawer draws one committed placement.
type placementDrawer struct {
	doc *Document
	at  layout.Placement
	err error
}

func (p *placementDrawer) VisitRichText(t *layout.RichText) {
	p.err = p.doc.drawText(t, p.at.X, p.at.Y, p.at.Width)
}

func (p *placementDrawer) VisitTable(t *layout.Table) {
	widths := t.Widths(p.at.Width)
	y := p.at.Y
	for _, row := range t.Rows {
		x, rowH := p.at.X, 0.0
		for c, cell := range row {
			if cell != nil {
				if err := p.doc.drawText(cell, x, y, widths[c]); err != nil {
					p.err = err
					return
				}
				rowH = max(rowH, p.doc.textHeight(cell, widths[c]))
			}
			x += widths[c]
		}
		y += rowH
	}
}

func (p *placementDrawer) VisitDivider(dv *layout.Divider) {
	w := dv.Width
	if w <= 0 {
		w = p.at.Width
	}
	p.doc.fill(dv.Color)
	p.doc.pdf.Rect(p.at.X+dv.XOffset, p.at.Y+dv.Spacing, w, dv.Thickness, "F")
}

func (p *placementDrawer) VisitSpacer(*layout.Spacer) {}

func (p *placementDrawer) VisitImage(img *layout.Image) {
	p.doc.image(img.Path, Box{X: p.at.X, Y: p.at.Y, W: img.Width, H: img.Height})
}

// VisitGroup is a no-op: regions place the children of a group one by one.
func (p *placementDrawer) VisitGroup(*layout.Group) {}
