package card2pdf

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-card2pdf/internal/fileutil"
	"github.com/alnah/go-card2pdf/internal/layout"
	"github.com/alnah/go-card2pdf/internal/richtext"
	"github.com/alnah/go-card2pdf/internal/style"
)

// Decor is the card furniture that does not depend on the card data.
type Decor struct {
	BorderColor layout.RGB
	Background  string // image drawn behind both faces; empty for a plain fill
	Logo        string // image drawn in the top border of the front
}

// DefaultBorderColor is the stat block red.
var DefaultBorderColor = layout.RGB{R: 88, G: 23, B: 13}

// Option configures a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	styleSet  string
	assetPath string
	styles    *style.Registry
	templates []string
	split     bool
	decor     Decor
	logger    *log.Logger
}

// WithStyleSet selects the style set by name.
func WithStyleSet(name string) Option {
	return func(c *rendererConfig) { c.styleSet = name }
}

// WithAssetPath sets a directory holding styles/*.yaml and fonts/*.ttf.
// Custom assets take precedence over the built-in ones.
func WithAssetPath(path string) Option {
	return func(c *rendererConfig) { c.assetPath = path }
}

// WithStyles uses an already loaded registry instead of loading a style set.
// The registry must not be shared with another Renderer.
func WithStyles(reg *style.Registry) Option {
	return func(c *rendererConfig) { c.styles = reg }
}

// WithTemplates sets the escalation order by template name.
func WithTemplates(names ...string) Option {
	return func(c *rendererConfig) { c.templates = names }
}

// WithSplit enables or disables splitting text across regions. Splitting is
// tried only after a template failed without it.
func WithSplit(enabled bool) Option {
	return func(c *rendererConfig) { c.split = enabled }
}

// WithDecor sets the border colour, background and logo.
func WithDecor(d Decor) Option {
	return func(c *rendererConfig) { c.decor = d }
}

// WithLogger sets the logger escalation steps are reported to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *rendererConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Renderer plans card layouts. It owns a style registry and a markup parser
// and is not safe for concurrent use; see RendererPool.
type Renderer struct {
	styles    *style.Registry
	parser    *richtext.Parser
	templates []Template
	split     bool
	decor     Decor
	logger    *log.Logger
}

// NewRenderer creates a Renderer. By default it uses the standard style set,
// the small, large and epic templates in that order, and splitting.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := rendererConfig{
		styleSet:  DefaultStyleSet,
		templates: DefaultTemplateNames,
		split:     true,
		decor:     Decor{BorderColor: DefaultBorderColor},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	templates, err := Templates(cfg.templates...)
	if err != nil {
		return nil, err
	}
	for _, img := range []string{cfg.decor.Background, cfg.decor.Logo} {
		if img != "" && !fileutil.FileExists(img) {
			return nil, fmt.Errorf("%w: %s: no such file", ErrImageLoad, img)
		}
	}

	reg := cfg.styles
	if reg == nil {
		if reg, err = LoadStyles(cfg.styleSet, cfg.assetPath); err != nil {
			return nil, err
		}
	}

	return &Renderer{
		styles:    reg,
		parser:    richtext.NewParser(),
		templates: templates,
		split:     cfg.split,
		decor:     cfg.decor,
		logger:    cfg.logger,
	}, nil
}

// Styles returns the renderer's style registry.
func (r *Renderer) Styles() *style.Registry { return r.styles }

// Templates returns the escalation order.
func (r *Renderer) Templates() []Template { return r.templates }

// Plan is an accepted layout, ready to be drawn.
type Plan struct {
	Card     Card
	Template Template
	Split    bool
	Tried    []string // attempts made before and including the accepted one

	Front Front
	Back  *layout.FlowResult

	Decor  Decor
	Styles *style.Registry
}

// Placements returns the back placements of every region.
func (p *Plan) Placements() [][]layout.Placement { return p.Back.Placements() }

// attemptName names an attempt for messages, e.g. "large+split".
func attemptName(t Template, split bool) string {
	if split {
		return t.Name + "+split"
	}
	return t.Name
}

// Plan lays a card out on the first template that holds it. Each attempt
// starts from fresh regions and a freshly built block queue, and nothing is
// drawn: a failed attempt leaves nothing behind.
//
// It returns a *TooSmallError when no template fits, and a *BlockDataError
// when the card data is malformed.
func (r *Renderer) Plan(card Card) (*Plan, error) {
	h := card.Info()
	title, err := r.styles.Style("title")
	if err != nil {
		return nil, err
	}

	var imgW, imgH float64
	if h.ImagePath != "" {
		if imgW, imgH, err = ImageSize(h.ImagePath); err != nil {
			return nil, &BlockDataError{Card: h.Title, Field: "image_path", Msg: err.Error()}
		}
	}

	var tried []string
	plan, err := layout.Escalate(len(r.templates), r.split, func(a layout.Attempt) (*Plan, error) {
		tmpl := r.templates[a.Template]
		tried = append(tried, attemptName(tmpl, a.Split))

		blocks, err := tmpl.Build(card, BuildContext{
			Styles:      r.styles,
			Parser:      r.parser,
			Geometry:    tmpl.Geometry,
			BorderColor: r.decor.BorderColor,
		})
		if err != nil {
			return nil, err
		}

		result, err := layout.Flow(blocks, tmpl.Geometry.Regions(), layout.FlowOptions{Split: a.Split})
		if err != nil {
			var overflow *layout.OverflowError
			if errors.As(err, &overflow) {
				r.logger.Debug("template too small",
					"card", h.Title, "template", tmpl.Name, "split", a.Split,
					"remaining", overflow.Remaining, "head", layout.Describe(overflow.Head))
			}
			return nil, err
		}

		r.logger.Debug("layout accepted", "card", h.Title, "template", tmpl.Name, "split", a.Split)
		return &Plan{
			Card:     card,
			Template: tmpl,
			Split:    a.Split,
			Front:    planFront(h, imgW, imgH, tmpl, title),
			Back:     result,
			Decor:    r.decor,
			Styles:   r.styles,
		}, nil
	})

	if err != nil {
		var exhausted *layout.ExhaustedError
		if errors.As(err, &exhausted) {
			return nil, &TooSmallError{Title: h.Title, Tried: tried, Err: exhausted}
		}
		return nil, err
	}
	plan.Tried = tried
	return plan, nil
}
