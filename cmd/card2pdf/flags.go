package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// layoutFlags holds the flags that shape the renderer.
type layoutFlags struct {
	kind        string   // kind of entries without one
	styleSet    string   // style set name
	assets      string   // custom assets directory
	templates   []string // escalation order
	noSplit     bool     // never split text across columns
	borderColor string
	background  string
	logo        string
	workers     int
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common commonFlags
	layout layoutFlags
	output string
}

// inspectFlags holds all flags for the inspect command.
type inspectFlags struct {
	common commonFlags
	layout layoutFlags
	color  bool
}

// stylesFlags holds all flags for the styles command.
type stylesFlags struct {
	config string
	assets string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log layout attempts and timing")
}

// addLayoutFlags adds layout flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVarP(&f.kind, "type", "t", "", "kind of entries without one: monster, item")
	fs.StringVarP(&f.styleSet, "style", "s", "", "style set name")
	fs.StringVar(&f.assets, "assets", "", "custom assets directory (styles/, fonts/)")
	fs.StringSliceVar(&f.templates, "templates", nil, "templates to try in order: small,large,epic")
	fs.BoolVar(&f.noSplit, "no-split", false, "never split text across columns")
	fs.StringVar(&f.borderColor, "border-color", "", "border colour (hex)")
	fs.StringVar(&f.background, "background", "", "background image for both faces")
	fs.StringVar(&f.logo, "logo", "", "logo image for the card front")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel layout workers (0 = auto)")
}

// newRenderFlagSet registers the render flags on a new FlagSet.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output PDF file or directory")
	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	return fs
}

// newInspectFlagSet registers the inspect flags on a new FlagSet.
func newInspectFlagSet(f *inspectFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.BoolVar(&f.color, "color", false, "highlight the YAML output for the terminal")
	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	return fs
}

// newStylesFlagSet registers the styles flags on a new FlagSet.
func newStylesFlagSet(f *stylesFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.assets, "assets", "", "custom assets directory (styles/, fonts/)")
	return fs
}

// newDoctorFlagSet registers the doctor flags on a new FlagSet.
// The doctor command scans its arguments itself; the set only feeds
// completion and help.
func newDoctorFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.Bool("json", false, "machine-readable output")
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printRenderUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInspectFlags parses inspect command flags and returns positional args.
func parseInspectFlags(args []string, stderr io.Writer) (*inspectFlags, []string, error) {
	f := &inspectFlags{}
	fs := newInspectFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printInspectUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseStylesFlags parses styles command flags.
func parseStylesFlags(args []string, stderr io.Writer) (*stylesFlags, error) {
	f := &stylesFlags{}
	fs := newStylesFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printStylesUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return f, nil
}
