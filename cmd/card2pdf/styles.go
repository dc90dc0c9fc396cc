package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	card2pdf "github.com/alnah/go-card2pdf"
)

// styleSetInfo describes one style set for the styles and doctor commands.
type styleSetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Ready       bool   `json:"ready"`
	Problem     string `json:"problem,omitempty"`
}

// describeStyleSets loads every style set available from assetPath.
// Sets that fail to load (usually missing fonts) are reported, not fatal.
func describeStyleSets(assetPath string) ([]styleSetInfo, error) {
	names, err := card2pdf.StyleSets(assetPath)
	if err != nil {
		return nil, err
	}

	infos := make([]styleSetInfo, 0, len(names))
	for _, name := range names {
		info := styleSetInfo{Name: name}
		reg, err := card2pdf.LoadStyles(name, assetPath)
		if err != nil {
			info.Problem = err.Error()
		} else {
			info.Ready = true
			info.Description = reg.Set().Description
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// runStyles executes the styles command.
func runStyles(args []string, env *Environment) error {
	f, err := parseStylesFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, err := loadConfig(f.config, loadEnvConfig())
	if err != nil {
		return err
	}
	if f.assets != "" {
		cfg.Assets.BasePath = f.assets
	}

	infos, err := describeStyleSets(cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	printStyleSets(env.Stdout, infos, cfg.Styles.Set)
	return nil
}

// printStyleSets writes one line per style set, marking the configured one.
func printStyleSets(w io.Writer, infos []styleSetInfo, current string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, info := range infos {
		mark := " "
		if info.Name == current {
			mark = "*"
		}
		desc := info.Description
		if !info.Ready {
			desc = "unavailable: " + info.Problem
		}
		fmt.Fprintf(tw, "%s %s\t%s\n", mark, info.Name, desc)
	}
	_ = tw.Flush()
}
