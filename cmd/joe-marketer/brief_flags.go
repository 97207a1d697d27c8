package main

import (
	"fmt"
	"os"

	"github.com/joestump/joe-marketer/internal/brief"
	"github.com/spf13/cobra"
)

// briefFlags holds the raw flag values shared by generate and prompt.
type briefFlags struct {
	b        brief.Brief
	tone     string
	length   string
	template string
}

func addBriefFlags(cmd *cobra.Command) *briefFlags {
	d := brief.Default()
	f := &briefFlags{b: d}
	fs := cmd.Flags()
	fs.StringVar(&f.b.ProductName, "name", d.ProductName, "product name")
	fs.StringVar(&f.b.Category, "category", d.Category, "product category")
	fs.StringVar(&f.b.Features, "features", d.Features, "key features, one per line")
	fs.StringVar(&f.b.Audience, "audience", d.Audience, "target audience")
	fs.StringVar(&f.tone, "tone", string(d.Tone), "tone of voice")
	fs.StringVar(&f.length, "length", string(d.Length), "description length: short, medium or long")
	fs.IntVarP(&f.b.Variants, "variants", "n", d.Variants, fmt.Sprintf("number of descriptions (%d-%d)", brief.MinVariants, brief.MaxVariants))
	fs.StringVar(&f.template, "template", "", "path to a prompt template replacing the built-in one")
	return f
}

// brief returns the validated brief described by the flags.
func (f *briefFlags) brief() (brief.Brief, error) {
	b := f.b
	b.Tone = brief.Tone(f.tone)
	length, ok := brief.ParseLength(f.length)
	if !ok {
		return b, fmt.Errorf("unknown length %q", f.length)
	}
	b.Length = length
	if err := b.Validate(); err != nil {
		return b, err
	}
	return b, nil
}

// templateSource reads --template, falling back to the configured source.
func (f *briefFlags) templateSource(configured string) (string, error) {
	if f.template == "" {
		return configured, nil
	}
	raw, err := os.ReadFile(f.template)
	if err != nil {
		return "", fmt.Errorf("read prompt template: %w", err)
	}
	return string(raw), nil
}
