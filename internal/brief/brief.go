// Package brief defines the product marketing inputs for one generation request.
package brief

import (
	"strings"
)

// Tone is the tone of voice the copy should be written in.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneLuxurious    Tone = "Luxurious"
	ToneAdventurous  Tone = "Adventurous"
	TonePlayful      Tone = "Playful"
	ToneInformative  Tone = "Informative"
	TonePersuasive   Tone = "Persuasive"
	ToneFunny        Tone = "Funny/Humor"
)

// Tones lists every tone in the order the form presents them.
var Tones = []Tone{
	ToneProfessional,
	ToneFriendly,
	ToneLuxurious,
	ToneAdventurous,
	TonePlayful,
	ToneInformative,
	TonePersuasive,
	ToneFunny,
}

// Valid reports whether t is one of Tones.
func (t Tone) Valid() bool {
	for _, known := range Tones {
		if t == known {
			return true
		}
	}
	return false
}

// Length is the description length selection.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Lengths lists every length in the order the form presents them.
var Lengths = []Length{LengthShort, LengthMedium, LengthLong}

// DefaultParagraphs is used for any length selection that is not recognized.
const DefaultParagraphs = "2 paragraphs"

var lengthLabels = map[Length]string{
	LengthShort:  "Short (1 paragraph)",
	LengthMedium: "Medium (2 paragraphs)",
	LengthLong:   "Long (3 paragraphs)",
}

var lengthParagraphs = map[Length]string{
	LengthShort:  "1 paragraph",
	LengthMedium: "2 paragraphs",
	LengthLong:   "3 paragraphs",
}

// Label returns the human-readable label, e.g. "Short (1 paragraph)".
func (l Length) Label() string {
	if label, ok := lengthLabels[l]; ok {
		return label
	}
	return string(l)
}

// ParseLength accepts either a key ("short") or a label ("Short (1 paragraph)").
// The second return value is false when s matches neither.
func ParseLength(s string) (Length, bool) {
	s = strings.TrimSpace(s)
	for _, l := range Lengths {
		if strings.EqualFold(s, string(l)) || s == lengthLabels[l] {
			return l, true
		}
	}
	return Length(s), false
}

// Paragraphs maps a length key or label to its paragraph-count phrase.
// Unrecognized values map to DefaultParagraphs.
func Paragraphs(s string) string {
	l, ok := ParseLength(s)
	if !ok {
		return DefaultParagraphs
	}
	return lengthParagraphs[l]
}

const (
	DefaultVariants = 2
	MinVariants     = 1
	MaxVariants     = 5
)

// DefaultTone and DefaultLength are used when a caller leaves them blank.
const (
	DefaultTone   = ToneLuxurious
	DefaultLength = LengthMedium
)

// Brief is the set of user-supplied product marketing inputs.
type Brief struct {
	ProductName string
	Category    string
	Features    string
	Audience    string
	Tone        Tone
	Length      Length
	Variants    int
}

// Default returns the values the form is prefilled with on first visit.
func Default() Brief {
	return Brief{
		ProductName: "Luxury Handcrafted Leather Wallet",
		Category:    "Accessories",
		Features: "- Premium full-grain leather\n" +
			"- Hand-stitched for durability\n" +
			"- Slim design, holds 8 cards and cash\n" +
			"- RFID blocking technology\n" +
			"- Available in classic black and brown",
		Audience: "Discerning professionals, minimalist enthusiasts",
		Tone:     DefaultTone,
		Length:   DefaultLength,
		Variants: DefaultVariants,
	}
}

// VariantCount returns Variants, or DefaultVariants when it is not positive.
// It never exceeds MaxVariants.
func (b Brief) VariantCount() int {
	switch {
	case b.Variants < 1:
		return DefaultVariants
	case b.Variants > MaxVariants:
		return MaxVariants
	}
	return b.Variants
}

// WithDefaults fills blank tone, length and variant count with the values the
// form starts with. Other fields are left as typed.
func (b Brief) WithDefaults() Brief {
	if b.Tone == "" {
		b.Tone = DefaultTone
	}
	if b.Length == "" {
		b.Length = DefaultLength
	}
	if b.Variants == 0 {
		b.Variants = DefaultVariants
	}
	return b
}

// Filename is the name offered for the downloaded result.
func (b Brief) Filename() string {
	return Filename(b.ProductName)
}

// Filename builds the download filename for a product name.
func Filename(productName string) string {
	name := strings.TrimSpace(productName)
	if name == "" {
		name = "product"
	}
	return name + "_descriptions_hashtags.txt"
}
