package brief

import (
	"errors"
	"testing"
)

func TestParagraphs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"short", "1 paragraph"},
		{"medium", "2 paragraphs"},
		{"long", "3 paragraphs"},
		{"Short (1 paragraph)", "1 paragraph"},
		{"Medium (2 paragraphs)", "2 paragraphs"},
		{"Long (3 paragraphs)", "3 paragraphs"},
		{"LONG", "3 paragraphs"},
		{"", "2 paragraphs"},
		{"epic", "2 paragraphs"},
		{"Tiny (half a paragraph)", "2 paragraphs"},
	}
	for _, tt := range tests {
		if got := Paragraphs(tt.in); got != tt.want {
			t.Errorf("Paragraphs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLength_Label(t *testing.T) {
	l, ok := ParseLength("Short (1 paragraph)")
	if !ok || l != LengthShort {
		t.Errorf("ParseLength = %q, %v; want %q, true", l, ok, LengthShort)
	}
	if LengthLong.Label() != "Long (3 paragraphs)" {
		t.Errorf("Label = %q", LengthLong.Label())
	}
}

func TestValidate_RequiresNameAndFeatures(t *testing.T) {
	b := Default()
	b.ProductName = "   "
	err := b.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if _, ok := ve.Fields["product_name"]; !ok {
		t.Errorf("expected product_name field error, got %v", ve.Fields)
	}
	if err.Error() != MissingRequiredMessage {
		t.Errorf("message = %q", err.Error())
	}

	b = Default()
	b.Features = ""
	if err := b.Validate(); err == nil {
		t.Error("expected error for empty features")
	}
}

func TestValidate_ToneAndVariants(t *testing.T) {
	b := Default()
	b.Tone = "Sarcastic"
	if err := b.Validate(); err == nil {
		t.Error("expected error for unknown tone")
	}

	b = Default()
	b.Variants = MaxVariants + 1
	if err := b.Validate(); err == nil {
		t.Error("expected error for too many variants")
	}

	b = Default()
	b.Variants = 0
	if err := b.Validate(); err != nil {
		t.Errorf("zero variants should fall back to the default, got %v", err)
	}
	if b.VariantCount() != DefaultVariants {
		t.Errorf("VariantCount = %d, want %d", b.VariantCount(), DefaultVariants)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Test Mug"); got != "Test Mug_descriptions_hashtags.txt" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename(""); got != "product_descriptions_hashtags.txt" {
		t.Errorf("Filename(empty) = %q", got)
	}
}

func TestVariantCount_Bounds(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-3, DefaultVariants},
		{0, DefaultVariants},
		{1, 1},
		{MaxVariants, MaxVariants},
		{MaxVariants + 1, MaxVariants},
		{1 << 62, MaxVariants},
	}
	for _, tt := range tests {
		b := Brief{Variants: tt.in}
		if got := b.VariantCount(); got != tt.want {
			t.Errorf("VariantCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	b := Brief{ProductName: "Test Mug", Features: "- Keeps drinks hot"}.WithDefaults()
	if b.Tone != DefaultTone || b.Length != DefaultLength || b.Variants != DefaultVariants {
		t.Errorf("WithDefaults = %+v", b)
	}

	typed := Brief{Tone: ToneFunny, Length: LengthShort, Variants: 4}.WithDefaults()
	if typed.Tone != ToneFunny || typed.Length != LengthShort || typed.Variants != 4 {
		t.Errorf("WithDefaults overwrote typed values: %+v", typed)
	}
}
