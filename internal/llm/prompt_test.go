package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/joestump/joe-marketer/internal/brief"
)

func testBrief() brief.Brief {
	return brief.Brief{
		ProductName: "Test Mug",
		Category:    "Kitchen",
		Features:    "- Keeps drinks hot",
		Audience:    "Office workers",
		Tone:        brief.ToneFriendly,
		Length:      "Short (1 paragraph)",
		Variants:    2,
	}
}

func TestBuildPrompt_Example(t *testing.T) {
	p, err := BuildPrompt(testBrief())
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	if p.System != SystemPrompt {
		t.Errorf("System = %q", p.System)
	}
	if !strings.Contains(p.User, "1 paragraph") {
		t.Error("prompt missing length phrase \"1 paragraph\"")
	}
	if got := strings.Count(p.User, "**Description "); got != 2 {
		t.Errorf("description blocks = %d, want 2", got)
	}
	if got := strings.Count(p.User, "**Hashtags "); got != 2 {
		t.Errorf("hashtag blocks = %d, want 2", got)
	}
	if !strings.Contains(p.User, "expert product marketer") {
		t.Error("prompt missing marketer instruction")
	}
}

func TestBuildPrompt_FieldsVerbatim(t *testing.T) {
	b := testBrief()
	b.ProductName = `Mug <b>"Deluxe"</b> & {{.Category}}`
	b.Features = "- line one\n- line two with 'quotes'\n- " + strings.Repeat("x", 5000)
	b.Audience = "Devs; DROP TABLE users;--"
	b.Category = "Home & Kitchen"

	p, err := BuildPrompt(b)
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	for _, want := range []string{b.ProductName, b.Category, b.Features, b.Audience, string(b.Tone)} {
		if !strings.Contains(p.User, want) {
			t.Errorf("prompt does not contain %q verbatim", want)
		}
	}
}

func TestBuildPrompt_VariantCount(t *testing.T) {
	for n := 1; n <= 5; n++ {
		b := testBrief()
		b.Variants = n
		p, err := BuildPrompt(b)
		if err != nil {
			t.Fatalf("BuildPrompt(n=%d): %v", n, err)
		}
		if got := strings.Count(p.User, "**Description "); got != n {
			t.Errorf("n=%d: description blocks = %d", n, got)
		}
		if got := strings.Count(p.User, "**Hashtags "); got != n {
			t.Errorf("n=%d: hashtag blocks = %d", n, got)
		}
		last := fmt.Sprintf("**Description %d:**", n)
		if !strings.Contains(p.User, last) {
			t.Errorf("n=%d: missing %q", n, last)
		}
		if strings.Contains(p.User, fmt.Sprintf("**Description %d:**", n+1)) {
			t.Errorf("n=%d: unexpected block %d", n, n+1)
		}
		if !strings.Contains(p.User, fmt.Sprintf("generate %d distinct", n)) {
			t.Errorf("n=%d: count not stated", n)
		}
	}
}

func TestBuildPrompt_ZeroVariantsUsesDefault(t *testing.T) {
	b := testBrief()
	b.Variants = 0
	p, err := BuildPrompt(b)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(p.User, "**Description "); got != brief.DefaultVariants {
		t.Errorf("description blocks = %d, want %d", got, brief.DefaultVariants)
	}
}

func TestBuildPrompt_LengthPhrases(t *testing.T) {
	tests := map[brief.Length]string{
		brief.LengthShort:  "approximately 1 paragraph long",
		brief.LengthMedium: "approximately 2 paragraphs long",
		brief.LengthLong:   "approximately 3 paragraphs long",
		"gigantic":         "approximately 2 paragraphs long",
	}
	for length, want := range tests {
		b := testBrief()
		b.Length = length
		p, err := BuildPrompt(b)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(p.User, want) {
			t.Errorf("length %q: prompt missing %q", length, want)
		}
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a, _ := BuildPrompt(testBrief())
	b, _ := BuildPrompt(testBrief())
	if a != b {
		t.Error("BuildPrompt is not deterministic")
	}
}

func TestNewPromptBuilder_Custom(t *testing.T) {
	pb, err := NewPromptBuilder("Write {{.Count}} blurbs for {{.ProductName}} ({{.Length}}).")
	if err != nil {
		t.Fatalf("NewPromptBuilder: %v", err)
	}
	p, err := pb.Build(testBrief())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.User != "Write 2 blurbs for Test Mug (1 paragraph)." {
		t.Errorf("User = %q", p.User)
	}

	if _, err := NewPromptBuilder("{{.Broken"); err == nil {
		t.Error("expected parse error")
	}
}

func TestNewPromptData_ClampsVariants(t *testing.T) {
	b := testBrief()
	b.Variants = 1 << 62
	d := NewPromptData(b)
	if d.Count != brief.MaxVariants || len(d.Variants) != brief.MaxVariants {
		t.Errorf("Count = %d, len(Variants) = %d, want %d", d.Count, len(d.Variants), brief.MaxVariants)
	}
}
