package impl

import (
	"bytes"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/gofont/goregular"
)

// newTypefaceWithGoRegular creates a typeface backed by the embedded Go
// Regular font, for tests exercising real glyph data access.
func newTypefaceWithGoRegular(t *testing.T) *Typeface {
	t.Helper()

	loader, err := opentype.NewLoader(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("failed to load Go Regular font: %v", err)
	}

	goFont, err := font.NewFont(loader)
	if err != nil {
		t.Fatalf("failed to parse Go Regular font: %v", err)
	}

	face := font.NewFace(goFont)
	return NewTypefaceWithTypefaceFace("Go", FontStyle{Weight: 400, Width: 5, Slant: 0}, face)
}

func TestTypeface_UnitsPerEm_RealFont(t *testing.T) {
	tf := newTypefaceWithGoRegular(t)

	upem := tf.UnitsPerEm()
	if upem <= 0 {
		t.Errorf("UnitsPerEm should be positive, got %d", upem)
	}
	if upem != 2048 {
		t.Logf("Note: UnitsPerEm is %d (expected 2048 for Go fonts)", upem)
	}
}

func TestTypeface_GetGlyphAdvance_RealFont(t *testing.T) {
	tf := newTypefaceWithGoRegular(t)

	glyphA := tf.UnicharToGlyph('A')
	if glyphA == 0 {
		t.Fatal("UnicharToGlyph should return non-zero for 'A'")
	}

	advance := tf.GetGlyphAdvance(glyphA)
	if advance <= 0 {
		t.Errorf("GetGlyphAdvance should return positive value for 'A', got %d", advance)
	}

	glyphSpace := tf.UnicharToGlyph(' ')
	advanceSpace := tf.GetGlyphAdvance(glyphSpace)
	if advanceSpace <= 0 {
		t.Errorf("GetGlyphAdvance should return positive value for space, got %d", advanceSpace)
	}

	glyphI := tf.UnicharToGlyph('i')
	advanceI := tf.GetGlyphAdvance(glyphI)
	if advanceI <= 0 {
		t.Errorf("GetGlyphAdvance should return positive value for 'i', got %d", advanceI)
	}
	if advance <= advanceI {
		t.Logf("Note: 'A' advance (%d) should typically be > 'i' advance (%d) in proportional font", advance, advanceI)
	}
}

func TestTypeface_GetGlyphBounds_RealFont(t *testing.T) {
	tf := newTypefaceWithGoRegular(t)

	glyphA := tf.UnicharToGlyph('A')
	boundsA := tf.GetGlyphBounds(glyphA)

	width := boundsA.Right - boundsA.Left
	height := boundsA.Bottom - boundsA.Top

	if width <= 0 {
		t.Errorf("Glyph 'A' should have positive width, got %f", width)
	}
	if height <= 0 {
		t.Errorf("Glyph 'A' should have positive height, got %f", height)
	}

	glyphSpace := tf.UnicharToGlyph(' ')
	boundsSpace := tf.GetGlyphBounds(glyphSpace)
	spaceWidth := boundsSpace.Right - boundsSpace.Left
	if spaceWidth > 0 {
		t.Logf("Space glyph has non-zero bounds width: %f (may contain ink)", spaceWidth)
	}

	t.Logf("'A' bounds: Left=%f, Top=%f, Right=%f, Bottom=%f",
		boundsA.Left, boundsA.Top, boundsA.Right, boundsA.Bottom)
}

func TestTypeface_NoFontFace_ReturnsZeroDefaults(t *testing.T) {
	tf := NewDefaultTypeface()

	if tf.UnitsPerEm() != 0 {
		t.Errorf("UnitsPerEm without font face should be 0, got %d", tf.UnitsPerEm())
	}

	if tf.GetGlyphAdvance(1) != 0 {
		t.Errorf("GetGlyphAdvance without font face should be 0")
	}

	bounds := tf.GetGlyphBounds(1)
	if bounds.Left != 0 || bounds.Right != 0 || bounds.Top != 0 || bounds.Bottom != 0 {
		t.Errorf("GetGlyphBounds without font face should return zero rect")
	}
}
