package impl

import (
	"sync/atomic"

	"github.com/go-text/typesetting/font"
	"github.com/textkit/richlayout/skia/interfaces"
	"github.com/textkit/richlayout/skia/models"
)

// Global unique ID counter for typefaces.
var typefaceIDCounter uint32

// nextTypefaceID generates a unique ID for a typeface.
func nextTypefaceID() uint32 {
	return atomic.AddUint32(&typefaceIDCounter, 1)
}

// Typeface represents the typeface and intrinsic style of a font, backed by
// a go-text/typesetting Face for glyph lookup and metrics.
//
// Ported from: skia-source/include/core/SkTypeface.h
type Typeface struct {
	style      FontStyle
	familyName string
	uniqueID   uint32
	fixedPitch bool
	goTextFace *font.Face
}

// NewDefaultTypeface creates a new typeface with default style and no
// backing face; glyph lookups and metrics return zero values.
func NewDefaultTypeface() *Typeface {
	return &Typeface{
		style:      FontStyle{Weight: 400, Width: 5, Slant: 0}, // Normal
		familyName: "",
		uniqueID:   nextTypefaceID(),
		fixedPitch: false,
	}
}

// NewTypeface creates a new typeface with the given family name and style.
func NewTypeface(familyName string, style FontStyle) *Typeface {
	return &Typeface{
		style:      style,
		familyName: familyName,
		uniqueID:   nextTypefaceID(),
		fixedPitch: false,
	}
}

// NewTypefaceWithTypefaceFace creates a new typeface backed by a
// go-text/typesetting Face.
func NewTypefaceWithTypefaceFace(familyName string, style FontStyle, face *font.Face) *Typeface {
	return &Typeface{
		style:      style,
		familyName: familyName,
		uniqueID:   nextTypefaceID(),
		fixedPitch: false,
		goTextFace: face,
	}
}

// NewTypefaceWithOptions creates a new typeface with all options.
func NewTypefaceWithOptions(familyName string, style FontStyle, fixedPitch bool) *Typeface {
	return &Typeface{
		style:      style,
		familyName: familyName,
		uniqueID:   nextTypefaceID(),
		fixedPitch: fixedPitch,
	}
}

// GoTextFace returns the underlying go-text/typesetting Face, if any.
func (t *Typeface) GoTextFace() *font.Face {
	return t.goTextFace
}

// FontStyle returns the typeface's intrinsic style attributes.
func (t *Typeface) FontStyle() FontStyle {
	return t.style
}

// IsBold returns true if style has the bold bit set.
func (t *Typeface) IsBold() bool {
	return t.style.IsBold()
}

// IsItalic returns true if style has the italic bit set.
func (t *Typeface) IsItalic() bool {
	return t.style.IsItalic()
}

// IsFixedPitch returns true if the typeface claims to be fixed-pitch.
func (t *Typeface) IsFixedPitch() bool {
	return t.fixedPitch
}

// UniqueID returns a 32bit value unique for this typeface.
func (t *Typeface) UniqueID() uint32 {
	return t.uniqueID
}

// FamilyName returns the family name for this typeface.
func (t *Typeface) FamilyName() string {
	return t.familyName
}

// UnicharToGlyph returns the nominal glyph ID for the given Unicode
// character, or 0 if the face has no mapping for it.
//
// Ported from: SkTypeface::unicharToGlyph
func (t *Typeface) UnicharToGlyph(unichar rune) uint16 {
	if t.goTextFace != nil {
		gid, ok := t.goTextFace.NominalGlyph(unichar)
		if ok {
			return uint16(gid)
		}
	}
	return 0
}

// MakeClone returns a new typeface sharing the underlying font data but
// isolated for variation-axis changes, per args.
func (t *Typeface) MakeClone(args models.FontArguments) interfaces.SkTypeface {
	newTf := &Typeface{
		style:      t.style,
		familyName: t.familyName,
		uniqueID:   nextTypefaceID(),
		fixedPitch: t.fixedPitch,
	}

	if t.goTextFace != nil {
		newFace := font.NewFace(t.goTextFace.Font)

		var vars []font.Variation
		for _, coord := range args.VariationDesignPosition.Coordinates {
			vars = append(vars, font.Variation{
				Tag:   font.Tag(coord.Axis),
				Value: coord.Value,
			})
		}
		newFace.SetVariations(vars)
		newTf.goTextFace = newFace
	}

	return newTf
}

// UnitsPerEm returns the units-per-em value for this typeface, or 0 if
// there is no backing font face.
//
// Ported from: SkTypeface::getUnitsPerEm
func (t *Typeface) UnitsPerEm() int {
	if t.goTextFace != nil {
		return int(t.goTextFace.Upem())
	}
	return 0
}

// GetGlyphAdvance returns the horizontal advance for a glyph in font units.
// This is the raw value from the font tables, not scaled by font size.
func (t *Typeface) GetGlyphAdvance(glyphID uint16) int16 {
	if t.goTextFace != nil {
		return int16(t.goTextFace.HorizontalAdvance(font.GID(glyphID)))
	}
	return 0
}

// GetGlyphBounds returns the bounding box for a glyph in font units.
// This is the raw value from the font tables, not scaled by font size.
func (t *Typeface) GetGlyphBounds(glyphID uint16) interfaces.Rect {
	if t.goTextFace != nil {
		extents, ok := t.goTextFace.GlyphExtents(font.GID(glyphID))
		if ok {
			// go-text/typesetting GlyphExtents uses Y-up font coordinates
			// with YBearing measured from baseline to the top of the glyph
			// and Height negative; Skia Rect is Y-down, so YBearing is
			// negated for Top and Height (already negative) subtracted to
			// reach Bottom.
			return interfaces.Rect{
				Left:   Scalar(extents.XBearing),
				Top:    Scalar(-extents.YBearing),
				Right:  Scalar(extents.XBearing) + Scalar(extents.Width),
				Bottom: Scalar(-extents.YBearing) - Scalar(extents.Height),
			}
		}
	}
	return interfaces.Rect{}
}

// Compile-time interface check.
var _ SkTypeface = (*Typeface)(nil)
