package impl

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"

	"github.com/go-text/typesetting/font"
	"github.com/textkit/richlayout/skia/enums"
	"github.com/textkit/richlayout/skia/models"
)

// Font default values.
const (
	FontDefaultSize   Scalar = 12.0
	FontDefaultScaleX Scalar = 1.0
	FontDefaultSkewX  Scalar = 0.0
)

// Font private flags.
const (
	fontFlagForceAutoHinting uint8 = 1 << 0
	fontFlagEmbeddedBitmaps  uint8 = 1 << 1
	fontFlagSubpixel         uint8 = 1 << 2
	fontFlagLinearMetrics    uint8 = 1 << 3
	fontFlagEmbolden         uint8 = 1 << 4
	fontFlagBaselineSnap     uint8 = 1 << 5
)

// Font controls options applied when measuring and shaping text for a
// single typeface at a single size. It is the concrete backing for
// interfaces.SkFont used by the font collection.
type Font struct {
	typeface SkTypeface
	size     Scalar
	scaleX   Scalar
	skewX    Scalar
	flags    uint8
	edging   enums.FontEdging
	hinting  enums.FontHinting
}

// NewFont creates a new Font with default values.
func NewFont() *Font {
	return &Font{
		typeface: NewDefaultTypeface(),
		size:     FontDefaultSize,
		scaleX:   FontDefaultScaleX,
		skewX:    FontDefaultSkewX,
		flags:    fontFlagBaselineSnap,
		edging:   enums.FontEdgingDefault,
		hinting:  enums.FontHintingDefault,
	}
}

// NewFontWithTypeface creates a new Font with the given typeface.
func NewFontWithTypeface(tf SkTypeface) *Font {
	f := NewFont()
	if tf != nil {
		f.typeface = tf
	}
	return f
}

// NewFontWithTypefaceAndSize creates a new Font with typeface and size.
func NewFontWithTypefaceAndSize(tf SkTypeface, size Scalar) *Font {
	f := NewFontWithTypeface(tf)
	f.SetSize(size)
	return f
}

// NewFontWithTypefaceSizeScaleSkew creates a Font with all parameters.
func NewFontWithTypefaceSizeScaleSkew(tf SkTypeface, size, scaleX, skewX Scalar) *Font {
	f := NewFontWithTypeface(tf)
	f.SetSize(size)
	f.scaleX = scaleX
	f.skewX = skewX
	return f
}

func (f *Font) Typeface() SkTypeface       { return f.typeface }
func (f *Font) Size() Scalar               { return f.size }
func (f *Font) ScaleX() Scalar             { return f.scaleX }
func (f *Font) SkewX() Scalar              { return f.skewX }
func (f *Font) Edging() enums.FontEdging   { return f.edging }
func (f *Font) Hinting() enums.FontHinting { return f.hinting }

func (f *Font) IsForceAutoHinting() bool { return f.flags&fontFlagForceAutoHinting != 0 }
func (f *Font) IsEmbeddedBitmaps() bool  { return f.flags&fontFlagEmbeddedBitmaps != 0 }
func (f *Font) IsSubpixel() bool         { return f.flags&fontFlagSubpixel != 0 }
func (f *Font) IsLinearMetrics() bool    { return f.flags&fontFlagLinearMetrics != 0 }
func (f *Font) IsEmbolden() bool         { return f.flags&fontFlagEmbolden != 0 }
func (f *Font) IsBaselineSnap() bool     { return f.flags&fontFlagBaselineSnap != 0 }

func (f *Font) SetTypeface(tf SkTypeface) {
	if tf == nil {
		f.typeface = NewDefaultTypeface()
	} else {
		f.typeface = tf
	}
}

func (f *Font) SetSize(size Scalar) {
	if size >= 0 {
		f.size = size
	}
}

func (f *Font) SetScaleX(scale Scalar)         { f.scaleX = scale }
func (f *Font) SetSkewX(skew Scalar)           { f.skewX = skew }
func (f *Font) SetEdging(e enums.FontEdging)   { f.edging = e }
func (f *Font) SetHinting(h enums.FontHinting) { f.hinting = h }

func (f *Font) SetForceAutoHinting(v bool) { f.setFlag(fontFlagForceAutoHinting, v) }
func (f *Font) SetEmbeddedBitmaps(v bool)  { f.setFlag(fontFlagEmbeddedBitmaps, v) }
func (f *Font) SetSubpixel(v bool)         { f.setFlag(fontFlagSubpixel, v) }
func (f *Font) SetLinearMetrics(v bool)    { f.setFlag(fontFlagLinearMetrics, v) }
func (f *Font) SetEmbolden(v bool)         { f.setFlag(fontFlagEmbolden, v) }
func (f *Font) SetBaselineSnap(v bool)     { f.setFlag(fontFlagBaselineSnap, v) }

func (f *Font) setFlag(flag uint8, set bool) {
	if set {
		f.flags |= flag
	} else {
		f.flags &^= flag
	}
}

// MeasureText returns the advance width of text. It decodes the input
// according to encoding and measures the cumulative advance of the
// resulting glyphs; for TextEncodingGlyphID the input is already glyph
// indices and no codepoint-to-glyph lookup happens.
func (f *Font) MeasureText(text []byte, encoding enums.TextEncoding, bounds *Rect) Scalar {
	if len(text) == 0 {
		if bounds != nil {
			*bounds = Rect{}
		}
		return 0
	}

	if encoding == enums.TextEncodingGlyphID {
		if len(text)%2 != 0 {
			if bounds != nil {
				*bounds = Rect{}
			}
			return 0
		}
		glyphs := make([]uint16, len(text)/2)
		if err := binary.Read(bytes.NewReader(text), binary.LittleEndian, &glyphs); err != nil {
			if bounds != nil {
				*bounds = Rect{}
			}
			return 0
		}
		return f.measureGlyphs(glyphs, bounds)
	}

	runes, ok := decodeText(text, encoding)
	if !ok {
		if bounds != nil {
			*bounds = Rect{}
		}
		return 0
	}

	glyphs := make([]uint16, len(runes))
	for i, r := range runes {
		glyphs[i] = f.UnicharToGlyph(r)
	}
	return f.measureGlyphs(glyphs, bounds)
}

func (f *Font) measureGlyphs(glyphs []uint16, bounds *Rect) Scalar {
	var total Scalar
	for _, w := range f.GetWidths(glyphs) {
		total += w
	}
	if bounds != nil {
		m := f.GetMetrics()
		*bounds = Rect{Left: 0, Top: m.Ascent, Right: total, Bottom: m.Descent}
	}
	return total
}

// decodeText decodes text bytes into Unicode code points under the given
// encoding. Returns ok=false for malformed fixed-width input.
func decodeText(text []byte, encoding enums.TextEncoding) (runes []rune, ok bool) {
	switch encoding {
	case enums.TextEncodingUTF16:
		if len(text)%2 != 0 {
			return nil, false
		}
		u16s := make([]uint16, len(text)/2)
		if err := binary.Read(bytes.NewReader(text), binary.LittleEndian, &u16s); err != nil {
			return nil, false
		}
		return utf16.Decode(u16s), true
	case enums.TextEncodingUTF32:
		if len(text)%4 != 0 {
			return nil, false
		}
		out := make([]rune, len(text)/4)
		rdr := bytes.NewReader(text)
		for i := range out {
			var u32 uint32
			if err := binary.Read(rdr, binary.LittleEndian, &u32); err != nil {
				return nil, false
			}
			out[i] = rune(u32)
		}
		return out, true
	case enums.TextEncodingUTF8:
		return []rune(string(text)), true
	default:
		return []rune(string(text)), true
	}
}

// UnicharToGlyph returns the nominal glyph ID for the given Unicode character.
func (f *Font) UnicharToGlyph(unichar rune) uint16 {
	return f.typeface.UnicharToGlyph(unichar)
}

// GetWidths returns the advance widths for a slice of glyph IDs, scaled to
// this font's size.
func (f *Font) GetWidths(glyphs []uint16) []Scalar {
	if len(glyphs) == 0 {
		return nil
	}
	widths := make([]Scalar, len(glyphs))
	tf, ok := f.typeface.(*Typeface)
	if !ok || tf.goTextFace == nil {
		charWidth := f.size * 0.6 * f.scaleX
		for i := range glyphs {
			widths[i] = charWidth
		}
		return widths
	}
	face := tf.goTextFace
	scale := f.size / Scalar(face.Upem())
	for i, gid := range glyphs {
		adv := Scalar(face.HorizontalAdvance(font.GID(gid)))
		widths[i] = adv * scale * f.scaleX
	}
	return widths
}

// GetMetrics returns the font metrics (ascent/descent/leading and decoration
// metrics) for this font, scaled to its size.
func (f *Font) GetMetrics() models.FontMetrics {
	tf, ok := f.typeface.(*Typeface)
	if !ok || tf.goTextFace == nil {
		return models.FontMetrics{
			Ascent:  -f.size * 0.8,
			Descent: f.size * 0.2,
			Leading: f.size * 0.05,
		}
	}
	face := tf.goTextFace
	scale := f.size / Scalar(face.Upem())
	extents, ok := face.FontHExtents()
	if !ok {
		return models.FontMetrics{
			Ascent:  -f.size * 0.8,
			Descent: f.size * 0.2,
			Leading: f.size * 0.05,
		}
	}
	// go-text/typesetting reports Ascender positive-up / Descender
	// negative-down per OpenType convention; Skia's Ascent/Descent are
	// both measured as positive distances to reserve, with Ascent negated.
	m := models.FontMetrics{
		Ascent:  Scalar(-extents.Ascender) * scale,
		Descent: Scalar(-extents.Descender) * scale,
		Leading: Scalar(extents.LineGap) * scale,
	}
	if ul, ok := face.UnderlinePosition(); ok {
		m.UnderlinePosition = Scalar(-ul) * scale
		m.Flags |= models.FontMetricsUnderlinePositionIsValidFlag
	}
	if uz, ok := face.UnderlineThickness(); ok {
		m.UnderlineThickness = Scalar(uz) * scale
		m.Flags |= models.FontMetricsUnderlineThicknessIsValidFlag
	}
	if so, ok := face.StrikeoutPosition(); ok {
		m.StrikeoutPosition = Scalar(-so) * scale
		m.Flags |= models.FontMetricsStrikeoutPositionIsValidFlag
	}
	if sz, ok := face.StrikeoutThickness(); ok {
		m.StrikeoutThickness = Scalar(sz) * scale
		m.Flags |= models.FontMetricsStrikeoutThicknessIsValidFlag
	}
	if xh, ok := face.XHeight(); ok {
		m.XHeight = Scalar(xh) * scale
	}
	if ch, ok := face.CapHeight(); ok {
		m.CapHeight = Scalar(ch) * scale
	}
	return m
}

// Equals compares two fonts for equality by typeface identity and
// scaling parameters.
func (f *Font) Equals(other *Font) bool {
	if f == nil && other == nil {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	var typefaceEqual bool
	switch {
	case f.typeface == nil && other.typeface == nil:
		typefaceEqual = true
	case f.typeface != nil && other.typeface != nil:
		typefaceEqual = f.typeface.UniqueID() == other.typeface.UniqueID()
	}
	return typefaceEqual &&
		f.size == other.size &&
		f.scaleX == other.scaleX &&
		f.skewX == other.skewX &&
		f.flags == other.flags &&
		f.edging == other.edging &&
		f.hinting == other.hinting
}

var _ SkFont = (*Font)(nil)
