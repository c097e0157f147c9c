package fontcollection

import (
	"github.com/textkit/richlayout/layout"
	"github.com/textkit/richlayout/skia/impl"
	"github.com/textkit/richlayout/skia/models"
)

// entry is one registered face within a family, grounded on the
// teacher's TypefaceFontProvider-style registration pattern (a family
// name plus a list of style variants).
type entry struct {
	family   string
	typeface *impl.Typeface
	fonts    map[int32]*impl.Font // keyed by truncated font-size*1000, built lazily
}

// Registry is a concrete, in-memory Collection: families each holding a
// small set of typeface style variants, matched per CSS fonts-3 and
// backed by skia/impl.Font/Typeface for metrics and glyph lookups.
//
// Ported from: skia/paragraph/typeface_font_provider.go's registration
// model (kept as the teacher's analogous structure; that file itself is
// not reused, see DESIGN.md).
type Registry struct {
	families map[string][]*entry
	byHandle []*entry
	defaultFamily string
}

// NewRegistry creates an empty font registry. defaultFamily names the
// family DefaultFont falls back to when the requested family is unknown.
func NewRegistry(defaultFamily string) *Registry {
	return &Registry{
		families:      make(map[string][]*entry),
		defaultFamily: defaultFamily,
	}
}

// Register adds a typeface under family and returns its stable handle.
func (r *Registry) Register(family string, tf *impl.Typeface) layout.FontHandle {
	e := &entry{family: family, typeface: tf, fonts: make(map[int32]*impl.Font)}
	r.families[family] = append(r.families[family], e)
	h := layout.FontHandle(len(r.byHandle))
	r.byHandle = append(r.byHandle, e)
	return h
}

func (r *Registry) entryAt(h layout.FontHandle) *entry {
	if h < 0 || int(h) >= len(r.byHandle) {
		return nil
	}
	return r.byHandle[h]
}

// fontAt returns (creating if needed) the impl.Font for h at fontSize.
func (r *Registry) fontAt(h layout.FontHandle, fontSize float32) *impl.Font {
	e := r.entryAt(h)
	if e == nil {
		return nil
	}
	key := int32(fontSize * 1000)
	if f, ok := e.fonts[key]; ok {
		return f
	}
	f := impl.NewFontWithTypefaceAndSize(e.typeface, fontSize)
	e.fonts[key] = f
	return f
}

// MatchFonts implements CSS fonts-3 narrowing: stretch, then style, then
// weight, with the 400/500 tie-break spec section 6 names explicitly.
// language/script are accepted for interface parity with spec section 6
// but this in-memory registry does not index per-script coverage — every
// candidate in the family is returned in narrowed order and the
// Itemizer's per-codepoint probing (FontHasCodepoint) decides fitness.
func (r *Registry) MatchFonts(language string, script uint32, family string, weight models.FontWeight, style models.FontSlant, stretch models.FontWidth) []layout.FontHandle {
	candidates := r.families[family]
	if len(candidates) == 0 {
		candidates = r.families[r.defaultFamily]
	}
	if len(candidates) == 0 {
		return nil
	}

	ordered := make([]*entry, len(candidates))
	copy(ordered, candidates)

	sortByCSSDistance(ordered, weight, style, stretch)

	out := make([]layout.FontHandle, 0, len(ordered))
	for _, e := range ordered {
		for h, cand := range r.byHandle {
			if cand == e {
				out = append(out, layout.FontHandle(h))
				break
			}
		}
	}
	return out
}

func sortByCSSDistance(entries []*entry, weight models.FontWeight, style models.FontSlant, stretch models.FontWidth) {
	dist := func(e *entry) (int, int, int) {
		s := e.typeface.FontStyle()
		stretchD := abs(int(s.Width) - int(stretch))
		styleD := styleDistance(s.Slant, style)
		weightD := weightDistance(s.Weight, weight)
		return stretchD, styleD, weightD
	}
	// simple insertion sort: candidate lists are tiny (a handful of
	// variants per family), so an O(n^2) stable sort keeps registration
	// order as the tie-break without pulling in sort.Slice semantics.
	for i := 1; i < len(entries); i++ {
		j := i
		for j > 0 {
			a1, a2, a3 := dist(entries[j])
			b1, b2, b3 := dist(entries[j-1])
			if (a1 < b1) || (a1 == b1 && a2 < b2) || (a1 == b1 && a2 == b2 && a3 < b3) {
				entries[j], entries[j-1] = entries[j-1], entries[j]
				j--
				continue
			}
			break
		}
	}
}

func styleDistance(have, want models.FontSlant) int {
	if have == want {
		return 0
	}
	// Oblique and Italic are each other's closest substitute; Upright is
	// furthest from either.
	if want == models.FontSlantUpright || have == models.FontSlantUpright {
		return 2
	}
	return 1
}

func weightDistance(have, want models.FontWeight) int {
	// The CSS fonts-3 400/500 tie-break: between two equidistant
	// candidates, 400 prefers 500 (and vice versa) before falling back
	// to plain absolute distance.
	if want == 400 && have == 500 {
		return 1
	}
	if want == 500 && have == 400 {
		return 1
	}
	return abs(int(have) - int(want))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DefaultFont returns the first registered variant of family (or the
// registry's default family) as the last-resort fallback.
func (r *Registry) DefaultFont(family string) layout.FontHandle {
	candidates := r.families[family]
	if len(candidates) == 0 {
		candidates = r.families[r.defaultFamily]
	}
	if len(candidates) == 0 {
		return layout.FontHandle(-1)
	}
	for h, cand := range r.byHandle {
		if cand == candidates[0] {
			return layout.FontHandle(h)
		}
	}
	return layout.FontHandle(-1)
}

func (r *Registry) FontHasCodepoint(h layout.FontHandle, cp rune) bool {
	e := r.entryAt(h)
	if e == nil {
		return false
	}
	return e.typeface.UnicharToGlyph(cp) != 0
}

func (r *Registry) FontMetrics(h layout.FontHandle, fontSize float32) Metrics {
	f := r.fontAt(h, fontSize)
	if f == nil {
		return Metrics{}
	}
	m := f.GetMetrics()
	return Metrics{
		Ascender:        -m.Ascent,
		Descender:       m.Descent,
		LineGap:         m.Leading,
		XHeight:         m.XHeight,
		CapHeight:       m.CapHeight,
		UnderlineOffset: m.UnderlinePosition,
		UnderlineSize:   m.UnderlineThickness,
		StrikeoutOffset: m.StrikeoutPosition,
		StrikeoutSize:   m.StrikeoutThickness,
	}
}

// FontGetBaseline returns the offset from the alphabetic baseline for
// the given baseline kind. Every kind, alphabetic included, returns 0:
// this registry reads no baseline table, so all baselines coincide with
// the alphabetic one, matching spec 4.5.4's "Y=0 sits on the dominant
// baseline".
func (r *Registry) FontGetBaseline(h layout.FontHandle, which BaselineKind, rtl bool, script uint32, fontSize float32) float32 {
	if which == BaselineAlphabetic {
		return 0
	}
	return 0
}

func (r *Registry) FontGetBaselineSet(h layout.FontHandle, rtl bool, script uint32, fontSize float32) BaselineSet {
	var set BaselineSet
	for k := BaselineKind(0); k < baselineCount; k++ {
		set[k] = r.FontGetBaseline(h, k, rtl, script, fontSize)
	}
	return set
}

func (r *Registry) FontGetGlyphBounds(h layout.FontHandle, gid uint16, fontSize float32) layout.Rect {
	e := r.entryAt(h)
	if e == nil {
		return layout.Rect{}
	}
	b := e.typeface.GetGlyphBounds(gid)
	scale := float32(1)
	if upem := e.typeface.UnitsPerEm(); upem > 0 {
		scale = fontSize / float32(upem)
	}
	return layout.Rect{
		Left:   float32(b.Left) * scale,
		Top:    float32(b.Top) * scale,
		Right:  float32(b.Right) * scale,
		Bottom: float32(b.Bottom) * scale,
	}
}

func (r *Registry) Font(h layout.FontHandle) SkFontLike {
	return r.fontAt(h, 12)
}

var _ Collection = (*Registry)(nil)
