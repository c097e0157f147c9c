package fontcollection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textkit/richlayout/skia/impl"
	"github.com/textkit/richlayout/skia/models"
)

func regularTypeface(family string) *impl.Typeface {
	return impl.NewTypeface(family, models.FontStyleNormal())
}

func boldTypeface(family string) *impl.Typeface {
	return impl.NewTypeface(family, models.FontStyleBold())
}

func TestMatchFontsNarrowsByWeightDistance(t *testing.T) {
	r := NewRegistry("sans")
	regular := r.Register("sans", regularTypeface("sans"))
	bold := r.Register("sans", boldTypeface("sans"))

	got := r.MatchFonts("en", 0, "sans", models.FontWeightBold, models.FontSlantUpright, models.FontWidthNormal)
	require.NotEmpty(t, got)
	assert.Equal(t, bold, got[0])
	assert.Contains(t, got, regular)
}

func TestMatchFontsFallsBackToDefaultFamily(t *testing.T) {
	r := NewRegistry("sans")
	h := r.Register("sans", regularTypeface("sans"))

	got := r.MatchFonts("en", 0, "unknown-family", models.FontWeightNormal, models.FontSlantUpright, models.FontWidthNormal)
	require.NotEmpty(t, got)
	assert.Equal(t, h, got[0])
}

func TestWeightDistanceRanks400CloserThan300WhenWanting500(t *testing.T) {
	d400 := weightDistance(400, 500)
	d300 := weightDistance(300, 500)
	assert.Less(t, d400, d300)
}

func TestDefaultFontReturnsFirstRegisteredVariant(t *testing.T) {
	r := NewRegistry("sans")
	h := r.Register("sans", regularTypeface("sans"))
	r.Register("sans", boldTypeface("sans"))

	assert.Equal(t, h, r.DefaultFont("sans"))
}

func TestFontHasCodepointDelegatesToTypeface(t *testing.T) {
	r := NewRegistry("sans")
	h := r.Register("sans", regularTypeface("sans"))

	assert.False(t, r.FontHasCodepoint(h, 'A'))
}

func TestFontGetBaselineSetAlphabeticIsZero(t *testing.T) {
	r := NewRegistry("sans")
	h := r.Register("sans", regularTypeface("sans"))

	set := r.FontGetBaselineSet(h, false, 0, 16)
	assert.Equal(t, float32(0), set[BaselineAlphabetic])
}
