package shapedriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textkit/richlayout/attribute"
	"github.com/textkit/richlayout/layout"
	"github.com/textkit/richlayout/textprops"
)

func TestShapeRunObjectEmitsSingleSyntheticGlyph(t *testing.T) {
	d := NewDriver()
	l := &layout.Layout{}
	text := []rune{layout.ObjectReplacementCodepoint}
	props := textprops.Build(text, "en")
	cr := []layout.ContentRun{{ID: 0, Type: layout.ContentObject, Range: layout.Range{Start: 0, End: 1}, ObjectWidth: 20}}
	run := layout.ShapingRun{Text: layout.Range{Start: 0, End: 1}, ContentRun: 0}

	res := d.ShapeRun(l, text, run, cr, props, nil, 0, 0)

	require.Equal(t, 1, res.Glyphs.Len())
	assert.Equal(t, float32(20), l.Glyphs[res.Glyphs.Start].AdvanceX)
}

func TestMergeCRLFFoldsBoundaryIntoPrecedingCluster(t *testing.T) {
	text := []rune("a\r\nb")
	clusters := []layout.Cluster{
		{TextOffset: 0, TextCount: 2},
		{TextOffset: 2, TextCount: 2},
	}
	mergeCRLF(clusters, text, 0, len(text))
	assert.Equal(t, 3, clusters[0].TextCount)
	assert.Equal(t, 3, clusters[1].TextOffset)
	assert.Equal(t, 1, clusters[1].TextCount)
}

func TestSpacingForAppliesLetterSpacingForNonCursiveScript(t *testing.T) {
	text := []rune("ab")
	props := textprops.Build(text, "en")
	fn := spacingFor(0, 2, 4, props)
	assert.Equal(t, float32(2), fn(0))
}

func TestToFontFeaturesPacksTagBytes(t *testing.T) {
	out := toFontFeatures([]attribute.FeatureValue{{Tag: "liga", Value: 1}})
	require.Len(t, out, 1)
	assert.Equal(t, uint32(1), out[0].Value)
	assert.EqualValues(t, 0x6c696761, out[0].Tag) // "liga"
}
