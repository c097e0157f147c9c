// Package attribute implements the tagged-variant attribute chain that
// drives every downstream layer of the layout pipeline: font selection,
// line breaking, decoration, alignment and tab/indent/list behavior are
// all expressed as Attribute values resolved through a Set's chain.
//
// Ported from: skia-source/modules/skparagraph/include/TextStyle.h,
// skia-source/modules/skparagraph/src/TextStyle.cpp (SkParagraph Block
// model generalized into a reference-carrying chain, per the group-based
// equality and deep-hash requirements this module adds).
package attribute

// Kind discriminates the closed set of attribute variants. Every Kind has
// a documented default resolved by Default.
type Kind int

const (
	KindFontFamily Kind = iota
	KindFontSize
	KindFontWeight
	KindFontStyle
	KindFontStretch
	KindLanguage
	KindFeature
	KindTextDirection
	KindLineHeight
	KindLetterSpacing
	KindWordSpacing
	KindFill
	KindDecoration
	KindObjectAlign
	KindObjectPadding
	KindWrapMode
	KindOverflowMode
	KindTrimMode
	KindHorizontalAlign
	KindVerticalAlign
	KindBaselineAlign
	KindBaselineShift
	KindTabStop
	KindPadding
	KindIndentLevel
	KindIndentIncrement
	KindListMarker
	KindGroupTag
	KindSetReference

	kindCount
)

// String names a Kind for diagnostics and test failure messages.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= int(kindCount) {
		return "Kind(invalid)"
	}
	return kindNames[k]
}

var kindNames = [kindCount]string{
	KindFontFamily:       "FontFamily",
	KindFontSize:         "FontSize",
	KindFontWeight:       "FontWeight",
	KindFontStyle:        "FontStyle",
	KindFontStretch:      "FontStretch",
	KindLanguage:         "Language",
	KindFeature:          "Feature",
	KindTextDirection:    "TextDirection",
	KindLineHeight:       "LineHeight",
	KindLetterSpacing:    "LetterSpacing",
	KindWordSpacing:      "WordSpacing",
	KindFill:             "Fill",
	KindDecoration:       "Decoration",
	KindObjectAlign:      "ObjectAlign",
	KindObjectPadding:    "ObjectPadding",
	KindWrapMode:         "WrapMode",
	KindOverflowMode:     "OverflowMode",
	KindTrimMode:         "TrimMode",
	KindHorizontalAlign:  "HorizontalAlign",
	KindVerticalAlign:    "VerticalAlign",
	KindBaselineAlign:    "BaselineAlign",
	KindBaselineShift:    "BaselineShift",
	KindTabStop:          "TabStop",
	KindPadding:          "Padding",
	KindIndentLevel:      "IndentLevel",
	KindIndentIncrement:  "IndentIncrement",
	KindListMarker:       "ListMarker",
	KindGroupTag:         "GroupTag",
	KindSetReference:     "SetReference",
}
