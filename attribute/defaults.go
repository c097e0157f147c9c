package attribute

// Horizontal/vertical/baseline alignment enums shared by KindHorizontalAlign,
// KindVerticalAlign and KindBaselineAlign. Values are small closed sets
// matching spec 4.5.6/4.5.4.
const (
	AlignStart = iota
	AlignEnd
	AlignCenter
	AlignJustify // horizontal only
)

const (
	VerticalAlignTop = iota
	VerticalAlignCenter
	VerticalAlignBottom
)

const (
	BaselineAlphabetic = iota
	BaselineIdeographic
	BaselineCentral
	BaselineHanging
	BaselineMathematical
	BaselineMiddle
	BaselineTextTop
	BaselineTextBottom
)

// Wrap modes, spec 4.5.1.
const (
	WrapNone = iota
	WrapWord
	WrapWordChar
)

// Overflow modes, spec 4.5.5.
const (
	OverflowClip = iota
	OverflowEllipsis
)

// Vertical trim modes, spec 4.5.6.
const (
	TrimNone = iota
	TrimCapToBaseline
)

// Object-align-ref policy, spec 4.5.4.
const (
	ObjectAlignBefore = iota
	ObjectAlignAfter
	ObjectAlignBeforeOrAfter
	ObjectAlignAfterOrBefore
)

// Direction values for KindTextDirection; auto defers to bidi resolution.
const (
	DirectionAuto = iota
	DirectionLTR
	DirectionRTL
)

// LineHeight modes, spec 4.5.4.
const (
	LineHeightNormal = iota
	LineHeightMetricsRelative
	LineHeightFontSizeRelative
	LineHeightAbsolute
)

// Default returns the documented default Attribute for kind. It is the
// final fallback in the lookup chain (spec 4.1 step 5).
func Default(kind Kind) Attribute {
	switch kind {
	case KindFontFamily:
		return Text(KindFontFamily, "")
	case KindFontSize:
		return Scalar(KindFontSize, 14)
	case KindFontWeight:
		return Int(KindFontWeight, 400)
	case KindFontStyle:
		return Enum(KindFontStyle, 0) // upright
	case KindFontStretch:
		return Int(KindFontStretch, 5) // normal
	case KindLanguage:
		return Text(KindLanguage, "en")
	case KindFeature:
		return Attribute{Kind: KindFeature}
	case KindTextDirection:
		return Enum(KindTextDirection, DirectionAuto)
	case KindLineHeight:
		return Attribute{Kind: KindLineHeight, Enum: LineHeightNormal, Scalar: 1.0}
	case KindLetterSpacing:
		return Scalar(KindLetterSpacing, 0)
	case KindWordSpacing:
		return Scalar(KindWordSpacing, 0)
	case KindFill:
		return Fill(0, 0, 0, 255)
	case KindDecoration:
		return Attribute{Kind: KindDecoration}
	case KindObjectAlign:
		return Enum(KindObjectAlign, ObjectAlignAfterOrBefore)
	case KindObjectPadding:
		return Padding(KindObjectPadding, PaddingValue{})
	case KindWrapMode:
		return Enum(KindWrapMode, WrapWord)
	case KindOverflowMode:
		return Enum(KindOverflowMode, OverflowClip)
	case KindTrimMode:
		return Enum(KindTrimMode, TrimNone)
	case KindHorizontalAlign:
		return Enum(KindHorizontalAlign, AlignStart)
	case KindVerticalAlign:
		return Enum(KindVerticalAlign, VerticalAlignTop)
	case KindBaselineAlign:
		return Enum(KindBaselineAlign, BaselineAlphabetic)
	case KindBaselineShift:
		return Scalar(KindBaselineShift, 0)
	case KindTabStop:
		return Scalar(KindTabStop, 0)
	case KindPadding:
		return Padding(KindPadding, PaddingValue{})
	case KindIndentLevel:
		return Int(KindIndentLevel, 0)
	case KindIndentIncrement:
		return Scalar(KindIndentIncrement, 0)
	case KindListMarker:
		return Attribute{Kind: KindListMarker}
	case KindGroupTag:
		return Text(KindGroupTag, "")
	case KindSetReference:
		return Attribute{Kind: KindSetReference}
	default:
		return Attribute{Kind: kind}
	}
}
