package attribute

// Attribute is a tagged variant: Kind discriminates which of the POD
// payload fields below is meaningful. Most Kinds use exactly one payload
// field; KindLineHeight uses Enum (the mode) together with Scalar (the
// value), and KindSetReference uses Text (the name) together with Ref.
type Attribute struct {
	Kind Kind

	// Scalar holds any single-float payload (FontSize, LineHeight,
	// LetterSpacing, WordSpacing, BaselineShift, TabStop, IndentIncrement).
	Scalar float32

	// Int holds any single-integer payload (FontWeight, FontStretch,
	// IndentLevel).
	Int int

	// Text holds any string payload (FontFamily, Language, GroupTag,
	// SetReference name).
	Text string

	// Enum holds any closed-enum payload, interpreted per Kind
	// (FontStyle slant, TextDirection, WrapMode, OverflowMode, TrimMode,
	// HorizontalAlign, VerticalAlign, BaselineAlign, ObjectAlign).
	Enum int

	// Feature carries an OpenType feature toggle (KindFeature).
	Feature FeatureValue

	// Fill carries a paint-like color/shader reference (KindFill).
	Fill FillValue

	// Decoration carries decoration line flags and style (KindDecoration).
	Decoration DecorationValue

	// Padding carries a four-sided padding (KindPadding, KindObjectPadding).
	Padding PaddingValue

	// ListMarker carries list-marker configuration (KindListMarker).
	ListMarker ListMarkerValue

	// Ref is the resolved handle of a reference attribute
	// (KindSetReference): Text carries the referenced set's name and Ref
	// carries its handle once added to a Collection, per spec 4.1 step 2's "for each reference attribute
	// encountered, recursively look up in the referenced set".
	Ref Handle
}

// FeatureValue is an OpenType feature toggle, e.g. "liga"=0 to disable
// standard ligatures.
type FeatureValue struct {
	Tag   string
	Value uint32
}

// FillValue is a flat color payload; richer paint objects are an external
// collaborator's concern, not this core's.
type FillValue struct {
	R, G, B, A uint8
}

// Decoration position, matching spec 3's Decoration.Position domain.
type DecorationPosition int

const (
	DecorationUnder DecorationPosition = iota
	DecorationOver
	DecorationThrough
	DecorationBottom
)

// Decoration line style.
type DecorationStyle int

const (
	DecorationSolid DecorationStyle = iota
	DecorationDouble
	DecorationDotted
	DecorationDashed
	DecorationWavy
)

type DecorationValue struct {
	Positions []DecorationPosition
	Style     DecorationStyle
	Color     FillValue
	// Thickness overrides the font-derived thickness when > 0.
	Thickness float32
}

type PaddingValue struct {
	Left, Top, Right, Bottom float32
}

// ListMarkerKind selects how linelayout.BuildListMarker renders a list
// marker.
type ListMarkerKind int

const (
	ListMarkerCodepoint ListMarkerKind = iota
	ListMarkerNumeric
	ListMarkerAlphabetic
)

type ListMarkerValue struct {
	Kind ListMarkerKind
	// Codepoint is used when Kind == ListMarkerCodepoint.
	Codepoint rune
	// Symbols is the base alphabet for ListMarkerNumeric/Alphabetic, e.g.
	// "0123456789" or "abcdefghijklmnopqrstuvwxyz".
	Symbols string
}

// Simple constructors for the common scalar/text/enum kinds; composite
// kinds are built with struct literals directly since their payload
// already names every field.

func Scalar(kind Kind, v float32) Attribute  { return Attribute{Kind: kind, Scalar: v} }
func Int(kind Kind, v int) Attribute         { return Attribute{Kind: kind, Int: v} }
func Text(kind Kind, v string) Attribute     { return Attribute{Kind: kind, Text: v} }
func Enum(kind Kind, v int) Attribute        { return Attribute{Kind: kind, Enum: v} }

func Feature(tag string, value uint32) Attribute {
	return Attribute{Kind: KindFeature, Feature: FeatureValue{Tag: tag, Value: value}}
}

func Fill(r, g, b, a uint8) Attribute {
	return Attribute{Kind: KindFill, Fill: FillValue{R: r, G: g, B: b, A: a}}
}

func Decoration(v DecorationValue) Attribute {
	return Attribute{Kind: KindDecoration, Decoration: v}
}

func Padding(kind Kind, v PaddingValue) Attribute {
	return Attribute{Kind: kind, Padding: v}
}

func ListMarker(v ListMarkerValue) Attribute {
	return Attribute{Kind: KindListMarker, ListMarker: v}
}

// Reference builds a KindSetReference attribute pointing at a named set;
// it resolves to a Handle only once added to a Collection (see
// Collection.Resolve).
func Reference(name string) Attribute {
	return Attribute{Kind: KindSetReference, Text: name}
}
