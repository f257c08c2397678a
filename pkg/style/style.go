package style

// Direction is the main-axis orientation of a container.
type Direction uint8

const (
	DirectionColumn Direction = iota // vertical main axis (default)
	DirectionRow                     // horizontal main axis
)

// Wrap controls whether a container's children wrap onto new lines when the
// main axis overflows.
type Wrap uint8

const (
	NoWrap Wrap = iota
	WrapLines
)

// Overflow controls vertical scrolling behavior for a container.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll // always scrollable when content exceeds bounds
	OverflowAuto   // scrollable only when content exceeds bounds
)

// Justify is the main-axis distribution of already-sized children.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align is the cross-axis alignment of children (align-items / align-self).
type Align uint8

const (
	AlignAuto Align = iota // align-self only: defer to the container's align-items
	AlignStart
	AlignCenter
	AlignEnd
)

// PositionMode selects flow vs. absolute positioning.
type PositionMode uint8

const (
	PositionRelative PositionMode = iota
	PositionAbsolute
)

// Edges is a T/R/B/L quad of cell offsets, used for both padding and
// absolute-position offsets.
type Edges struct {
	Top, Right, Bottom, Left int
}

// BorderStyleKind selects a border glyph set.
type BorderStyleKind uint8

const (
	BorderSingle BorderStyleKind = iota
	BorderDouble
	BorderRounded
	BorderThick
)

// BorderEdges is a bitset of which of the four edges to draw.
type BorderEdges uint8

const (
	BorderTop BorderEdges = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft
	BorderAll = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Border describes a container's border: whether it's enabled, which style
// and edges, and its color.
type Border struct {
	Enabled bool
	Kind    BorderStyleKind
	Edges   BorderEdges
	Color   Color
}

// Style holds optional container properties. A field pointer that is nil
// means "unset"; merging an overlay onto a base keeps the base's value for
// unset overlay fields and takes the overlay's value otherwise.
type Style struct {
	Background *Color

	Direction *Direction
	Padding   *Edges
	Width     *Dimension
	Height    *Dimension
	Gap       *int
	Wrap      *Wrap
	Overflow  *Overflow

	Border *Border

	Position *PositionMode
	Offsets  *Edges

	ZIndex *int

	Justify    *Justify
	AlignItems *Align
	AlignSelf  *Align

	ShowScrollbar *bool
}

// Merge overlays non-nil fields of `over` onto a copy of s, per spec §3:
// "Two styles merge: overlay wins field-by-field."
func (s Style) Merge(over Style) Style {
	out := s
	if over.Background != nil {
		out.Background = over.Background
	}
	if over.Direction != nil {
		out.Direction = over.Direction
	}
	if over.Padding != nil {
		out.Padding = over.Padding
	}
	if over.Width != nil {
		out.Width = over.Width
	}
	if over.Height != nil {
		out.Height = over.Height
	}
	if over.Gap != nil {
		out.Gap = over.Gap
	}
	if over.Wrap != nil {
		out.Wrap = over.Wrap
	}
	if over.Overflow != nil {
		out.Overflow = over.Overflow
	}
	if over.Border != nil {
		out.Border = over.Border
	}
	if over.Position != nil {
		out.Position = over.Position
	}
	if over.Offsets != nil {
		out.Offsets = over.Offsets
	}
	if over.ZIndex != nil {
		out.ZIndex = over.ZIndex
	}
	if over.Justify != nil {
		out.Justify = over.Justify
	}
	if over.AlignItems != nil {
		out.AlignItems = over.AlignItems
	}
	if over.AlignSelf != nil {
		out.AlignSelf = over.AlignSelf
	}
	if over.ShowScrollbar != nil {
		out.ShowScrollbar = over.ShowScrollbar
	}
	return out
}

// HorizontalAlign is text alignment within its resolved width.
type HorizontalAlign uint8

const (
	AlignLeft HorizontalAlign = iota
	AlignTextCenter
	AlignRight
)

// WrapMode is a text node's wrapping strategy.
type WrapMode uint8

const (
	WrapNone WrapMode = iota
	WrapCharacter
	WrapWord
	WrapWordBreak
)

// TextStyle holds optional text properties; fields merge the same way as
// Style, field-by-field with overlay winning.
type TextStyle struct {
	Foreground    *Color
	Background    *Color
	Bold          *bool
	Italic        *bool
	Underline     *bool
	Strikethrough *bool
	Wrap          *WrapMode
	Align         *HorizontalAlign
}

// Merge overlays non-nil fields of `over` onto a copy of t.
func (t TextStyle) Merge(over TextStyle) TextStyle {
	out := t
	if over.Foreground != nil {
		out.Foreground = over.Foreground
	}
	if over.Background != nil {
		out.Background = over.Background
	}
	if over.Bold != nil {
		out.Bold = over.Bold
	}
	if over.Italic != nil {
		out.Italic = over.Italic
	}
	if over.Underline != nil {
		out.Underline = over.Underline
	}
	if over.Strikethrough != nil {
		out.Strikethrough = over.Strikethrough
	}
	if over.Wrap != nil {
		out.Wrap = over.Wrap
	}
	if over.Align != nil {
		out.Align = over.Align
	}
	return out
}

// helpers for building pointer-valued optional fields tersely.
func BoolPtr(b bool) *bool                     { return &b }
func IntPtr(i int) *int                        { return &i }
func ColorPtr(c Color) *Color                  { return &c }
func DirectionPtr(d Direction) *Direction       { return &d }
func EdgesPtr(e Edges) *Edges                   { return &e }
func DimensionPtr(d Dimension) *Dimension       { return &d }
func WrapPtr(w Wrap) *Wrap                      { return &w }
func OverflowPtr(o Overflow) *Overflow           { return &o }
func JustifyPtr(j Justify) *Justify             { return &j }
func AlignPtr(a Align) *Align                   { return &a }
func PositionPtr(p PositionMode) *PositionMode  { return &p }
func WrapModePtr(w WrapMode) *WrapMode          { return &w }
func HAlignPtr(h HorizontalAlign) *HorizontalAlign { return &h }
