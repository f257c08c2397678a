package style

// DimensionKind distinguishes how a Dimension resolves during layout.
type DimensionKind uint8

const (
	// DimFixed resolves to a literal cell count.
	DimFixed DimensionKind = iota
	// DimFraction resolves to floor(parentAxis * Ratio), minimum 1.
	DimFraction
	// DimAuto fills an equal share of the remainder alongside sibling Auto dimensions.
	DimAuto
	// DimContent fits the intrinsic size of children/text.
	DimContent
)

// Dimension is the sum type `Fixed | Fraction | Auto | Content` from the
// layout data model.
type Dimension struct {
	Kind  DimensionKind
	Cells int     // valid when Kind == DimFixed
	Ratio float64 // valid when Kind == DimFraction, expected in [0,1]
}

// Fixed constructs a Dimension pinned to an exact cell count.
func Fixed(cells int) Dimension { return Dimension{Kind: DimFixed, Cells: cells} }

// Fraction constructs a Dimension that is a ratio of the parent's axis.
func Fraction(ratio float64) Dimension {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return Dimension{Kind: DimFraction, Ratio: ratio}
}

// Auto constructs a Dimension that shares the remaining space equally.
func Auto() Dimension { return Dimension{Kind: DimAuto} }

// Content constructs a Dimension that fits intrinsic content size.
func Content() Dimension { return Dimension{Kind: DimContent} }

// IsZero reports whether d is the zero value, used to detect "unset" fields
// in a Style where a Dimension pointer isn't used.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}
