package layout

import "fmt"

// Flex controls how leftover axis length — the space remaining once every
// segment's size constraint has been resolved — is distributed among the
// spacers that surround and separate segments. It plays the same role as
// the CSS justify-content property.
type Flex int

const (
	// FlexStart pushes segments to the leading edge, leaving any surplus
	// at the trailing edge.
	FlexStart Flex = iota

	// FlexLegacy assigns all surplus to the last segment instead of to a
	// spacer, reproducing the historical behaviour of layouts that predate
	// an explicit Flex setting. It is not the default: the zero value is
	// [FlexStart], so construct a [Layout] with Flex: FlexLegacy to opt
	// back into the old behaviour.
	FlexLegacy

	// FlexEnd pushes segments to the trailing edge, leaving surplus at the
	// leading edge.
	FlexEnd

	// FlexCenter centers segments, splitting surplus equally between the
	// leading and trailing spacers.
	FlexCenter

	// FlexSpaceBetween distributes surplus equally between adjacent
	// segments; there is no space before the first segment or after the
	// last.
	FlexSpaceBetween

	// FlexSpaceAround places equal space on both sides of every segment,
	// so adjacent segments share twice the gap of the outer edges.
	FlexSpaceAround

	// FlexSpaceEvenly makes every gap — including the leading and
	// trailing ones — the same width.
	FlexSpaceEvenly
)

func (f Flex) String() string {
	switch f {
	case FlexStart:
		return "Start"
	case FlexLegacy:
		return "Legacy"
	case FlexEnd:
		return "End"
	case FlexCenter:
		return "Center"
	case FlexSpaceBetween:
		return "SpaceBetween"
	case FlexSpaceAround:
		return "SpaceAround"
	case FlexSpaceEvenly:
		return "SpaceEvenly"
	default:
		return fmt.Sprintf("Flex(%d)", int(f))
	}
}
