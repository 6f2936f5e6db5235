package layout

import "github.com/tuilayout/split/internal/cassowary"

// The solver's priority scale is inherited from Cassowary: four canonical
// anchors, each roughly a thousand times the next, with every named
// strength below placed relative to them. The ordering here — not the
// absolute magnitudes — is the contract every constraint compiler function
// relies on; [TestStrengthOrdering] pins it down.
const (
	required cassowary.Priority = cassowary.Required
	strong   cassowary.Priority = 1_000_000
	medium   cassowary.Priority = 1_000
	weak     cassowary.Priority = 1
)

const (
	// spacerSizeEq is a near-required equality on spacer size, deliberately
	// kept just below required so that pathological inputs (spacing wider
	// than the area) stay feasible: the required area anchors always win.
	spacerSizeEq = required - 1

	// minSizeGE and maxSizeLE are the hard inequality bounds for Min and
	// Max; they are tied so neither constraint out-prioritizes the other.
	minSizeGE = strong * 10
	maxSizeLE = strong * 10

	// lengthSizeEq pins a Len segment to its exact requested size.
	lengthSizeEq = strong / 10

	// percentageSizeEq and ratioSizeEq are the soft equalities for
	// Percent and Ratio segments; Percent outranks Ratio.
	percentageSizeEq = medium * 10
	ratioSizeEq      = medium

	// maxSizeEq and minSizeEq are soft equality companions that nudge Max
	// and Min segments toward their exact bound when room allows; minSizeEq
	// only applies under FlexLegacy.
	maxSizeEq = medium / 10
	minSizeEq = medium / 10

	// fillGrow lets Fill segments (and, outside FlexLegacy, Min segments)
	// expand to share leftover space.
	fillGrow = weak * 10

	// grow is the general-purpose expansion priority used by flex
	// policies when a spacer should absorb the whole leftover run.
	grow = weak

	// spaceGrow lets spacers expand to absorb remaining room under the
	// SpaceBetween/SpaceAround/SpaceEvenly policies.
	spaceGrow = weak / 10

	// segmentUniformity is an almost-negligible tiebreak, used outside
	// FlexLegacy, that nudges otherwise-underdetermined adjacent segments
	// toward equal size.
	segmentUniformity = weak / 100
)
