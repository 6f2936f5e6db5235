package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These mirror the literal input/output scenarios used to pin down solver
// tie-breaking behavior for simple, widely-applicable layouts.

func TestScenarioLengthWithMinFillsRemainder(t *testing.T) {
	t.Parallel()

	got := Vertical(Len(5), Min(0)).Split(NewRect(0, 0, 10, 10))
	want := Rects{NewRect(0, 0, 10, 5), NewRect(0, 5, 10, 5)}

	require.Equal(t, want, got)
}

func TestScenarioRatioSplit(t *testing.T) {
	t.Parallel()

	got := Horizontal(Ratio{1, 3}, Ratio{2, 3}).Split(NewRect(0, 0, 9, 2))
	want := Rects{NewRect(0, 0, 3, 2), NewRect(3, 0, 6, 2)}

	require.Equal(t, want, got)
}

func TestScenarioRatioSplitWithSpacing(t *testing.T) {
	t.Parallel()

	l := Horizontal(Ratio{1, 3}, Ratio{2, 3}).WithSpacing(1)
	segments, spacers := l.SplitWithSpacers(NewRect(0, 0, 10, 2))

	wantSegments := Rects{NewRect(0, 0, 3, 2), NewRect(4, 0, 6, 2)}
	wantSpacers := Rects{NewRect(0, 0, 0, 2), NewRect(3, 0, 1, 2), NewRect(10, 0, 0, 2)}

	require.Equal(t, wantSegments, segments)
	require.Equal(t, wantSpacers, spacers)
}

func TestScenarioFillWeights(t *testing.T) {
	t.Parallel()

	got := Horizontal(Fill(1), Len(10), Fill(2)).Split(NewRect(0, 0, 100, 1))

	widths := make([]int, len(got))
	for i, r := range got {
		widths[i] = int(r.Width)
	}

	require.Equal(t, []int{30, 10, 60}, widths)
}

func TestScenarioCenterWithSpacing(t *testing.T) {
	t.Parallel()

	got := Horizontal(Len(20), Len(20), Len(20)).WithFlex(FlexCenter).WithSpacing(2).Split(NewRect(0, 0, 100, 1))

	want := [][2]int{{18, 20}, {40, 20}, {62, 20}}

	for i, r := range got {
		require.Equalf(t, want[i], [2]int{int(r.X), int(r.Width)}, "segment %d", i)
	}
}

func TestScenarioSpaceBetween(t *testing.T) {
	t.Parallel()

	l := Horizontal(Len(25), Len(25)).WithFlex(FlexSpaceBetween)
	segments, spacers := l.SplitWithSpacers(NewRect(0, 0, 100, 1))

	wantSegments := [][2]int{{0, 25}, {75, 25}}
	for i, r := range segments {
		require.Equalf(t, wantSegments[i], [2]int{int(r.X), int(r.Width)}, "segment %d", i)
	}

	wantSpacers := [][2]int{{0, 0}, {25, 50}, {100, 0}}
	for i, r := range spacers {
		require.Equalf(t, wantSpacers[i], [2]int{int(r.X), int(r.Width)}, "spacer %d", i)
	}
}
