package layoutcfg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuilayout/split"
)

func TestLoadBasic(t *testing.T) {
	t.Parallel()

	doc := `
direction: horizontal
flex: center
spacing: 2
margin: {horizontal: 1, vertical: 0}
constraints:
  - len: 20
  - fill: 1
  - percent: 10
`

	l, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, layout.DirectionHorizontal, l.Direction)
	require.Equal(t, layout.FlexCenter, l.Flex)
	require.Equal(t, 2, l.Spacing)
	require.Equal(t, layout.Margin{Horizontal: 1, Vertical: 0}, l.Margin)
	require.Equal(t, []layout.Constraint{layout.Len(20), layout.Fill(1), layout.Percent(10)}, l.Constraints)
}

func TestLoadDefaultsDirectionToHorizontal(t *testing.T) {
	t.Parallel()

	l, err := Load(strings.NewReader("constraints:\n  - min: 0\n"))
	require.NoError(t, err)
	require.Equal(t, layout.DirectionHorizontal, l.Direction)
}

func TestLoadRejectsUnknownDirection(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("direction: diagonal\nconstraints: []\n"))
	require.Error(t, err)
}

func TestLoadRejectsAmbiguousConstraint(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("constraints:\n  - len: 5\n    fill: 1\n"))
	require.Error(t, err)
}

func TestLoadRejectsEmptyConstraint(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("constraints:\n  - {}\n"))
	require.Error(t, err)
}

func TestLoadRatioConstraint(t *testing.T) {
	t.Parallel()

	l, err := Load(strings.NewReader("constraints:\n  - ratio: [1, 3]\n  - ratio: [2, 3]\n"))
	require.NoError(t, err)
	require.Equal(t, []layout.Constraint{layout.Ratio{Num: 1, Den: 3}, layout.Ratio{Num: 2, Den: 3}}, l.Constraints)
}

func TestLoadRoundTripsThroughSplit(t *testing.T) {
	t.Parallel()

	l, err := Load(strings.NewReader("constraints:\n  - len: 5\n  - fill: 1\n"))
	require.NoError(t, err)

	got := l.Split(layout.NewRect(0, 0, 10, 1))
	require.Len(t, got, 2)
}
