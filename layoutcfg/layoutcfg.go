// Package layoutcfg loads a [layout.Layout] from a declarative YAML
// document, for toolkits that describe static panel arrangements in
// configuration rather than Go source.
package layoutcfg

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tuilayout/split"
)

// Document is the top-level shape of a layout configuration file.
//
//	direction: horizontal
//	flex: center
//	spacing: 1
//	margin: {horizontal: 2, vertical: 1}
//	constraints:
//	  - len: 10
//	  - fill: 1
//	  - percent: 25
type Document struct {
	Direction   string       `yaml:"direction"`
	Flex        string       `yaml:"flex"`
	Spacing     int          `yaml:"spacing"`
	Margin      MarginDoc    `yaml:"margin"`
	Constraints []Constraint `yaml:"constraints"`
}

// MarginDoc mirrors [layout.Margin] in YAML-friendly form.
type MarginDoc struct {
	Horizontal uint16 `yaml:"horizontal"`
	Vertical   uint16 `yaml:"vertical"`
}

// Constraint is one entry of the constraints list. Exactly one field should
// be set; Load rejects entries that set zero or more than one.
type Constraint struct {
	Min     *int    `yaml:"min,omitempty"`
	Max     *int    `yaml:"max,omitempty"`
	Len     *int    `yaml:"len,omitempty"`
	Percent *int    `yaml:"percent,omitempty"`
	Fill    *int    `yaml:"fill,omitempty"`
	Ratio   *[2]int `yaml:"ratio,omitempty"`
}

func (c Constraint) resolve() (layout.Constraint, error) {
	set := 0
	var resolved layout.Constraint

	if c.Min != nil {
		set++
		resolved = layout.Min(*c.Min)
	}

	if c.Max != nil {
		set++
		resolved = layout.Max(*c.Max)
	}

	if c.Len != nil {
		set++
		resolved = layout.Len(*c.Len)
	}

	if c.Percent != nil {
		set++
		resolved = layout.Percent(*c.Percent)
	}

	if c.Fill != nil {
		set++
		resolved = layout.Fill(*c.Fill)
	}

	if c.Ratio != nil {
		set++
		resolved = layout.Ratio{Num: c.Ratio[0], Den: c.Ratio[1]}
	}

	switch set {
	case 0:
		return nil, fmt.Errorf("layoutcfg: constraint entry sets no variant")
	case 1:
		return resolved, nil
	default:
		return nil, fmt.Errorf("layoutcfg: constraint entry sets %d variants, want exactly 1", set)
	}
}

var flexByName = map[string]layout.Flex{
	"start":         layout.FlexStart,
	"legacy":        layout.FlexLegacy,
	"end":           layout.FlexEnd,
	"center":        layout.FlexCenter,
	"space_between": layout.FlexSpaceBetween,
	"space_around":  layout.FlexSpaceAround,
	"space_evenly":  layout.FlexSpaceEvenly,
}

// Load parses r as a layout configuration document and builds the
// corresponding [layout.Layout]. An empty direction defaults to
// "horizontal"; an empty flex defaults to the zero value, [layout.FlexStart].
func Load(r io.Reader) (layout.Layout, error) {
	var doc Document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		return layout.Layout{}, fmt.Errorf("layoutcfg: decode: %w", err)
	}

	var direction layout.Direction

	switch doc.Direction {
	case "", "horizontal":
		direction = layout.DirectionHorizontal
	case "vertical":
		direction = layout.DirectionVertical
	default:
		return layout.Layout{}, fmt.Errorf("layoutcfg: unknown direction %q", doc.Direction)
	}

	constraints := make([]layout.Constraint, len(doc.Constraints))

	for i, c := range doc.Constraints {
		resolved, err := c.resolve()
		if err != nil {
			return layout.Layout{}, fmt.Errorf("layoutcfg: constraint %d: %w", i, err)
		}

		constraints[i] = resolved
	}

	l := layout.New(direction, constraints...).
		WithMargin(layout.Margin{Horizontal: doc.Margin.Horizontal, Vertical: doc.Margin.Vertical}).
		WithSpacing(doc.Spacing)

	if doc.Flex != "" {
		flex, ok := flexByName[doc.Flex]
		if !ok {
			return layout.Layout{}, fmt.Errorf("layoutcfg: unknown flex %q", doc.Flex)
		}

		l = l.WithFlex(flex)
	}

	return l, nil
}
